package booking

import "github.com/eduschools/EduSchools-BookingService/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
