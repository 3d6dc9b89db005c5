package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createDemoBookingHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/create_demo_booking"
	getDemoBookingHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/get_demo_booking"
	getDemoCalendarHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/get_demo_calendar"
	getDemoSlotsHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/get_demo_slots"
	resendNotificationHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/resend_notification"
	submitContactMessageHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/submit_contact_message"
	submitRegistrationHandler "github.com/eduschools/EduSchools-BookingService/internal/api/handlers/submit_registration"
	"github.com/eduschools/EduSchools-BookingService/internal/api/middleware"
	"github.com/eduschools/EduSchools-BookingService/internal/config"
	bookingRepo "github.com/eduschools/EduSchools-BookingService/internal/infra/storage/booking"
	inquiryRepo "github.com/eduschools/EduSchools-BookingService/internal/infra/storage/inquiry"
	resendClient "github.com/eduschools/EduSchools-BookingService/internal/integrations/resend"
	"github.com/eduschools/EduSchools-BookingService/internal/service/availability"
	bookingsService "github.com/eduschools/EduSchools-BookingService/internal/service/bookings"
	inquiriesService "github.com/eduschools/EduSchools-BookingService/internal/service/inquiries"
	"github.com/eduschools/EduSchools-BookingService/internal/service/notifications"
	"github.com/eduschools/EduSchools-BookingService/internal/service/scheduler"
	createDemoBookingUC "github.com/eduschools/EduSchools-BookingService/internal/usecase/create_demo_booking"
	getDemoCalendarUC "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_calendar"
	getDemoSlotsUC "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_slots"
	resendNotificationUC "github.com/eduschools/EduSchools-BookingService/internal/usecase/resend_notification"
	"github.com/eduschools/EduSchools-BookingService/pkg/dbmetrics"
	"github.com/eduschools/EduSchools-BookingService/pkg/logger"
	"github.com/eduschools/EduSchools-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EduSchools-BookingService...")

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid scheduling timezone: %v", err)
	}

	// Метрики опциональны: все Record* работают с nil
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Недоступная база не мешает старту: календарь работает без нее,
	// а слоты и запись отвечают 503 до первой успешной загрузки индекса
	if err := db.Ping(); err != nil {
		log.Warn("Database is not reachable yet: %v", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(dbExecutor, location)
	inquiryRepository := inquiryRepo.NewRepository(dbExecutor)

	// Почтовый клиент и уведомления
	mailClient := resendClient.NewClient(
		cfg.Mail.APIURL,
		cfg.Mail.APIKey,
		time.Duration(cfg.Mail.Timeout)*time.Second,
		log,
	)
	notifier := notifications.NewService(
		mailClient,
		cfg.Mail.AdminEmail,
		notifications.Senders{
			Demo:         cfg.Mail.FromDemo,
			Contact:      cfg.Mail.FromContact,
			Registration: cfg.Mail.FromRegistration,
		},
		location,
		metricsCollector,
		log,
	)
	log.Info("Mail client initialized (url=%s, timeout=%ds)", cfg.Mail.APIURL, cfg.Mail.Timeout)

	// Индекс занятых слотов
	index := availability.NewIndex(bookingRepository, metricsCollector, log)
	if cfg.Scheduling.LoadOnStart {
		loadCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Scheduling.LoadTimeout)*time.Second)
		if err := index.Load(loadCtx); err != nil {
			log.Warn("Initial availability load failed, will retry on demand: %v", err)
		}
		cancel()
	}

	sched := scheduler.NewScheduler(
		scheduler.Config{
			Location:    location,
			HorizonDays: cfg.Scheduling.HorizonDays,
		},
		index,
		bookingRepository,
		notifier,
		scheduler.RealTimeProvider{},
		metricsCollector,
		log,
	)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	inquirySvc := inquiriesService.NewService(inquiryRepository, notifier, metricsCollector, log)

	// Use cases
	getDemoCalendarUseCase := getDemoCalendarUC.NewUseCase(location, cfg.Scheduling.HorizonDays, log)
	getDemoSlotsUseCase := getDemoSlotsUC.NewUseCase(index, location, cfg.Scheduling.HorizonDays, log)
	createDemoBookingUseCase := createDemoBookingUC.NewUseCase(sched, log)
	resendNotificationUseCase := resendNotificationUC.NewUseCase(bookingRepository, sched, log)

	// Handlers
	getDemoCalendar := getDemoCalendarHandler.NewHandler(getDemoCalendarUseCase, log)
	getDemoSlots := getDemoSlotsHandler.NewHandler(getDemoSlotsUseCase, log)
	createDemoBooking := createDemoBookingHandler.NewHandler(createDemoBookingUseCase, log)
	getDemoBooking := getDemoBookingHandler.NewHandler(bookingSvc, log)
	resendNotification := resendNotificationHandler.NewHandler(resendNotificationUseCase, log)
	submitContactMessage := submitContactMessageHandler.NewHandler(inquirySvc, log)
	submitRegistration := submitRegistrationHandler.NewHandler(inquirySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// ЧТЕНИЕ
	// ============================================================

	// Сетка месяца для выбора даты
	api.HandleFunc("/demo-calendar", getDemoCalendar.Handle).Methods(http.MethodGet)

	// Слоты на выбранную дату
	api.HandleFunc("/demo-slots", getDemoSlots.Handle).Methods(http.MethodGet)

	// Бронирование по ID (без персональных данных)
	api.HandleFunc("/demo-bookings/{bookingId}", getDemoBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ФОРМЫ (с ограничением частоты)
	// ============================================================

	forms := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		forms.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerMin))
		log.Info("Rate limit enabled: %d requests per minute", cfg.RateLimit.RequestsPerMin)
	}

	// Запись на демонстрацию
	forms.HandleFunc("/demo-bookings", createDemoBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Повторная отправка письма администратору
	forms.HandleFunc("/demo-bookings/{bookingId}/notification", resendNotification.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Обратная связь и регистрация школы
	forms.HandleFunc("/contact-messages", submitContactMessage.Handle).Methods(http.MethodPost, http.MethodOptions)
	forms.HandleFunc("/registrations", submitRegistration.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
