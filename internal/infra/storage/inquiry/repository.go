package inquiry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/psqlbuilder"
)

// Repository хранит сообщения обратной связи и заявки на регистрацию школ
type Repository struct {
	db  DBExecutor
	now func() time.Time
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, now: time.Now}
}

// CreateContactMessage сохраняет сообщение из формы обратной связи
func (r *Repository) CreateContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("id", "name", "email", "phone", "subject", "message").
		Values(msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - build insert query: %v", ErrBuildQuery, err)
	}

	createdAt, err := r.insertReturningCreatedAt(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - execute insert: %v", ErrExecQuery, err)
	}
	msg.CreatedAt = createdAt

	return msg, nil
}

// CreateRegistration сохраняет заявку на регистрацию школы
func (r *Repository) CreateRegistration(ctx context.Context, reg *domain.SchoolRegistration) (*domain.SchoolRegistration, error) {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("school_registrations").
		Columns(
			"id",
			"school_name",
			"contact_person",
			"email",
			"phone",
			"address",
			"student_count",
			"plan",
			"message",
		).
		Values(
			reg.ID,
			reg.SchoolName,
			reg.ContactPerson,
			reg.Email,
			reg.Phone,
			reg.Address,
			reg.StudentCount,
			reg.Plan,
			reg.Message,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRegistration - build insert query: %v", ErrBuildQuery, err)
	}

	createdAt, err := r.insertReturningCreatedAt(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRegistration - execute insert: %v", ErrExecQuery, err)
	}
	reg.CreatedAt = createdAt

	return reg, nil
}

func (r *Repository) insertReturningCreatedAt(ctx context.Context, query string, args []interface{}) (time.Time, error) {
	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return time.Time{}, err
	}
	if !createdAt.Valid {
		return r.now(), nil
	}
	return createdAt.Time, nil
}
