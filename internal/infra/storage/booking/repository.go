package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	"github.com/eduschools/EduSchools-BookingService/pkg/pgerrors"
	"github.com/eduschools/EduSchools-BookingService/pkg/psqlbuilder"
)

const tableBookings = "demo_bookings"

var bookingColumns = []string{
	"id",
	"name",
	"email",
	"position",
	"phone_number",
	"school_name",
	"school_address",
	"school_type",
	"student_count",
	"current_system",
	"specific_needs",
	"preferred_contact_method",
	"timeframe",
	"demo_mode",
	"additional_comments",
	"booking_datetime",
	"status",
	"created_at",
	"notified_at",
}

// Repository репозиторий демо-бронирований
type Repository struct {
	db       DBExecutor
	location *time.Location
	now      func() time.Time
}

// NewRepository создает репозиторий. loc - часовой пояс, в котором booking_datetime превращается в слот
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	return &Repository{
		db:       db,
		location: loc,
		now:      time.Now,
	}
}

// ListBookedSlots возвращает слоты всех активных бронирований с заполненным booking_datetime
func (r *Repository) ListBookedSlots(ctx context.Context) ([]domain.Slot, error) {
	query, args, err := psqlbuilder.Select("booking_datetime").
		From(tableBookings).
		Where(squirrel.NotEq{"booking_datetime": nil}).
		Where(squirrel.NotEq{"status": inactiveStatuses()}).
		OrderBy("booking_datetime ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0)
	for rows.Next() {
		var startsAt time.Time
		if err := rows.Scan(&startsAt); err != nil {
			return nil, fmt.Errorf("%w: ListBookedSlots - scan booking_datetime: %v", ErrScanRow, err)
		}
		slots = append(slots, domain.SlotFromTime(startsAt, r.location))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// CreateBooking сохраняет новое бронирование
// Уникальный индекс по booking_datetime (для активных статусов) гарантирует,
// что при гонке двух заявок на один слот вставится только первая. Вторая получит ErrSlotTaken
func (r *Repository) CreateBooking(ctx context.Context, booking *domain.DemoBooking) (*domain.DemoBooking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Status == "" {
		booking.Status = domain.StatusPending
	}

	query, args, err := insertBookingQuery(booking)
	if err != nil {
		return nil, err
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrSlotTaken, booking.Slot)
		}
		return nil, fmt.Errorf("%w: CreateBooking - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	if !createdAt.Valid {
		booking.CreatedAt = r.now()
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DemoBooking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		booking    domain.DemoBooking
		startsAt   sql.NullTime
		notifiedAt sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Position,
		&booking.PhoneNumber,
		&booking.SchoolName,
		&booking.SchoolAddress,
		&booking.SchoolType,
		&booking.StudentCount,
		&booking.CurrentSystem,
		pq.Array(&booking.SpecificNeeds),
		&booking.PreferredContactMethod,
		&booking.Timeframe,
		&booking.DemoMode,
		&booking.AdditionalComments,
		&startsAt,
		&booking.Status,
		&booking.CreatedAt,
		&notifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if startsAt.Valid {
		booking.Slot = domain.SlotFromTime(startsAt.Time, r.location)
	}
	if notifiedAt.Valid {
		booking.NotifiedAt = &notifiedAt.Time
	}

	return &booking, nil
}

// MarkNotified отмечает, что письмо администратору по бронированию отправлено
func (r *Repository) MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := psqlbuilder.Update(tableBookings).
		Set("notified_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkNotified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkNotified - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkNotified - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// insertBookingQuery INSERT нового бронирования с RETURNING created_at
func insertBookingQuery(booking *domain.DemoBooking) (string, []interface{}, error) {
	startsAt, err := booking.Slot.StartsAt()
	if err != nil {
		return "", nil, fmt.Errorf("%w: CreateBooking - invalid slot %s: %v", ErrBuildQuery, booking.Slot, err)
	}

	// specific_needs NOT NULL: nil от драйвера ушел бы как NULL
	needs := booking.SpecificNeeds
	if needs == nil {
		needs = []string{}
	}

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"name",
			"email",
			"position",
			"phone_number",
			"school_name",
			"school_address",
			"school_type",
			"student_count",
			"current_system",
			"specific_needs",
			"preferred_contact_method",
			"timeframe",
			"demo_mode",
			"additional_comments",
			"preferred_demo_date",
			"preferred_demo_time",
			"booking_datetime",
			"status",
		).
		Values(
			booking.ID,
			booking.Name,
			booking.Email,
			booking.Position,
			booking.PhoneNumber,
			booking.SchoolName,
			booking.SchoolAddress,
			booking.SchoolType,
			booking.StudentCount,
			booking.CurrentSystem,
			pq.Array(needs),
			booking.PreferredContactMethod,
			booking.Timeframe,
			booking.DemoMode,
			booking.AdditionalComments,
			booking.Slot.Date.Format(domain.DisplayDateFormat),
			booking.Slot.Time,
			startsAt,
			booking.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: CreateBooking - build insert query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func inactiveStatuses() []string {
	statuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
