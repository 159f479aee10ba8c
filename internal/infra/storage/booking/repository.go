package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var bookingColumns = []string{
	"id",
	"user_id",
	"user_name",
	"user_email",
	"hotel_id",
	"room_id",
	"hotel_owner_id",
	"start_date",
	"end_date",
	"breakfast_included",
	"currency",
	"total_price",
	"payment_status",
	"payment_intent_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// ID генерируется, если не задан. Повторная вставка с тем же payment_intent_id
// возвращает ErrDuplicatePaymentIntent.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"user_name",
			"user_email",
			"hotel_id",
			"room_id",
			"hotel_owner_id",
			"start_date",
			"end_date",
			"breakfast_included",
			"currency",
			"total_price",
			"payment_status",
			"payment_intent_id",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.UserName,
			booking.UserEmail,
			booking.HotelID,
			booking.RoomID,
			booking.HotelOwnerID,
			booking.StartDate,
			booking.EndDate,
			booking.BreakfastIncluded,
			booking.Currency,
			booking.TotalPrice,
			booking.PaymentStatus,
			booking.PaymentIntentID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePaymentIntent
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByPaymentIntent получает бронирование гостя по payment intent
// Бронирование другого гостя с тем же intent не возвращается
func (r *Repository) GetByPaymentIntent(ctx context.Context, paymentIntentID, userID string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByPaymentIntent", squirrel.Eq{
		"payment_intent_id": paymentIntentID,
		"user_id":           userID,
	})
}

// GetByPaymentIntentID получает бронирование по payment intent без привязки к гостю
func (r *Repository) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByPaymentIntentID", squirrel.Eq{"payment_intent_id": paymentIntentID})
}

// UpdateByPaymentIntent обновляет неоплаченное бронирование гостя на месте
// (даты, цена, завтрак, отель/номер). Статус оплаты и payment_intent_id не меняются.
// Оплаченная строка не обновляется: возвращается ErrBookingNotFound.
func (r *Repository) UpdateByPaymentIntent(ctx context.Context, paymentIntentID, userID string, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateByPaymentIntentQuery(paymentIntentID, userID, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByPaymentIntent - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByPaymentIntent - scan booking: %v", ErrScanRow, err)
	}

	return updated, nil
}

// updateByPaymentIntentQuery строит UPDATE, который не трогает оплаченную строку
func updateByPaymentIntentQuery(paymentIntentID, userID string, booking *domain.Booking) (string, []interface{}, error) {
	return psqlbuilder.Update("bookings").
		Set("user_name", booking.UserName).
		Set("user_email", booking.UserEmail).
		Set("hotel_id", booking.HotelID).
		Set("room_id", booking.RoomID).
		Set("hotel_owner_id", booking.HotelOwnerID).
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("breakfast_included", booking.BreakfastIncluded).
		Set("currency", booking.Currency).
		Set("total_price", booking.TotalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"payment_intent_id": paymentIntentID,
			"user_id":           userID,
			"payment_status":    false,
		}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
}

// SetPaid помечает бронирование как оплаченное
// Повторный вызов безопасен: payment_status остается TRUE
func (r *Repository) SetPaid(ctx context.Context, paymentIntentID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"payment_intent_id": paymentIntentID}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SetPaid - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SetPaid - scan booking: %v", ErrScanRow, err)
	}

	return updated, nil
}

// ListPaidByRoom получает оплаченные бронирования номера, закончившиеся после notBefore
// Используется для проверки пересечения дат
func (r *Repository) ListPaidByRoom(ctx context.Context, roomID string, notBefore time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"room_id":        roomID,
			"payment_status": true,
		}).
		Where(squirrel.Gt{"end_date": notBefore}).
		OrderBy("start_date ASC")

	// В транзакции блокируем строки, чтобы оплата не проскочила между проверкой и записью
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPaidByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPaidByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByUserID получает бронирования гостя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.getMany(ctx, "GetByUserID", squirrel.Eq{"user_id": userID})
}

// GetByHotelOwnerID получает бронирования во всех отелях владельца, новые первыми
func (r *Repository) GetByHotelOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.getMany(ctx, "GetByHotelOwnerID", squirrel.Eq{"hotel_owner_id": ownerID})
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

func (r *Repository) getMany(ctx context.Context, op string, where squirrel.Eq) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBooking сканирует одну строку в порядке bookingColumns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.HotelID,
		&booking.RoomID,
		&booking.HotelOwnerID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.BreakfastIncluded,
		&booking.Currency,
		&booking.TotalPrice,
		&booking.PaymentStatus,
		&booking.PaymentIntentID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}
