package hotel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/psqlbuilder"
)

var hotelColumns = []string{
	"id",
	"user_id",
	"title",
	"description",
	"image",
	"country",
	"state",
	"city",
	"location_description",
	"gym",
	"spa",
	"bar",
	"laundry",
	"restaurant",
	"shopping",
	"free_parking",
	"bike_rental",
	"free_wifi",
	"movie_nights",
	"swimming_pool",
	"coffee_shop",
	"added_at",
	"updated_at",
}

// Repository репозиторий для работы с отелями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отелей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отель
func (r *Repository) Create(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if hotel.ID == "" {
		hotel.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("hotels").
		Columns(hotelColumns[:len(hotelColumns)-2]...).
		Values(
			hotel.ID,
			hotel.UserID,
			hotel.Title,
			hotel.Description,
			hotel.Image,
			hotel.Country,
			hotel.State,
			hotel.City,
			hotel.LocationDescription,
			hotel.Gym,
			hotel.Spa,
			hotel.Bar,
			hotel.Laundry,
			hotel.Restaurant,
			hotel.Shopping,
			hotel.FreeParking,
			hotel.BikeRental,
			hotel.FreeWifi,
			hotel.MovieNights,
			hotel.SwimmingPool,
			hotel.CoffeeShop,
		).
		Suffix("RETURNING added_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hotel.AddedAt, &hotel.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return hotel, nil
}

// GetByID получает отель по ID (без номеров)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	hotel, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hotel: %v", ErrScanRow, err)
	}

	return hotel, nil
}

// Search ищет отели по фильтру
// Title - подстрока без учета регистра, остальные поля - точное совпадение
func (r *Repository) Search(ctx context.Context, filter domain.HotelFilter) ([]*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hotelColumns...).
		From("hotels").
		OrderBy("added_at DESC")

	if filter.Title != nil && *filter.Title != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"title": "%" + escapeLike(*filter.Title) + "%"})
	}
	if filter.Country != nil && *filter.Country != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"country": *filter.Country})
	}
	if filter.State != nil && *filter.State != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": *filter.State})
	}
	if filter.City != nil && *filter.City != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]*domain.Hotel, 0)
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// Update полностью перезаписывает редактируемые поля отеля
func (r *Repository) Update(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hotels").
		SetMap(map[string]interface{}{
			"title":                hotel.Title,
			"description":          hotel.Description,
			"image":                hotel.Image,
			"country":              hotel.Country,
			"state":                hotel.State,
			"city":                 hotel.City,
			"location_description": hotel.LocationDescription,
			"gym":                  hotel.Gym,
			"spa":                  hotel.Spa,
			"bar":                  hotel.Bar,
			"laundry":              hotel.Laundry,
			"restaurant":           hotel.Restaurant,
			"shopping":             hotel.Shopping,
			"free_parking":         hotel.FreeParking,
			"bike_rental":          hotel.BikeRental,
			"free_wifi":            hotel.FreeWifi,
			"movie_nights":         hotel.MovieNights,
			"swimming_pool":        hotel.SwimmingPool,
			"coffee_shop":          hotel.CoffeeShop,
			"updated_at":           squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": hotel.ID}).
		Suffix("RETURNING " + strings.Join(hotelColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanHotel(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan hotel: %v", ErrScanRow, err)
	}

	return updated, nil
}

// Delete удаляет отель; номера и бронирования удаляются каскадно (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("hotels").
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
		return ErrHotelNotFound
	}

	return nil
}

func scanHotel(row rowScanner) (*domain.Hotel, error) {
	var h domain.Hotel

	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Title,
		&h.Description,
		&h.Image,
		&h.Country,
		&h.State,
		&h.City,
		&h.LocationDescription,
		&h.Gym,
		&h.Spa,
		&h.Bar,
		&h.Laundry,
		&h.Restaurant,
		&h.Shopping,
		&h.FreeParking,
		&h.BikeRental,
		&h.FreeWifi,
		&h.MovieNights,
		&h.SwimmingPool,
		&h.CoffeeShop,
		&h.AddedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &h, nil
}

// escapeLike экранирует спецсимволы LIKE в пользовательском вводе
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
