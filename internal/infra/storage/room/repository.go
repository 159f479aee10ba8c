package room

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

var roomColumns = []string{
	"id",
	"hotel_id",
	"title",
	"description",
	"image",
	"bed_count",
	"guest_count",
	"bathroom_count",
	"king_bed",
	"queen_bed",
	"room_price",
	"breakfast_price",
	"room_service",
	"tv",
	"balcony",
	"free_wifi",
	"city_view",
	"ocean_view",
	"forest_view",
	"mountain_view",
	"air_condition",
	"sound_proofed",
}

// Repository репозиторий для работы с номерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый номер
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(roomColumns...).
		Values(roomValues(room)...).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает номер по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// GetByHotelIDs получает номера нескольких отелей одним запросом
func (r *Repository) GetByHotelIDs(ctx context.Context, hotelIDs []string) ([]*domain.Room, error) {
	if len(hotelIDs) == 0 {
		return []*domain.Room{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"hotel_id": hotelIDs}).
		OrderBy("room_price ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByHotelIDs - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHotelIDs - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update перезаписывает редактируемые поля номера (hotel_id не меняется)
func (r *Repository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values := roomValues(room)
	updateBuilder := psqlbuilder.Update("rooms")
	// Пропускаем id и hotel_id
	for i := 2; i < len(roomColumns); i++ {
		updateBuilder = updateBuilder.Set(roomColumns[i], values[i])
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": room.ID}).
		Suffix("RETURNING " + strings.Join(roomColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan room: %v", ErrScanRow, err)
	}

	return updated, nil
}

// Delete удаляет номер
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
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
		return ErrRoomNotFound
	}

	return nil
}

// roomValues значения номера в порядке roomColumns
func roomValues(room *domain.Room) []interface{} {
	return []interface{}{
		room.ID,
		room.HotelID,
		room.Title,
		room.Description,
		room.Image,
		room.BedCount,
		room.GuestCount,
		room.BathroomCount,
		room.KingBed,
		room.QueenBed,
		room.RoomPrice,
		room.BreakfastPrice,
		room.RoomService,
		room.TV,
		room.Balcony,
		room.FreeWifi,
		room.CityView,
		room.OceanView,
		room.ForestView,
		room.MountainView,
		room.AirCondition,
		room.SoundProofed,
	}
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room

	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.Title,
		&room.Description,
		&room.Image,
		&room.BedCount,
		&room.GuestCount,
		&room.BathroomCount,
		&room.KingBed,
		&room.QueenBed,
		&room.RoomPrice,
		&room.BreakfastPrice,
		&room.RoomService,
		&room.TV,
		&room.Balcony,
		&room.FreeWifi,
		&room.CityView,
		&room.OceanView,
		&room.ForestView,
		&room.MountainView,
		&room.AirCondition,
		&room.SoundProofed,
	)
	if err != nil {
		return nil, err
	}

	return &room, nil
}
