package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/integrations/roomlock"
	stripeClient "github.com/m04kA/SMC-HotelBooking/internal/integrations/stripe"
)

// UseCase use case оформления бронирования с платежным намерением
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	hotelRepo    HotelRepository
	payments     PaymentProvider
	locker       RoomLocker
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	cfg          Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	hotelRepo HotelRepository,
	payments PaymentProvider,
	locker RoomLocker,
	publisher EventPublisher,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Currency == "" {
		cfg.Currency = domain.DefaultCurrency
	}
	if cfg.WriteRetries < 0 {
		cfg.WriteRetries = 0
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		hotelRepo:    hotelRepo,
		payments:     payments,
		locker:       locker,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		cfg:          cfg,
		logger:       logger,
	}
}

// Execute создает бронирование с новым платежным намерением либо обновляет
// неоплаченное бронирование гостя по ранее выданному намерению.
// При пересечении дат с оплаченным бронированием ни намерение, ни строка не меняются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("Checkout: user=%s, hotel=%s, room=%s, dates=%s..%s, price=%.2f, intent=%q",
		req.Guest.ID, req.HotelID, req.RoomID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.TotalPrice, req.PaymentIntentID)

	// 2. Номер должен принадлежать указанному отелю
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("Checkout: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("Checkout: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if room.HotelID != req.HotelID {
		uc.logger.Warn("Checkout: room id=%s does not belong to hotel id=%s", req.RoomID, req.HotelID)
		return nil, ErrRoomNotFound
	}

	if err := validateBreakfast(room, req.BreakfastIncluded); err != nil {
		uc.logger.Warn("Checkout: %v", err)
		return nil, err
	}

	// 3. Владелец отеля денормализуется в бронирование
	hotel, err := uc.hotelRepo.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("Checkout: hotel id=%s not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("Checkout: failed to get hotel id=%s: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 4. Сериализуем проверку и запись по номеру
	unlock, err := uc.locker.Lock(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomlock.ErrLockTimeout) {
			uc.logger.Warn("Checkout: room id=%s is locked by another checkout", req.RoomID)
			return nil, ErrRoomBusy
		}
		uc.logger.Error("Checkout: failed to lock room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to lock room: %v", ErrInternal, err)
	}
	defer unlock()

	// 5. Проверка пересечения с оплаченными бронированиями до обращения к провайдеру
	if err := uc.ensureAvailable(ctx, req); err != nil {
		return nil, err
	}

	booking := uc.buildBooking(req, hotel)
	amount := domain.ToMinorUnits(req.TotalPrice)

	// 6. Ищем бронирование гостя по ранее выданному намерению
	var existing *domain.Booking
	if req.PaymentIntentID != "" {
		existing, err = uc.bookingRepo.GetByPaymentIntent(ctx, req.PaymentIntentID, req.Guest.ID)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("Checkout: failed to find booking by intent=%s: %v", req.PaymentIntentID, err)
			return nil, fmt.Errorf("%w: failed to find booking: %v", ErrInternal, err)
		}
		if existing == nil {
			uc.logger.Info("Checkout: intent=%s not found for user=%s, creating new booking",
				req.PaymentIntentID, req.Guest.ID)
		}
	}

	var resp *Response
	if existing != nil {
		resp, err = uc.update(ctx, req, existing, booking, amount)
	} else {
		resp, err = uc.create(ctx, req, booking, amount)
	}
	if err != nil {
		return nil, err
	}

	// 7. Событие публикуется без влияния на результат
	if err := uc.publisher.PublishCheckout(ctx, resp.Booking); err != nil {
		uc.logger.Warn("Checkout: failed to publish checkout event for booking id=%s: %v", resp.Booking.ID, err)
	}

	uc.logger.Info("Checkout: booking id=%s, intent=%s, amount=%d %s, created=%t",
		resp.Booking.ID, resp.PaymentIntent.ID, resp.PaymentIntent.Amount, resp.PaymentIntent.Currency, resp.Created)

	return resp, nil
}

// update переводит IntentCreated -> IntentCreated: новая сумма у провайдера и новые поля строки
func (uc *UseCase) update(ctx context.Context, req *Request, existing, booking *domain.Booking, amount int64) (*Response, error) {
	if existing.IsPaid() {
		uc.logger.Warn("Checkout: booking id=%s for intent=%s is already paid", existing.ID, existing.PaymentIntentID)
		return nil, ErrAlreadyPaid
	}

	intent, err := uc.payments.RetrieveIntent(ctx, existing.PaymentIntentID)
	if err != nil {
		return nil, uc.providerError("retrieve intent", existing.PaymentIntentID, err)
	}
	if intent.IsSucceeded() {
		uc.logger.Warn("Checkout: intent=%s already succeeded, booking id=%s is awaiting confirmation",
			intent.ID, existing.ID)
		return nil, ErrAlreadyPaid
	}

	if intent.Amount != amount {
		intent, err = uc.payments.UpdateIntentAmount(ctx, existing.PaymentIntentID, amount)
		if err != nil {
			return nil, uc.providerError("update intent amount", existing.PaymentIntentID, err)
		}
	}

	booking.PaymentIntentID = existing.PaymentIntentID

	var updated *domain.Booking
	err = uc.writeWithRetry(ctx, "update", func(txCtx context.Context) error {
		// Повторная проверка внутри транзакции, строки читаются FOR UPDATE
		if err := uc.ensureAvailable(txCtx, req); err != nil {
			return err
		}

		result, err := uc.bookingRepo.UpdateByPaymentIntent(txCtx, existing.PaymentIntentID, req.Guest.ID, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrPaymentIntentNotFound
			}
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		updated = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Response{Booking: updated, PaymentIntent: intent}, nil
}

// updateMissed выясняет, почему UPDATE не нашел неоплаченную строку.
// Подтверждение оплаты могло завершиться после первого чтения.
func (uc *UseCase) updateMissed(txCtx context.Context, intentID, userID string) error {
	current, err := uc.bookingRepo.GetByPaymentIntent(txCtx, intentID, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("Checkout: booking for intent=%s disappeared before update", intentID)
			return ErrPaymentIntentNotFound
		}
		return fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, err)
	}

	if current.IsPaid() {
		uc.logger.Warn("Checkout: booking id=%s for intent=%s was paid before update", current.ID, intentID)
		return ErrAlreadyPaid
	}

	return fmt.Errorf("%w: unpaid booking for intent %s was not updated", ErrInternal, intentID)
}

// create переводит NoIntent -> IntentCreated: новое намерение, затем новая строка
func (uc *UseCase) create(ctx context.Context, req *Request, booking *domain.Booking, amount int64) (*Response, error) {
	intent, err := uc.payments.CreateIntent(ctx, amount, uc.cfg.Currency, map[string]string{
		"hotel_id": req.HotelID,
		"room_id":  req.RoomID,
		"user_id":  req.Guest.ID,
	})
	if err != nil {
		return nil, uc.providerError("create intent", "", err)
	}

	booking.PaymentIntentID = intent.ID

	var created *domain.Booking
	err = uc.writeWithRetry(ctx, "create", func(txCtx context.Context) error {
		// Повторная проверка внутри транзакции, строки читаются FOR UPDATE
		if err := uc.ensureAvailable(txCtx, req); err != nil {
			return err
		}

		result, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicatePaymentIntent) {
				return err
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	// Предыдущая попытка успела записать строку: читаем ее вне прерванной транзакции
	if errors.Is(err, bookingRepo.ErrDuplicatePaymentIntent) {
		uc.logger.Warn("Checkout: booking for intent=%s already stored, re-reading", intent.ID)
		created, err = uc.bookingRepo.GetByPaymentIntent(ctx, intent.ID, req.Guest.ID)
		if err != nil {
			err = fmt.Errorf("%w: failed to re-read booking for intent %s: %v", ErrInternal, intent.ID, err)
		}
	}

	if err != nil {
		// Намерение у провайдера остается без локальной записи и истечет неиспользованным
		uc.logger.Error("Checkout: intent=%s created but booking was not stored: %v", intent.ID, err)
		return nil, err
	}

	return &Response{Booking: created, PaymentIntent: intent, Created: true}, nil
}

// writeWithRetry выполняет локальную запись в сериализуемой транзакции.
// Повторяются только внутренние ошибки.
func (uc *UseCase) writeWithRetry(ctx context.Context, op string, fn func(txCtx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= uc.cfg.WriteRetries; attempt++ {
		if attempt > 0 {
			uc.logger.Warn("Checkout: retrying %s, attempt %d/%d: %v", op, attempt, uc.cfg.WriteRetries, err)
		}

		err = uc.txManager.DoSerializable(ctx, fn)
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrDatesUnavailable) ||
			errors.Is(err, ErrAlreadyPaid) ||
			errors.Is(err, ErrPaymentIntentNotFound) ||
			errors.Is(err, bookingRepo.ErrDuplicatePaymentIntent) {
			return err
		}
		if ctx.Err() != nil {
			break
		}
	}

	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %s booking: %v", ErrInternal, op, err)
}

// ensureAvailable проверяет даты по оплаченным бронированиям номера
func (uc *UseCase) ensureAvailable(ctx context.Context, req *Request) error {
	notBefore := uc.timeProvider.Now().Add(-domain.PaidBookingsLookback)

	paid, err := uc.bookingRepo.ListPaidByRoom(ctx, req.RoomID, notBefore)
	if err != nil {
		uc.logger.Error("Checkout: failed to list paid bookings for room id=%s: %v", req.RoomID, err)
		return fmt.Errorf("%w: failed to list paid bookings: %v", ErrInternal, err)
	}

	proposed := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	if domain.HasOverlap(proposed, domain.BookedRanges(paid)) {
		uc.logger.Warn("Checkout: room id=%s is not available for %s..%s",
			req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return ErrDatesUnavailable
	}

	return nil
}

// buildBooking собирает поля бронирования из запроса
func (uc *UseCase) buildBooking(req *Request, hotel *domain.Hotel) *domain.Booking {
	return &domain.Booking{
		UserID:            req.Guest.ID,
		UserName:          req.Guest.Name,
		UserEmail:         req.Guest.Email,
		HotelID:           req.HotelID,
		RoomID:            req.RoomID,
		HotelOwnerID:      hotel.UserID,
		StartDate:         domain.StartOfDay(req.StartDate),
		EndDate:           domain.StartOfDay(req.EndDate),
		BreakfastIncluded: req.BreakfastIncluded,
		Currency:          uc.cfg.Currency,
		TotalPrice:        req.TotalPrice,
		PaymentStatus:     false,
	}
}

// providerError переводит ошибку провайдера в ошибку usecase
func (uc *UseCase) providerError(step, intentID string, err error) error {
	if errors.Is(err, stripeClient.ErrIntentNotFound) {
		uc.logger.Warn("Checkout: %s: intent=%s not found at provider", step, intentID)
		return ErrPaymentIntentNotFound
	}
	uc.logger.Error("Checkout: %s failed, intent=%q: %v", step, intentID, err)
	return fmt.Errorf("%w: %s: %v", ErrPaymentProvider, step, err)
}
