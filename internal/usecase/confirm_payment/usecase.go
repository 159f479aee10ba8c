package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	stripeClient "github.com/m04kA/SMC-HotelBooking/internal/integrations/stripe"
)

// UseCase use case подтверждения оплаты бронирования
type UseCase struct {
	bookingRepo BookingRepository
	payments    PaymentProvider
	publisher   EventPublisher
	txManager   TransactionManager
	cfg         Config
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	payments PaymentProvider,
	publisher EventPublisher,
	txManager TransactionManager,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		payments:    payments,
		publisher:   publisher,
		txManager:   txManager,
		cfg:         cfg,
		logger:      logger,
	}
}

// Execute переводит бронирование IntentCreated -> Paid.
// Повторный вызов для оплаченного бронирования ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.PaymentIntentID) == "" {
		return nil, fmt.Errorf("%w: paymentIntentId is required", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmPayment: intent=%s", req.PaymentIntentID)

	if uc.cfg.VerifyWithProvider {
		if err := uc.verify(ctx, req.PaymentIntentID); err != nil {
			return nil, err
		}
	}

	var (
		result      *domain.Booking
		alreadyPaid bool
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Строка читается FOR UPDATE, параллельные подтверждения выстраиваются в очередь
		booking, err := uc.bookingRepo.GetByPaymentIntentID(txCtx, req.PaymentIntentID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsPaid() {
			alreadyPaid = true
			result = booking
			return nil
		}

		paid, err := uc.bookingRepo.SetPaid(txCtx, req.PaymentIntentID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to set booking paid: %v", ErrInternal, err)
		}

		result = paid
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: booking for intent=%s not found", req.PaymentIntentID)
		} else {
			uc.logger.Error("ConfirmPayment: failed for intent=%s: %v", req.PaymentIntentID, err)
		}
		return nil, err
	}

	if alreadyPaid {
		uc.logger.Info("ConfirmPayment: booking id=%s already paid", result.ID)
		return &Response{Booking: result, AlreadyPaid: true}, nil
	}

	if err := uc.publisher.PublishPaid(ctx, result); err != nil {
		uc.logger.Warn("ConfirmPayment: failed to publish paid event for booking id=%s: %v", result.ID, err)
	}

	uc.logger.Info("ConfirmPayment: booking id=%s marked as paid", result.ID)

	return &Response{Booking: result}, nil
}

// verify проверяет, что провайдер списал средства по намерению
func (uc *UseCase) verify(ctx context.Context, paymentIntentID string) error {
	intent, err := uc.payments.RetrieveIntent(ctx, paymentIntentID)
	if err != nil {
		if errors.Is(err, stripeClient.ErrIntentNotFound) {
			uc.logger.Warn("ConfirmPayment: intent=%s not found at provider", paymentIntentID)
			return ErrBookingNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to retrieve intent=%s: %v", paymentIntentID, err)
		return fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	if !intent.IsSucceeded() {
		uc.logger.Warn("ConfirmPayment: intent=%s has status %s", paymentIntentID, intent.Status)
		return fmt.Errorf("%w: intent status is %s", ErrPaymentNotCompleted, intent.Status)
	}

	return nil
}
