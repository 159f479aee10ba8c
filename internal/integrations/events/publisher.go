package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Publisher публикует события бронирований в topic exchange RabbitMQ
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      Logger

	// amqp.Channel не потокобезопасен для публикации
	mu sync.Mutex
}

// NewPublisher подключается к брокеру и объявляет exchange
func NewPublisher(url, exchange string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	log.Info("Events: connected to broker, exchange=%s", exchange)

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		log:      log,
	}, nil
}

// PublishCheckout публикует событие оформления бронирования
func (p *Publisher) PublishCheckout(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, RoutingKeyCheckout, NewBookingEvent(b, time.Now()))
}

// PublishPaid публикует событие подтверждения оплаты
func (p *Publisher) PublishPaid(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, RoutingKeyPaid, NewBookingEvent(b, time.Now()))
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, routingKey, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    uuid.NewString(),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		p.log.Error("Events: failed to publish %s booking_id=%s: %v", routingKey, event.BookingID, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// NoopPublisher используется, когда брокер отключен в конфигурации
type NoopPublisher struct{}

// PublishCheckout ничего не делает
func (NoopPublisher) PublishCheckout(context.Context, *domain.Booking) error { return nil }

// PublishPaid ничего не делает
func (NoopPublisher) PublishPaid(context.Context, *domain.Booking) error { return nil }

// Close ничего не делает
func (NoopPublisher) Close() error { return nil }
