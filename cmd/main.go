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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/check_availability"
	checkoutHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/checkout"
	confirmPaymentHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/confirm_payment"
	createHotelHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/create_hotel"
	createRoomHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/create_room"
	deleteBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/delete_booking"
	deleteHotelHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/delete_hotel"
	deleteRoomHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/delete_room"
	getHotelHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_hotel"
	getOwnerBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_owner_bookings"
	getOwnerHotelsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_owner_hotels"
	getRoomBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_room_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_user_bookings"
	searchHotelsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/search_hotels"
	updateHotelHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/update_hotel"
	updateRoomHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	hotelRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/integrations/events"
	"github.com/m04kA/SMC-HotelBooking/internal/integrations/roomlock"
	stripeClient "github.com/m04kA/SMC-HotelBooking/internal/integrations/stripe"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
	hotelsService "github.com/m04kA/SMC-HotelBooking/internal/service/hotels"
	roomsService "github.com/m04kA/SMC-HotelBooking/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
	checkoutUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/checkout"
	confirmPaymentUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_payment"
	"github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/txmanager"
)

// bookingEventPublisher публикация событий бронирования (AMQP или заглушка)
type bookingEventPublisher interface {
	checkoutUC.EventPublisher
	confirmPaymentUC.EventPublisher
	Close() error
}

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

	log.Info("Starting SMC-HotelBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка только пробрасывает запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	hotelRepository := hotelRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)

	// Платежный провайдер
	var paymentMetrics stripeClient.Metrics
	if metricsCollector != nil {
		paymentMetrics = metricsCollector
	}
	payments := stripeClient.NewClient(stripeClient.Config{
		SecretKey:  cfg.Payments.SecretKey,
		BaseURL:    cfg.Payments.BaseURL,
		Timeout:    time.Duration(cfg.Payments.Timeout) * time.Second,
		MaxRetries: cfg.Payments.MaxRetries,
	}, paymentMetrics, log)
	log.Info("Payment provider initialized (currency=%s, timeout=%ds)", cfg.Payments.Currency, cfg.Payments.Timeout)

	// Блокировка номеров
	var locker checkoutUC.RoomLocker = roomlock.NoopLocker{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		locker = roomlock.NewLocker(redisClient, roomlock.Config{
			TTL:         time.Duration(cfg.Redis.LockTTL) * time.Second,
			WaitTimeout: time.Duration(cfg.Redis.LockWait) * time.Millisecond,
		}, log)
		log.Info("Room locks enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTL)
	} else {
		log.Warn("Redis disabled, room locks are not distributed")
	}

	// События бронирования
	var publisher bookingEventPublisher = events.NoopPublisher{}
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to event broker: %v", err)
		}
		publisher = amqpPublisher
		log.Info("Booking events enabled (exchange=%s)", cfg.Events.Exchange)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, log)
	hotelSvc := hotelsService.NewService(hotelRepository, roomRepository, log)
	roomSvc := roomsService.NewService(roomRepository, hotelRepository, log)

	// Инициализируем use cases
	checkoutUseCase := checkoutUC.NewUseCase(
		bookingRepository,
		roomRepository,
		hotelRepository,
		payments,
		locker,
		publisher,
		txMgr,
		checkoutUC.Config{
			Currency:     cfg.Payments.Currency,
			WriteRetries: cfg.Booking.WriteRetries,
		},
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		payments,
		publisher,
		txMgr,
		confirmPaymentUC.Config{VerifyWithProvider: cfg.Payments.VerifyOnConfirm},
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, roomRepository, log)

	// Инициализируем handlers
	searchHotels := searchHotelsHandler.NewHandler(hotelSvc, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	checkout := checkoutHandler.NewHandler(checkoutUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createHotel := createHotelHandler.NewHandler(hotelSvc, log)
	updateHotel := updateHotelHandler.NewHandler(hotelSvc, log)
	deleteHotel := deleteHotelHandler.NewHandler(hotelSvc, log)
	getOwnerHotels := getOwnerHotelsHandler.NewHandler(hotelSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	registerRoutes(api, middleware.JWTAuth(cfg.Auth.JWTSecret, log), routes{
		searchHotels:      searchHotels.Handle,
		getHotel:          getHotel.Handle,
		checkAvailability: checkAvailability.Handle,

		getRoomBookings:  getRoomBookings.Handle,
		checkout:         checkout.Handle,
		confirmPayment:   confirmPayment.Handle,
		deleteBooking:    deleteBooking.Handle,
		getUserBookings:  getUserBookings.Handle,
		getOwnerBookings: getOwnerBookings.Handle,

		getOwnerHotels: getOwnerHotels.Handle,
		createHotel:    createHotel.Handle,
		updateHotel:    updateHotel.Handle,
		deleteHotel:    deleteHotel.Handle,
		createRoom:     createRoom.Handle,
		updateRoom:     updateRoom.Handle,
		deleteRoom:     deleteRoom.Handle,
	})

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}
