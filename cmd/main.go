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

	addReviewHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/add_review"
	confirmPaymentHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/confirm_payment"
	createAppointmentHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/create_appointment"
	createBookingHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/create_booking"
	createLocationHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/create_location"
	createPaymentIntentHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/create_payment_intent"
	deactivateLocationHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/deactivate_location"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/get_booking"
	getChefAvailabilityHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/get_chef_availability"
	getLocationHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/get_location"
	listChefBookingsHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/list_chef_bookings"
	listChefLocationsHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/list_chef_locations"
	listClientBookingsHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/list_client_bookings"
	listDisputesHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/list_disputes"
	resolveDisputeHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/resolve_dispute"
	transitionAppointmentHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/transition_appointment"
	transitionBookingHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/transition_booking"
	updateChefAvailabilityHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/update_chef_availability"
	updateLocationHandler "github.com/m04kA/SMC-ChefReservationService/internal/api/handlers/update_location"
	"github.com/m04kA/SMC-ChefReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ChefReservationService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/location"
	scheduleRepo "github.com/m04kA/SMC-ChefReservationService/internal/infra/storage/schedule"
	chefCatalogClient "github.com/m04kA/SMC-ChefReservationService/internal/integrations/chefcatalog"
	"github.com/m04kA/SMC-ChefReservationService/internal/integrations/notifier"
	paymentServiceClient "github.com/m04kA/SMC-ChefReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/access"
	availabilityService "github.com/m04kA/SMC-ChefReservationService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-ChefReservationService/internal/service/bookings"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/capacity"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/conflicts"
	locationsService "github.com/m04kA/SMC-ChefReservationService/internal/service/locations"
	"github.com/m04kA/SMC-ChefReservationService/internal/service/refunds"
	confirmPaymentUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/confirm_payment"
	createAppointmentUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_appointment"
	createBookingUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_booking"
	createPaymentIntentUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_payment_intent"
	getAvailableSlotsUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/get_available_slots"
	resolveDisputeUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/resolve_dispute"
	startDueBookingsUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/start_due_bookings"
	transitionAppointmentUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_appointment"
	transitionBookingUC "github.com/m04kA/SMC-ChefReservationService/internal/usecase/transition_booking"
	"github.com/m04kA/SMC-ChefReservationService/migrations"
	"github.com/m04kA/SMC-ChefReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/logger"
	"github.com/m04kA/SMC-ChefReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ChefReservationService/pkg/migrator"
	"github.com/m04kA/SMC-ChefReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ChefReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Накатываем миграции
	if cfg.Database.AutoMigrate {
		if err := migrator.Up(migrations.FS, cfg.Database.URL(), log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
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

	// Обёртка над пулом: без коллектора метрики не пишутся
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis для событий резерваций
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is unavailable, events will be dropped until it recovers: %v", err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, channel=%s)", cfg.Redis.Addr, cfg.Redis.Channel)
	}
	pingCancel()

	eventNotifier := notifier.New(redisClient, cfg.Redis.Channel, log)

	// Инициализируем интеграционных клиентов
	catalogClient := chefCatalogClient.NewClient(
		cfg.ChefCatalog.URL,
		time.Duration(cfg.ChefCatalog.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ChefCatalog=%s timeout=%ds, PaymentService=%s timeout=%ds)",
		cfg.ChefCatalog.URL, cfg.ChefCatalog.Timeout, cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	locationRepository := locationRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Инициализируем доменные сервисы
	refundPolicy, err := refunds.New(cfg.Booking.RefundPolicy)
	if err != nil {
		log.Fatal("Invalid refund policy: %v", err)
	}
	accessChecker := access.NewChecker(catalogClient, log)
	resolver := capacity.NewResolver()
	detector := conflicts.NewDetector(scheduleRepository, metricsCollector, log)
	retryBudget := cfg.Booking.RetryBudget()

	bookingSvc := bookingsService.NewService(bookingRepository, accessChecker, log)
	locationSvc := locationsService.NewService(locationRepository, accessChecker, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, accessChecker, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		catalogClient,
		resolver,
		detector,
		txMgr,
		eventNotifier,
		metricsCollector,
		createBookingUC.Config{
			DepositPercent: cfg.Booking.DepositPercent,
			Retry:          retryBudget,
		},
		log,
	)

	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		accessChecker,
		paymentClient,
		refundPolicy,
		txMgr,
		eventNotifier,
		metricsCollector,
		retryBudget,
		log,
	)

	resolveDisputeUseCase := resolveDisputeUC.NewUseCase(
		bookingRepository,
		paymentClient,
		txMgr,
		eventNotifier,
		metricsCollector,
		log,
	)

	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(bookingRepository, paymentClient, retryBudget, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(bookingRepository, paymentClient, eventNotifier, retryBudget, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		locationRepository,
		resolver,
		detector,
		txMgr,
		eventNotifier,
		metricsCollector,
		retryBudget,
		log,
	)

	transitionAppointmentUseCase := transitionAppointmentUC.NewUseCase(
		appointmentRepository,
		accessChecker,
		eventNotifier,
		metricsCollector,
		retryBudget,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		locationRepository,
		scheduleRepository,
		log,
	)

	startDueBookingsUseCase := startDueBookingsUC.NewUseCase(
		bookingRepository,
		transitionBookingUseCase,
		cfg.Booking.StartWorkerBatch,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(transitionBookingUseCase, log)
	listClientBookings := listClientBookingsHandler.NewHandler(bookingSvc, log)
	listChefBookings := listChefBookingsHandler.NewHandler(bookingSvc, log)
	addReview := addReviewHandler.NewHandler(bookingSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	listDisputes := listDisputesHandler.NewHandler(bookingSvc, log)
	resolveDispute := resolveDisputeHandler.NewHandler(resolveDisputeUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(transitionAppointmentUseCase, log)
	createLocation := createLocationHandler.NewHandler(locationSvc, log)
	getLocation := getLocationHandler.NewHandler(locationSvc, log)
	updateLocation := updateLocationHandler.NewHandler(locationSvc, log)
	deactivateLocation := deactivateLocationHandler.NewHandler(locationSvc, log)
	listChefLocations := listChefLocationsHandler.NewHandler(locationSvc, log)
	getChefAvailability := getChefAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateChefAvailability := updateChefAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		api.Use(limiter.Limit)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты площадки шефа
	api.HandleFunc("/chef-home/{locationId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Площадки шефа
	api.HandleFunc("/chef-home/{locationId}", getLocation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/chefs/{chefId}/locations", listChefLocations.Handle).Methods(http.MethodGet)

	// Доступность шефа
	api.HandleFunc("/chefs/{chefId}/availability", getChefAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", transitionBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/review", addReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients/me/bookings", listClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/chefs/{chefId}/bookings", listChefBookings.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/bookings/{bookingId}/payment-intents", createPaymentIntent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// --- Визиты на площадку шефа ---
	protected.HandleFunc("/chef-home/{locationId}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/chef-home/appointments/{appointmentId}/status", transitionAppointment.Handle).Methods(http.MethodPatch)

	// --- Управление профилем шефа ---
	protected.HandleFunc("/chefs/{chefId}/locations", createLocation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/chef-home/{locationId}", updateLocation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/chef-home/{locationId}", deactivateLocation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/chefs/{chefId}/availability", updateChefAvailability.Handle).Methods(http.MethodPut)

	// --- Споры (администраторы) ---
	protected.HandleFunc("/admin/disputes", listDisputes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/disputes/{bookingId}/resolve", resolveDispute.Handle).Methods(http.MethodPut)

	// Фоновый перевод подтверждённых бронирований в IN_PROGRESS
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		runStartDueBookings(workerCtx, startDueBookingsUseCase, time.Duration(cfg.Booking.StartWorkerInterval)*time.Second, log)
	}()

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

	stopWorker()
	<-workerDone

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся публикации событий из очереди
	eventNotifier.Close()

	log.Info("Server stopped gracefully")
}

// runStartDueBookings периодически запускает use case до отмены ctx.
// interval <= 0 выключает воркер
func runStartDueBookings(ctx context.Context, uc *startDueBookingsUC.UseCase, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		log.Info("Start-due-bookings worker disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("Start-due-bookings worker started (interval=%s)", interval)
	for {
		select {
		case <-ctx.Done():
			log.Info("Start-due-bookings worker stopped")
			return
		case <-ticker.C:
			result, err := uc.Execute(ctx)
			if err != nil {
				log.Error("Start-due-bookings worker: run failed: %v", err)
				continue
			}
			if result.Started > 0 || result.Failed > 0 {
				log.Info("Start-due-bookings worker: started=%d, skipped=%d, failed=%d",
					result.Started, result.Skipped, result.Failed)
			}
		}
	}
}
