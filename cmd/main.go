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

	cancelBookingHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/create_booking"
	createPropertyHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/create_property"
	getBookingHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/get_booking"
	getFeeConfigHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/get_fee_config"
	getGuestBookingsHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/get_guest_bookings"
	getPropertyHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/get_property"
	getPropertyBookingsHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/get_property_bookings"
	getPropertyCalendarHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/get_property_calendar"
	listAddonsHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/list_addons"
	listPropertiesHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/list_properties"
	quoteStayHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/quote_stay"
	updateFeeConfigHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/update_fee_config"
	updatePropertyHandler "github.com/tomrobak/vacaflow-booking-service/internal/api/handlers/update_property"
	"github.com/tomrobak/vacaflow-booking-service/internal/api/middleware"
	"github.com/tomrobak/vacaflow-booking-service/internal/config"
	"github.com/tomrobak/vacaflow-booking-service/internal/domain"
	addonRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/addon"
	bookingRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/booking"
	feeConfigRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/feeconfig"
	propertyRepo "github.com/tomrobak/vacaflow-booking-service/internal/infra/storage/property"
	guestServiceClient "github.com/tomrobak/vacaflow-booking-service/internal/integrations/guestservice"
	addonsService "github.com/tomrobak/vacaflow-booking-service/internal/service/addons"
	bookingsService "github.com/tomrobak/vacaflow-booking-service/internal/service/bookings"
	feesService "github.com/tomrobak/vacaflow-booking-service/internal/service/fees"
	propertiesService "github.com/tomrobak/vacaflow-booking-service/internal/service/properties"
	checkAvailabilityUC "github.com/tomrobak/vacaflow-booking-service/internal/usecase/check_availability"
	createBookingUC "github.com/tomrobak/vacaflow-booking-service/internal/usecase/create_booking"
	getCalendarUC "github.com/tomrobak/vacaflow-booking-service/internal/usecase/get_calendar"
	quoteStayUC "github.com/tomrobak/vacaflow-booking-service/internal/usecase/quote_stay"
	"github.com/tomrobak/vacaflow-booking-service/pkg/dbmetrics"
	"github.com/tomrobak/vacaflow-booking-service/pkg/logger"
	"github.com/tomrobak/vacaflow-booking-service/pkg/metrics"
	"github.com/tomrobak/vacaflow-booking-service/pkg/simpletxmanager"
	"github.com/tomrobak/vacaflow-booking-service/pkg/txmanager"
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

	log.Info("Starting vacaflow-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент GuestService
	guestClient := guestServiceClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (GuestService=%s timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		propertyRepository  *propertyRepo.Repository
		addonRepository     *addonRepo.Repository
		feeConfigRepository *feeConfigRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		propertyRepository = propertyRepo.NewRepository(wrappedDB)
		addonRepository = addonRepo.NewRepository(wrappedDB)
		feeConfigRepository = feeConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		propertyRepository = propertyRepo.NewRepository(db)
		addonRepository = addonRepo.NewRepository(db)
		feeConfigRepository = feeConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Дефолтные сборы из конфигурации, применяются при пустой иерархии fee_config
	defaultFees := domain.FeeConfig{
		CleaningFee:    cfg.Pricing.DefaultCleaningFee,
		ServiceFeeRate: cfg.Pricing.DefaultServiceFeeRate,
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		propertyRepository,
		log,
	)
	feeSvc := feesService.NewService(
		feeConfigRepository,
		propertyRepository,
		defaultFees,
		log,
	)
	propertySvc := propertiesService.NewService(propertyRepository, log)
	addonSvc := addonsService.NewService(addonRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		addonRepository,
		feeConfigRepository,
		guestClient,
		txMgr,
		defaultFees,
		log,
	)

	quoteStayUseCase := quoteStayUC.NewUseCase(
		propertyRepository,
		addonRepository,
		feeConfigRepository,
		defaultFees,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getPropertyCalendar := getPropertyCalendarHandler.NewHandler(getCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	listAddons := listAddonsHandler.NewHandler(addonSvc, log)
	getFeeConfig := getFeeConfigHandler.NewHandler(feeSvc, log)
	updateFeeConfig := updateFeeConfigHandler.NewHandler(feeSvc, log)
	listProperties := listPropertiesHandler.NewHandler(propertySvc, log)
	getProperty := getPropertyHandler.NewHandler(propertySvc, log)
	createProperty := createPropertyHandler.NewHandler(propertySvc, log)
	updateProperty := updatePropertyHandler.NewHandler(propertySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог объектов размещения
	api.HandleFunc("/properties", listProperties.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}", getProperty.Handle).Methods(http.MethodGet)

	// Предварительный расчет стоимости проживания
	api.HandleFunc("/properties/{propertyId}/quote", quoteStay.Handle).Methods(http.MethodGet)

	// Проверка доступности дат
	api.HandleFunc("/properties/{propertyId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Календарь занятости на месяц
	api.HandleFunc("/properties/{propertyId}/calendar", getPropertyCalendar.Handle).Methods(http.MethodGet)

	// Действующие сборы объекта
	api.HandleFunc("/properties/{propertyId}/fees", getFeeConfig.Handle).Methods(http.MethodGet)

	// Каталог дополнительных услуг
	api.HandleFunc("/addons", listAddons.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Guest-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования (только владелец объекта)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// История бронирований гостя
	protected.HandleFunc("/guests/{guestId}/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// --- Управление объектом (для владельцев) ---
	// Список бронирований объекта
	protected.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// Изменение сборов объекта
	protected.HandleFunc("/properties/{propertyId}/fees", updateFeeConfig.Handle).Methods(http.MethodPut)

	// Создание и обновление объектов размещения
	protected.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/properties/{propertyId}", updateProperty.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
