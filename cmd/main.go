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

	cancelBookingHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/create_booking"
	createCategoryHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/create_category"
	createCustomerHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/create_customer"
	createEventHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/create_event"
	deleteCategoryHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/delete_category"
	deleteCustomerHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/delete_customer"
	deleteEventHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/delete_event"
	getBookingHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/get_booking"
	getCategoryHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/get_category"
	getCustomerHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/get_customer"
	getEventHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/get_event"
	listBookingsHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/list_bookings"
	listCategoriesHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/list_categories"
	listCustomersHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/list_customers"
	listEventsHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/list_events"
	listSMSLogsHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/list_sms_logs"
	sendEventRemindersHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/send_event_reminders"
	sendSMSHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/send_sms"
	smsHealthHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/sms_health"
	updateBookingHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/update_booking"
	updateCategoryHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/update_category"
	updateCustomerHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/update_customer"
	updateEventHandler "github.com/m04kA/SMC-EventsService/internal/api/handlers/update_event"
	"github.com/m04kA/SMC-EventsService/internal/api/middleware"
	"github.com/m04kA/SMC-EventsService/internal/config"
	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/internal/infra/memstore"
	bookingRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/booking"
	categoryRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/category"
	customerRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/customer"
	eventRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/event"
	smsLogRepo "github.com/m04kA/SMC-EventsService/internal/infra/storage/smslog"
	twilioClient "github.com/m04kA/SMC-EventsService/internal/integrations/twilio"
	bookingsService "github.com/m04kA/SMC-EventsService/internal/service/bookings"
	categoriesService "github.com/m04kA/SMC-EventsService/internal/service/categories"
	customersService "github.com/m04kA/SMC-EventsService/internal/service/customers"
	eventsService "github.com/m04kA/SMC-EventsService/internal/service/events"
	notificationsService "github.com/m04kA/SMC-EventsService/internal/service/notifications"
	smsLogsService "github.com/m04kA/SMC-EventsService/internal/service/smslogs"
	cancelBookingUC "github.com/m04kA/SMC-EventsService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-EventsService/internal/usecase/create_booking"
	sendEventRemindersUC "github.com/m04kA/SMC-EventsService/internal/usecase/send_event_reminders"
	updateBookingUC "github.com/m04kA/SMC-EventsService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-EventsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-EventsService/pkg/logger"
	"github.com/m04kA/SMC-EventsService/pkg/metrics"
	"github.com/m04kA/SMC-EventsService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-EventsService/pkg/txmanager"
)

// Репозитории имеют две реализации (PostgreSQL и in-memory),
// выбираемые один раз на старте по [database].enabled.
// Локальные интерфейсы покрывают полный набор методов каждой пары.
type customerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id int64, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepository interface {
	Create(ctx context.Context, category *domain.EventCategory) (*domain.EventCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.EventCategory, error)
	List(ctx context.Context) ([]*domain.EventCategory, error)
	Update(ctx context.Context, id int64, category *domain.EventCategory) (*domain.EventCategory, error)
	Delete(ctx context.Context, id int64) error
}

type eventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, filter eventRepo.EventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id int64, event *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

type bookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByEventID(ctx context.Context, eventID int64) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type smsLogRepository interface {
	Insert(ctx context.Context, entry *domain.SMSLog) (*domain.SMSLog, error)
	List(ctx context.Context) ([]*domain.SMSLog, error)
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// nopSMSMetrics используется при выключенных метриках
type nopSMSMetrics struct{}

func (nopSMSMetrics) ObserveSMSAttempt(template string, success bool) {}

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

	log.Info("Starting SMC-EventsService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	var smsMetrics notificationsService.Metrics = nopSMSMetrics{}
	if cfg.Metrics.Enabled {
		smsMetrics = metricsCollector
	}

	// Выбираем хранилище: PostgreSQL или in-memory mock-режим
	var (
		customerRepository customerRepository
		categoryRepository categoryRepository
		eventRepository    eventRepository
		bookingRepository  bookingRepository
		smsLogRepository   smsLogRepository
		txMgr              txManager
	)

	if cfg.Database.Enabled {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			customerRepository = customerRepo.NewRepository(wrappedDB)
			categoryRepository = categoryRepo.NewRepository(wrappedDB)
			eventRepository = eventRepo.NewRepository(wrappedDB)
			bookingRepository = bookingRepo.NewRepository(wrappedDB)
			smsLogRepository = smsLogRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			customerRepository = customerRepo.NewRepository(db)
			categoryRepository = categoryRepo.NewRepository(db)
			eventRepository = eventRepo.NewRepository(db)
			bookingRepository = bookingRepo.NewRepository(db)
			smsLogRepository = smsLogRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	} else {
		// Mock-режим: in-memory хранилище с тестовыми данными
		store := memstore.NewSeeded(time.Now())
		log.Warn("Database disabled, running in mock mode with seeded in-memory store")

		customerRepository = memstore.NewCustomerRepository(store)
		categoryRepository = memstore.NewCategoryRepository(store)
		eventRepository = memstore.NewEventRepository(store)
		bookingRepository = memstore.NewBookingRepository(store)
		smsLogRepository = memstore.NewSMSLogRepository(store)
		txMgr = memstore.NewTxManager()
	}

	// Инициализируем клиента Twilio
	smsClient := twilioClient.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.FromNumber,
		cfg.Twilio.BaseURL,
		time.Duration(cfg.Twilio.Timeout)*time.Second,
		log,
	)
	if smsClient.IsConfigured() {
		log.Info("Twilio client initialized (from=%s, timeout=%ds)", cfg.Twilio.FromNumber, cfg.Twilio.Timeout)
	} else {
		log.Warn("Twilio credentials not set, SMS sending disabled")
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(
		smsClient,
		smsLogRepository,
		smsMetrics,
		log,
		cfg.SMS.CountryCode,
		cfg.SMS.TrunkPrefix,
	)
	customerSvc := customersService.NewService(customerRepository, log)
	categorySvc := categoriesService.NewService(categoryRepository, log)
	eventSvc := eventsService.NewService(eventRepository, categoryRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, customerRepository, eventRepository, log)
	smsLogSvc := smsLogsService.NewService(smsLogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		eventRepository,
		notificationSvc,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		eventRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		eventRepository,
		notificationSvc,
		log,
	)
	sendEventRemindersUseCase := sendEventRemindersUC.NewUseCase(
		bookingRepository,
		customerRepository,
		eventRepository,
		notificationSvc,
		log,
	)

	// Инициализируем handlers
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customerSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(customerSvc, log)

	createCategory := createCategoryHandler.NewHandler(categorySvc, log)
	getCategory := getCategoryHandler.NewHandler(categorySvc, log)
	listCategories := listCategoriesHandler.NewHandler(categorySvc, log)
	updateCategory := updateCategoryHandler.NewHandler(categorySvc, log)
	deleteCategory := deleteCategoryHandler.NewHandler(categorySvc, log)

	createEvent := createEventHandler.NewHandler(eventSvc, log)
	getEvent := getEventHandler.NewHandler(eventSvc, log)
	listEvents := listEventsHandler.NewHandler(eventSvc, log)
	updateEvent := updateEventHandler.NewHandler(eventSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)

	sendEventReminders := sendEventRemindersHandler.NewHandler(sendEventRemindersUseCase, log)
	sendSMS := sendSMSHandler.NewHandler(smsClient, log)
	smsHealth := smsHealthHandler.NewHandler(notificationSvc, log)
	listSMSLogs := listSMSLogsHandler.NewHandler(smsLogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты ---
	api.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPut)
	api.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// --- Категории мероприятий ---
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories", createCategory.Handle).Methods(http.MethodPost)
	api.HandleFunc("/categories/{categoryId}", getCategory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories/{categoryId}", updateCategory.Handle).Methods(http.MethodPut)
	api.HandleFunc("/categories/{categoryId}", deleteCategory.Handle).Methods(http.MethodDelete)

	// --- Мероприятия ---
	api.HandleFunc("/events", listEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/events/{eventId}", getEvent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/events/{eventId}", updateEvent.Handle).Methods(http.MethodPut)
	api.HandleFunc("/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)

	// Рассылка напоминаний о мероприятии
	api.HandleFunc("/events/{eventId}/reminders", sendEventReminders.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования с уведомлением клиента
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- SMS-шлюз ---
	api.HandleFunc("/sms/send", sendSMS.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sms/health", smsHealth.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sms/logs", listSMSLogs.Handle).Methods(http.MethodGet)

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
