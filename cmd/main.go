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

	adminLoginHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/admin_logout"
	createBookingHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/delete_booking"
	getAdminBookingsHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/get_available_slots"
	getServicesHandler "github.com/TPD2004/kenton-car-wash/internal/api/handlers/get_services"
	"github.com/TPD2004/kenton-car-wash/internal/api/middleware"
	"github.com/TPD2004/kenton-car-wash/internal/auth"
	"github.com/TPD2004/kenton-car-wash/internal/config"
	bookingRepo "github.com/TPD2004/kenton-car-wash/internal/infra/storage/booking"
	bookingsService "github.com/TPD2004/kenton-car-wash/internal/service/bookings"
	createBookingUC "github.com/TPD2004/kenton-car-wash/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/TPD2004/kenton-car-wash/internal/usecase/get_available_slots"
	"github.com/TPD2004/kenton-car-wash/pkg/dbmetrics"
	"github.com/TPD2004/kenton-car-wash/pkg/logger"
	"github.com/TPD2004/kenton-car-wash/pkg/metrics"
	"github.com/TPD2004/kenton-car-wash/pkg/simpletxmanager"
	"github.com/TPD2004/kenton-car-wash/pkg/txmanager"
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

	log.Info("Starting kenton-car-wash booking service...")
	log.Info("Configuration loaded from config.toml")

	// Расписание и часовой пояс уже провалидированы в config.Load
	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load schedule timezone: %v", err)
	}
	schedule, err := cfg.Schedule.Weekly()
	if err != nil {
		log.Fatal("Failed to build weekly schedule: %v", err)
	}
	log.Info("Weekly schedule loaded (timezone=%s)", location)

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

	// Аутентификация администратора
	authenticator, err := auth.NewBcryptAuthenticator(cfg.Admin.SecretHash)
	if err != nil {
		log.Fatal("Failed to initialize admin authenticator: %v", err)
	}
	hashKey, blockKey, err := cfg.Admin.SessionKeys()
	if err != nil {
		log.Fatal("Failed to decode admin session keys: %v", err)
	}
	sessions := auth.NewSessionManager(hashKey, blockKey, cfg.Admin.SessionTTL())
	log.Info("Admin session manager initialized (ttl=%s)", cfg.Admin.SessionTTL())

	// Инициализируем репозитории (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		schedule,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		schedule,
		location,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authenticator, sessions, log)
	adminLogout := adminLogoutHandler.NewHandler(sessions, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Слоты на дату с признаком доступности
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вход в админ-панель
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют валидной админ-сессии)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(sessions))

	// Выход из админ-панели
	admin.HandleFunc("/logout", adminLogout.Handle).Methods(http.MethodPost)

	// Список всех бронирований
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Удаление бронирования
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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
