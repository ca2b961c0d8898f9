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

	cancelBookingHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/cancel_booking"
	cleanupRemindersHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/cleanup_reminders"
	completeReminderHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/complete_reminder"
	createBookingHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/create_booking"
	createVehicleHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/create_vehicle"
	deleteVehicleHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/delete_vehicle"
	exportBackupHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/export_backup"
	generateRemindersHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/generate_reminders"
	getBookingHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_booking"
	getVehicleHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/get_vehicle"
	importBackupHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/import_backup"
	listBookingsHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_bookings"
	listRemindersHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_reminders"
	listServiceTypesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_service_types"
	listVehiclesHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/list_vehicles"
	lookupRegistrationHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/lookup_registration"
	updateBookingStatusHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/update_booking_status"
	updateVehicleHandler "github.com/m04kA/SMC-GarageService/internal/api/handlers/update_vehicle"
	"github.com/m04kA/SMC-GarageService/internal/api/middleware"
	"github.com/m04kA/SMC-GarageService/internal/config"
	bookingRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/booking"
	reminderRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reminder"
	serviceTypeRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/servicetype"
	vehicleRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-GarageService/internal/integrations/motapi"
	backupService "github.com/m04kA/SMC-GarageService/internal/service/backup"
	bookingsService "github.com/m04kA/SMC-GarageService/internal/service/bookings"
	motService "github.com/m04kA/SMC-GarageService/internal/service/mot"
	remindersService "github.com/m04kA/SMC-GarageService/internal/service/reminders"
	serviceTypesService "github.com/m04kA/SMC-GarageService/internal/service/servicetypes"
	vehiclesService "github.com/m04kA/SMC-GarageService/internal/service/vehicles"
	createBookingUC "github.com/m04kA/SMC-GarageService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/metrics"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
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

	log.Info("Starting SMC-GarageService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиент MOT History API
	motClient := motapi.NewClient(
		motapi.Config{
			TokenURL:     cfg.MOTAPI.TokenURL,
			BaseURL:      cfg.MOTAPI.BaseURL,
			ClientID:     cfg.MOTAPI.ClientID,
			ClientSecret: cfg.MOTAPI.ClientSecret,
			Scope:        cfg.MOTAPI.Scope,
			APIKey:       cfg.MOTAPI.APIKey,
		},
		time.Duration(cfg.MOTAPI.Timeout)*time.Second,
		log,
	)
	log.Info("MOT History API client initialized (base=%s timeout=%ds)",
		cfg.MOTAPI.BaseURL, cfg.MOTAPI.Timeout)

	// Инициализируем репозитории
	vehicleRepository := vehicleRepo.NewRepository(db)
	serviceTypeRepository := serviceTypeRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	reminderRepository := reminderRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	vehicleSvc := vehiclesService.NewService(vehicleRepository, bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	reminderSvc := remindersService.NewService(reminderRepository, vehicleRepository, log)
	serviceTypeSvc := serviceTypesService.NewService(serviceTypeRepository, log)
	motSvc := motService.NewService(motClient, log)
	backupSvc := backupService.NewService(
		vehicleRepository,
		serviceTypeRepository,
		bookingRepository,
		reminderRepository,
		txMgr,
		log,
	)

	// Наполняем справочник типов услуг при первом запуске
	if err := serviceTypeSvc.Seed(context.Background()); err != nil {
		log.Fatal("Failed to seed service types: %v", err)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		vehicleRepository,
		serviceTypeRepository,
		bookingRepository,
		reminderRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listServiceTypes := listServiceTypesHandler.NewHandler(serviceTypeSvc, log)
	listReminders := listRemindersHandler.NewHandler(reminderSvc, log)
	completeReminder := completeReminderHandler.NewHandler(reminderSvc, log)
	generateReminders := generateRemindersHandler.NewHandler(reminderSvc, log)
	cleanupReminders := cleanupRemindersHandler.NewHandler(reminderSvc, log)
	lookupRegistration := lookupRegistrationHandler.NewHandler(motSvc, log)
	exportBackup := exportBackupHandler.NewHandler(backupSvc, log)
	importBackup := importBackupHandler.NewHandler(backupSvc, log)

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

	// --- Автомобили ---
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Справочник услуг ---
	api.HandleFunc("/service-types", listServiceTypes.Handle).Methods(http.MethodGet)

	// --- Напоминания ---
	api.HandleFunc("/reminders", listReminders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reminders/completed", cleanupReminders.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/reminders/{reminderId}/complete", completeReminder.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/vehicles/{vehicleId}/reminders/generate", generateReminders.Handle).Methods(http.MethodPost)

	// --- MOT History API ---
	api.HandleFunc("/mot/{registration}", lookupRegistration.Handle).Methods(http.MethodGet)

	// --- Backup ---
	api.HandleFunc("/backup/export", exportBackup.Handle).Methods(http.MethodGet)
	api.HandleFunc("/backup/import", importBackup.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
