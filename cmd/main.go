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

	createActivityHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/create_activity"
	createScheduleHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/create_schedule"
	deleteActivityHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/delete_activity"
	deleteScheduleHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/delete_schedule"
	getActivityHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_activity"
	getActivityCountHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_activity_count"
	getDayCountHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_day_count"
	getDayScheduleHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_day_schedule"
	getMaterialsNeededHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_materials_needed"
	getScheduleHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_schedule"
	getWeekScheduleHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/get_week_schedule"
	listActivitiesHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/list_activities"
	updateActivityHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/update_activity"
	updateScheduleHandler "github.com/m04kA/CC-ScheduleService/internal/api/handlers/update_schedule"
	"github.com/m04kA/CC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CC-ScheduleService/internal/config"
	"github.com/m04kA/CC-ScheduleService/internal/conflict"
	activityRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/activity"
	scheduleRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/schedule"
	activitiesService "github.com/m04kA/CC-ScheduleService/internal/service/activities"
	schedulesService "github.com/m04kA/CC-ScheduleService/internal/service/schedules"
	createScheduleUC "github.com/m04kA/CC-ScheduleService/internal/usecase/create_schedule"
	getDayViewUC "github.com/m04kA/CC-ScheduleService/internal/usecase/get_day_view"
	getMaterialsNeededUC "github.com/m04kA/CC-ScheduleService/internal/usecase/get_materials_needed"
	getWeekViewUC "github.com/m04kA/CC-ScheduleService/internal/usecase/get_week_view"
	updateScheduleUC "github.com/m04kA/CC-ScheduleService/internal/usecase/update_schedule"
	"github.com/m04kA/CC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/CC-ScheduleService/pkg/logger"
	"github.com/m04kA/CC-ScheduleService/pkg/metrics"
	"github.com/m04kA/CC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/CC-ScheduleService/pkg/txmanager"
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

	log.Info("Starting CC-ScheduleService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository *scheduleRepo.Repository
		activityRepository *activityRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Детектор конфликтов расписания
	detector := conflict.NewDetector(scheduleRepository)

	// Инициализируем сервисы
	activitySvc := activitiesService.NewService(activityRepository, scheduleRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		activityRepository,
		detector,
		txMgr,
		log,
	)
	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		scheduleRepository,
		detector,
		txMgr,
		log,
	)
	getWeekViewUseCase := getWeekViewUC.NewUseCase(scheduleRepository, log)
	getDayViewUseCase := getDayViewUC.NewUseCase(scheduleRepository, log)
	getMaterialsNeededUseCase := getMaterialsNeededUC.NewUseCase(scheduleRepository, log)

	// Инициализируем handlers
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekViewUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayViewUseCase, log)
	getDayCount := getDayCountHandler.NewHandler(scheduleSvc, log)
	getMaterialsNeeded := getMaterialsNeededHandler.NewHandler(getMaterialsNeededUseCase, log)
	listActivities := listActivitiesHandler.NewHandler(activitySvc, log)
	createActivity := createActivityHandler.NewHandler(activitySvc, log)
	getActivity := getActivityHandler.NewHandler(activitySvc, log)
	updateActivity := updateActivityHandler.NewHandler(activitySvc, log)
	deleteActivity := deleteActivityHandler.NewHandler(activitySvc, log)
	getActivityCount := getActivityCountHandler.NewHandler(activitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без идентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.DefaultUser))

	// --- Расписание ---
	// Недельное представление (текущая или указанная неделя)
	api.HandleFunc("/schedule/week", getWeekSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/week/{startDate}", getWeekSchedule.Handle).Methods(http.MethodGet)

	// Дневное представление и количество записей на день
	api.HandleFunc("/schedule/day", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/day/{date}", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/day/{date}/count", getDayCount.Handle).Methods(http.MethodGet)

	// Сводка материалов за период
	api.HandleFunc("/schedule/materials/needed", getMaterialsNeeded.Handle).Methods(http.MethodGet)

	// CRUD записей расписания
	api.HandleFunc("/schedule", createSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedule/{id:[0-9]+}", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/{id:[0-9]+}", updateSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedule/{id:[0-9]+}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Активности ---
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities", createActivity.Handle).Methods(http.MethodPost)
	api.HandleFunc("/activities/count", getActivityCount.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}", getActivity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{id:[0-9]+}", updateActivity.Handle).Methods(http.MethodPut)
	api.HandleFunc("/activities/{id:[0-9]+}", deleteActivity.Handle).Methods(http.MethodDelete)

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
