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

	closeSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/close_session"
	createItemHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_item"
	deleteItemHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_item"
	duplicateItemHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/duplicate_item"
	getDayLayoutHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_layout"
	getMonthSummaryHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_month_summary"
	getResourcesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_resources"
	getWeekSummaryHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_week_summary"
	moveItemHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/move_item"
	openSessionHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/open_session"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/item"
	resourceRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/resource"
	rosterService "github.com/m04kA/SMC-ScheduleService/internal/service/roster"
	sessionsService "github.com/m04kA/SMC-ScheduleService/internal/service/sessions"
	createItemUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_item"
	deleteItemUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_item"
	duplicateItemUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_item"
	getDayLayoutUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_layout"
	getMonthSummaryUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_summary"
	getWeekSummaryUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_summary"
	moveItemUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/move_item"
	openSessionUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/open_session"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
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

	log.Info("Starting SMC-ScheduleService...")
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

	// Дефолтная сетка сессий из конфигурации
	defaultGrid := buildDefaultGrid(cfg.Grid)
	log.Info("Default time grid: start=%s, slot=%dm, slots=%d",
		defaultGrid.StartOfDay, defaultGrid.SlotMinutes, defaultGrid.SlotCount)

	// Инициализируем репозитории (с метриками или без)
	var (
		itemRepository     *itemRepo.Repository
		resourceRepository *resourceRepo.Repository
	)

	// Интерфейс transaction manager (используется в open_session)
	type TxManager interface {
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		itemRepository = itemRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		itemRepository = itemRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	rosterSvc := rosterService.NewService(resourceRepository, log)

	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	sessionManager := sessionsService.NewManager(sessionTTL, log)

	// Janitor вытесняет истекшие сессии, пока не закроется stop-канал
	stopJanitorCh := make(chan struct{})
	go sessionManager.RunJanitor(stopJanitorCh)
	log.Info("Session janitor started (ttl=%s)", sessionTTL)

	// Инициализируем use cases
	openSessionUseCase := openSessionUC.NewUseCase(
		resourceRepository,
		itemRepository,
		sessionManager,
		txMgr,
		defaultGrid,
		log,
	)
	getDayLayoutUseCase := getDayLayoutUC.NewUseCase(sessionManager, log)
	getWeekSummaryUseCase := getWeekSummaryUC.NewUseCase(sessionManager, log)
	getMonthSummaryUseCase := getMonthSummaryUC.NewUseCase(sessionManager, log)
	createItemUseCase := createItemUC.NewUseCase(sessionManager, itemRepository, log)
	moveItemUseCase := moveItemUC.NewUseCase(sessionManager, itemRepository, log)
	duplicateItemUseCase := duplicateItemUC.NewUseCase(sessionManager, itemRepository, log)
	deleteItemUseCase := deleteItemUC.NewUseCase(sessionManager, itemRepository, log)

	// Инициализируем handlers
	getResources := getResourcesHandler.NewHandler(rosterSvc, log)
	openSession := openSessionHandler.NewHandler(openSessionUseCase, log)
	closeSession := closeSessionHandler.NewHandler(sessionManager, log)
	getDayLayout := getDayLayoutHandler.NewHandler(getDayLayoutUseCase, log)
	getWeekSummary := getWeekSummaryHandler.NewHandler(getWeekSummaryUseCase, log)
	getMonthSummary := getMonthSummaryHandler.NewHandler(getMonthSummaryUseCase, log)
	createItem := createItemHandler.NewHandler(createItemUseCase, log)
	moveItem := moveItemHandler.NewHandler(moveItemUseCase, log)
	duplicateItem := duplicateItemHandler.NewHandler(duplicateItemUseCase, log)
	deleteItem := deleteItemHandler.NewHandler(deleteItemUseCase, log)

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

	// Ростер ресурсов (колонки календаря)
	api.HandleFunc("/resources", getResources.Handle).Methods(http.MethodGet)

	// Раскладка дня и сводки недели/месяца
	api.HandleFunc("/sessions/{sessionId}/days/{date}/layout", getDayLayout.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/week", getWeekSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/month", getMonthSummary.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии планирования ---
	protected.HandleFunc("/sessions", openSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)

	// --- Мутации элементов расписания ---
	protected.HandleFunc("/sessions/{sessionId}/items", createItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/items/{itemId}/move", moveItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/{sessionId}/items/{itemId}/duplicate", duplicateItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{sessionId}/items/{itemId}", deleteItem.Handle).Methods(http.MethodDelete)

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

	// Останавливаем janitor сессий
	close(stopJanitorCh)
	log.Info("Session janitor stopped (%d active sessions dropped)", sessionManager.Count())

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

// buildDefaultGrid строит сетку по умолчанию из секции [grid] конфигурации
// Некорректные значения заменяются доменными дефолтами внутри NewTimeGrid
func buildDefaultGrid(cfg config.GridConfig) domain.TimeGrid {
	dayStart := domain.DefaultDayStart
	if cfg.DayStart != "" {
		if parsed, err := types.NewTimeStringFromString(cfg.DayStart); err == nil {
			dayStart = parsed
		}
	}
	return domain.NewTimeGrid(dayStart, cfg.SlotMinutes, cfg.SlotCount)
}
