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

	"github.com/m04kA/SMC-ContainerSlots/internal/allocator"
	checkFitHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/check_fit"
	checkManifestHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/check_manifest"
	createContainerHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/create_container"
	createReservationHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/create_reservation"
	getContainerHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/get_container"
	getLayoutHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/get_layout"
	listContainersHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/list_containers"
	previewAllocationHandler "github.com/m04kA/SMC-ContainerSlots/internal/api/handlers/preview_allocation"
	"github.com/m04kA/SMC-ContainerSlots/internal/api/middleware"
	"github.com/m04kA/SMC-ContainerSlots/internal/config"
	containerRepo "github.com/m04kA/SMC-ContainerSlots/internal/infra/storage/container"
	containersService "github.com/m04kA/SMC-ContainerSlots/internal/service/containers"
	checkManifestUC "github.com/m04kA/SMC-ContainerSlots/internal/usecase/check_manifest"
	createReservationUC "github.com/m04kA/SMC-ContainerSlots/internal/usecase/create_reservation"
	previewAllocationUC "github.com/m04kA/SMC-ContainerSlots/internal/usecase/preview_allocation"
	"github.com/m04kA/SMC-ContainerSlots/pkg/dbmetrics"
	"github.com/m04kA/SMC-ContainerSlots/pkg/logger"
	"github.com/m04kA/SMC-ContainerSlots/pkg/metrics"
	"github.com/m04kA/SMC-ContainerSlots/pkg/txmanager"
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

	log.Info("Starting SMC-ContainerSlots...")

	// Геометрия контейнера одна на весь сервис
	layout, err := allocator.NewLayout(
		cfg.Container.Rows,
		cfg.Container.Cols,
		cfg.Container.Envelope.ToDomain(),
		cfg.Container.SlotUnit.ToDomain(),
	)
	if err != nil {
		log.Fatal("Invalid container layout: %v", err)
	}
	priceTiers := cfg.Container.Tiers()
	log.Info("Container layout %dx%d, %d price tiers", layout.Rows, layout.Cols, len(priceTiers))

	// Коллекторы создаются всегда, use cases пишут в них метрики размещения.
	// Флаг enabled управляет только публикацией /metrics и метриками БД.
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозиторий и менеджер транзакций
	containerRepository := containerRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	containerSvc := containersService.NewService(
		containerRepository,
		txMgr,
		layout,
		priceTiers,
		containersService.DemoSettings{
			OccupancyRate: cfg.Demo.OccupancyRate,
			Routes:        cfg.Demo.Routes,
		},
		log,
	)

	// Инициализируем use cases
	previewAllocationUseCase := previewAllocationUC.NewUseCase(
		containerRepository,
		layout,
		priceTiers,
		metricsCollector,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		containerRepository,
		txMgr,
		layout,
		priceTiers,
		metricsCollector,
		log,
	)

	checkManifestUseCase := checkManifestUC.NewUseCase(
		containerRepository,
		layout,
		priceTiers,
		metricsCollector,
		log,
	)

	// Демо-рейсы на ближайшие месяцы
	if cfg.Demo.Enabled {
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
		if err := containerSvc.SeedUpcoming(seedCtx, time.Now(), cfg.Demo.MonthsAhead); err != nil {
			log.Error("Failed to seed demo containers: %v", err)
		}
		cancelSeed()
	}

	// Инициализируем handlers
	getLayout := getLayoutHandler.NewHandler(containerSvc)
	checkFit := checkFitHandler.NewHandler(containerSvc, log)
	listContainers := listContainersHandler.NewHandler(containerSvc, log)
	createContainer := createContainerHandler.NewHandler(containerSvc, log)
	getContainer := getContainerHandler.NewHandler(containerSvc, log)
	previewAllocation := previewAllocationHandler.NewHandler(previewAllocationUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkManifest := checkManifestHandler.NewHandler(checkManifestUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сетка и проверка груза ---
	api.HandleFunc("/layout", getLayout.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fit-check", checkFit.Handle).Methods(http.MethodPost)

	// --- Контейнеры ---
	api.HandleFunc("/containers", listContainers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/containers", createContainer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/containers/{containerId}", getContainer.Handle).Methods(http.MethodGet)

	// --- Размещение груза ---
	api.HandleFunc("/containers/{containerId}/allocation", previewAllocation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/containers/{containerId}/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/containers/{containerId}/manifest", checkManifest.Handle).Methods(http.MethodPost)

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
	close(stopMetricsCh)

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
