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

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers"
	changeBookingStatusHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/change_booking_status"
	exportBookingsHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/export_bookings"
	forgotPasswordHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/forgot_password"
	getCompanionHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/get_companion"
	getCompanionAvailabilityHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/get_companion_availability"
	getDashboardHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/get_dashboard"
	getMeHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/get_me"
	getPanelTextsHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/get_panel_texts"
	getStatusLogHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/get_status_log"
	healthHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/health"
	likeCompanionHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/like_companion"
	listCompanionsHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/list_companions"
	loginHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/logout"
	notificationsWSHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/notifications_ws"
	refreshBookingsHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/refresh_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-CompanionAdmin/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-CompanionAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-CompanionAdmin/internal/config"
	"github.com/m04kA/SMC-CompanionAdmin/internal/export"
	sessionRepo "github.com/m04kA/SMC-CompanionAdmin/internal/infra/storage/session"
	statusLogRepo "github.com/m04kA/SMC-CompanionAdmin/internal/infra/storage/statuslog"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
	"github.com/m04kA/SMC-CompanionAdmin/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings"
	companionsService "github.com/m04kA/SMC-CompanionAdmin/internal/service/companions"
	notificationsService "github.com/m04kA/SMC-CompanionAdmin/internal/service/notifications"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
	exportBookingsUC "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/export_bookings"
	getDashboardUC "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_dashboard"
	getStatusLogUC "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_status_log"
	updateBookingStatusUC "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-CompanionAdmin/internal/websocket"
	"github.com/m04kA/SMC-CompanionAdmin/pkg/dbmetrics"
	"github.com/m04kA/SMC-CompanionAdmin/pkg/logger"
	"github.com/m04kA/SMC-CompanionAdmin/pkg/metrics"
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

	log.Info("Starting SMC-CompanionAdmin...")
	log.Info("Configuration loaded from config.toml")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	healthChecks := map[string]healthHandler.Checker{}

	// Клиент CMS
	cmsOpts := []cms.Option{
		cms.WithAPIToken(cfg.CMS.APIToken),
		cms.WithLocale(cfg.CMS.Locale),
	}
	if metricsCollector != nil {
		cmsOpts = append(cmsOpts, cms.WithRecorder(metricsCollector))
	}
	cmsClient := cms.NewClient(cfg.CMS.URL, time.Duration(cfg.CMS.Timeout)*time.Second, log, cmsOpts...)
	log.Info("CMS client initialized (url=%s, timeout=%ds, locale=%s)", cfg.CMS.URL, cfg.CMS.Timeout, cfg.CMS.Locale)

	// Хранилище сессий: Redis, при недоступности - память процесса
	var sessionStore sessionService.SessionRepository
	redisClient := sessionRepo.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
	err = sessionRepo.Ping(pingCtx, redisClient)
	pingCancel()
	if err != nil {
		log.Warn("Redis unavailable (%v), sessions will be kept in memory", err)
		sessionStore = sessionRepo.NewMemoryRepository()
	} else {
		log.Info("Successfully connected to Redis (address=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
		sessionStore = sessionRepo.NewRepository(redisClient, cfg.Redis.KeyPrefix)
		healthChecks["redis"] = healthHandler.CheckFunc(func(ctx context.Context) error {
			return sessionRepo.Ping(ctx, redisClient)
		})
	}

	// Журнал смены статусов в Postgres (опционально)
	var (
		auditAppender updateBookingStatusUC.StatusLogRepository
		auditReader   getStatusLogUC.StatusLogRepository
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

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var observer dbmetrics.Observer
		if metricsCollector != nil {
			observer = metricsCollector
		}
		statusLog := statusLogRepo.NewRepository(dbmetrics.New(db, observer))
		if err := statusLog.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare status log schema: %v", err)
		}

		auditAppender = statusLog
		auditReader = statusLog
		healthChecks["postgres"] = healthHandler.CheckFunc(db.PingContext)
	} else {
		log.Info("Status log disabled (database.enabled = false)")
	}

	// Websocket hub для уведомлений
	var hubGauge websocket.Gauge
	if metricsCollector != nil {
		hubGauge = metricsCollector.WebSocketClients
	}
	hub := websocket.NewHub(log, hubGauge)
	go hub.Run(ctx)
	broadcaster := websocket.NewEventBroadcaster(hub)

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(cfg.NotificationTTL(), broadcaster, log)
	sessionSvc := sessionService.NewService(sessionStore, cmsClient, cfg.SessionTTL(), log)
	companionsSvc := companionsService.NewService(cmsClient, log)

	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(cmsClient, auditAppender, log)

	bookingOpts := []bookingsService.Option{
		bookingsService.WithPanelTexts(cmsClient, cfg.CMS.Locale),
		bookingsService.WithBroadcaster(broadcaster),
	}
	if metricsCollector != nil {
		bookingOpts = append(bookingOpts, bookingsService.WithRecorder(metricsCollector))
	}
	bookingSvc := bookingsService.NewService(
		cmsClient,
		updateBookingStatusUseCase,
		notificationSvc,
		bookingsService.NewCurrencyFormatter(cfg.Dashboard.CurrencySymbol, cfg.Dashboard.CurrencyLocale),
		log,
		bookingOpts...,
	)

	// Первая загрузка списка; ошибка не фатальна, список подтянется при следующей синхронизации
	resync := scheduler.NewScheduler(cfg.Scheduler.ResyncSpec, bookingSvc, broadcaster, log)
	if _, err := resync.RunOnce(ctx); err != nil {
		log.Warn("Initial bookings load failed: %v", err)
	}
	if err := resync.Start(); err != nil {
		log.Fatal("Failed to start scheduler: %v", err)
	}

	// Инициализируем use cases
	getDashboardUseCase := getDashboardUC.NewUseCase(sessionSvc, bookingSvc, notificationSvc, cfg.Dashboard.PageSize, log)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(sessionSvc, bookingSvc, export.WriteBookings, log)
	getStatusLogUseCase := getStatusLogUC.NewUseCase(auditReader, log)

	// Инициализируем handlers
	cookie := handlers.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}

	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	login := loginHandler.NewHandler(sessionSvc, cookie, log)
	logout := logoutHandler.NewHandler(sessionSvc, cookie, log)
	getMe := getMeHandler.NewHandler(sessionSvc, cookie, log)
	forgotPassword := forgotPasswordHandler.NewHandler(sessionSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	refreshBookings := refreshBookingsHandler.NewHandler(resync, log)
	changeBookingStatus := changeBookingStatusHandler.NewHandler(bookingSvc, notificationSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)
	getStatusLog := getStatusLogHandler.NewHandler(getStatusLogUseCase, log)
	notificationsWS := notificationsWSHandler.NewHandler(hub, notificationSvc, log)
	listCompanions := listCompanionsHandler.NewHandler(companionsSvc, log)
	getCompanion := getCompanionHandler.NewHandler(companionsSvc, log)
	likeCompanion := likeCompanionHandler.NewHandler(companionsSvc, log)
	getCompanionAvailability := getCompanionAvailabilityHandler.NewHandler(companionsSvc, log)
	getPanelTexts := getPanelTextsHandler.NewHandler(companionsSvc, log)
	health := healthHandler.NewHandler(healthChecks)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Вебхук календаря (без сессии)
	r.HandleFunc("/api/cal-webhook/update-status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/forgot-password", forgotPassword.Handle).Methods(http.MethodPost)

	// Галерея компаньонов
	api.HandleFunc("/companions", listCompanions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companions/availability/{eventTypeId}", getCompanionAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companions/{documentId}", getCompanion.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companions/{documentId}/like", likeCompanion.Handle).Methods(http.MethodPost)
	api.HandleFunc("/panel-texts", getPanelTexts.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (сессия администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.SessionAuth(sessionSvc, cookie.Name, log))

	admin.HandleFunc("/bookings", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/refresh", refreshBookings.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", changeBookingStatus.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/status-log", getStatusLog.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/ws", notificationsWS.Handle).Methods(http.MethodGet)

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

	resync.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем hub (закрывает websocket клиентов)
	stop()

	log.Info("Server stopped gracefully")
}
