package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	adminCreateFaqHandler "github.com/m04kA/keystone-front/internal/api/handlers/admin_create_faq"
	adminCreateNoticeHandler "github.com/m04kA/keystone-front/internal/api/handlers/admin_create_notice"
	adminGetReservationHandler "github.com/m04kA/keystone-front/internal/api/handlers/admin_get_reservation"
	adminListReservationsHandler "github.com/m04kA/keystone-front/internal/api/handlers/admin_list_reservations"
	adminRefreshThemesHandler "github.com/m04kA/keystone-front/internal/api/handlers/admin_refresh_themes"
	adminUpdateReservationHandler "github.com/m04kA/keystone-front/internal/api/handlers/admin_update_reservation"
	confirmationFlowHandler "github.com/m04kA/keystone-front/internal/api/handlers/confirmation_flow"
	getAvailableSlotsHandler "github.com/m04kA/keystone-front/internal/api/handlers/get_available_slots"
	getCatalogAvailabilityHandler "github.com/m04kA/keystone-front/internal/api/handlers/get_catalog_availability"
	getLocationsHandler "github.com/m04kA/keystone-front/internal/api/handlers/get_locations"
	getNoticesHandler "github.com/m04kA/keystone-front/internal/api/handlers/get_notices"
	getThemeHandler "github.com/m04kA/keystone-front/internal/api/handlers/get_theme"
	listThemesHandler "github.com/m04kA/keystone-front/internal/api/handlers/list_themes"
	reservationFlowHandler "github.com/m04kA/keystone-front/internal/api/handlers/reservation_flow"
	"github.com/m04kA/keystone-front/internal/api/middleware"
	"github.com/m04kA/keystone-front/internal/config"
	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/infra/cache"
	themeCache "github.com/m04kA/keystone-front/internal/infra/cache/themes"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
	adminService "github.com/m04kA/keystone-front/internal/service/admin"
	catalogService "github.com/m04kA/keystone-front/internal/service/catalog"
	contentService "github.com/m04kA/keystone-front/internal/service/content"
	"github.com/m04kA/keystone-front/internal/service/sessions"
	confirmationFlowUC "github.com/m04kA/keystone-front/internal/usecase/confirmation_flow"
	getAvailableSlotsUC "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
	reservationFlowUC "github.com/m04kA/keystone-front/internal/usecase/reservation_flow"
	"github.com/m04kA/keystone-front/pkg/logger"
	"github.com/m04kA/keystone-front/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	adminToken := flag.String("admin-token", "", "print an admin bearer token for the given subject and exit")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *adminToken != "" {
		token, err := middleware.NewToken(cfg.Auth.JWTSecret, *adminToken, middleware.RoleAdmin, 12*time.Hour)
		if err != nil {
			fmt.Printf("Failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting keystone-front...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := time.LoadLocation(cfg.Availability.TimeZone)
	if err != nil {
		log.Fatal("Unknown time zone %q: %v", cfg.Availability.TimeZone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Контекст фоновых задач, отменяется при остановке
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Redis для кэша каталога тем. Без Redis сервис работает напрямую с бэкендом.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewClient(bgCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("Redis unavailable, theme cache disabled: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("Connected to Redis at %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
	}
	themes := themeCache.NewCache(redisClient, time.Duration(cfg.Redis.ThemeTTLSeconds)*time.Second)

	// Инициализируем клиента бэкенда
	backendClient := keystone.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		keystone.Credential{Header: cfg.Backend.CredentialHeader, Value: cfg.Backend.Credential},
		metricsCollector,
		log,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(backendClient, themes, cfg.Backend.UploadBase, log)
	adminSvc := adminService.NewService(backendClient, log)
	contentSvc := contentService.NewService(backendClient, location, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		backendClient,
		cfg.Availability.MaxParallel,
		location,
		metricsCollector,
		log,
	)

	// Реестры живых сценариев
	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	sweepInterval := time.Duration(cfg.Sessions.SweepIntervalSeconds) * time.Second

	reservationFlows := sessions.NewRegistry[*reservationFlowUC.Flow]("reservation", sessionTTL, metricsCollector, log)
	confirmationFlows := sessions.NewRegistry[*confirmationFlowUC.Flow]("confirmation", sessionTTL, metricsCollector, log)

	var janitors sync.WaitGroup
	janitors.Add(2)
	go func() {
		defer janitors.Done()
		reservationFlows.Run(bgCtx, sweepInterval)
	}()
	go func() {
		defer janitors.Done()
		confirmationFlows.Run(bgCtx, sweepInterval)
	}()

	newReservationFlow := func(theme domain.Theme) (*reservationFlowUC.Flow, error) {
		return reservationFlowUC.NewFlow(theme, reservationFlowUC.Deps{
			Slots:   getAvailableSlotsUseCase,
			Client:  backendClient,
			Metrics: metricsCollector,
			Logger:  log,
		})
	}
	newConfirmationFlow := func() *confirmationFlowUC.Flow {
		return confirmationFlowUC.NewFlow(backendClient, metricsCollector, log)
	}

	// Инициализируем handlers
	listThemes := listThemesHandler.NewHandler(catalogSvc, log)
	getTheme := getThemeHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCatalogAvailability := getCatalogAvailabilityHandler.NewHandler(catalogSvc, getAvailableSlotsUseCase, log)
	reservationFlow := reservationFlowHandler.NewHandler(catalogSvc, reservationFlows, newReservationFlow, log)
	confirmationFlow := confirmationFlowHandler.NewHandler(confirmationFlows, newConfirmationFlow, log)
	getNotices := getNoticesHandler.NewHandler(contentSvc, log)
	getLocations := getLocationsHandler.NewHandler(contentSvc, log)
	adminListReservations := adminListReservationsHandler.NewHandler(adminSvc, log)
	adminGetReservation := adminGetReservationHandler.NewHandler(adminSvc, log)
	adminUpdateReservation := adminUpdateReservationHandler.NewHandler(adminSvc, log)
	adminCreateNotice := adminCreateNoticeHandler.NewHandler(contentSvc, log)
	adminCreateFaq := adminCreateFaqHandler.NewHandler(contentSvc, log)
	adminRefreshThemes := adminRefreshThemesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Каталог и расписание ---
	api.HandleFunc("/themes", listThemes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/themes/{themeId}", getTheme.Handle).Methods(http.MethodGet)
	api.HandleFunc("/themes/{themeId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getCatalogAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирование ---
	api.HandleFunc("/reservation-flows", reservationFlow.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservation-flows/{flowId}", reservationFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservation-flows/{flowId}", reservationFlow.Abandon).Methods(http.MethodDelete)
	api.HandleFunc("/reservation-flows/{flowId}/date", reservationFlow.SelectDate).Methods(http.MethodPut)
	api.HandleFunc("/reservation-flows/{flowId}/slot", reservationFlow.SelectSlot).Methods(http.MethodPut)
	api.HandleFunc("/reservation-flows/{flowId}/details", reservationFlow.UpdateDetails).Methods(http.MethodPut)
	api.HandleFunc("/reservation-flows/{flowId}/submit", reservationFlow.Submit).Methods(http.MethodPost)

	// --- Проверка и отмена брони ---
	api.HandleFunc("/confirmation-flows", confirmationFlow.Create).Methods(http.MethodPost)
	api.HandleFunc("/confirmation-flows/{flowId}", confirmationFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/confirmation-flows/{flowId}/lookup", confirmationFlow.Lookup).Methods(http.MethodPost)
	api.HandleFunc("/confirmation-flows/{flowId}/cancel-request", confirmationFlow.RequestCancel).Methods(http.MethodPost)
	api.HandleFunc("/confirmation-flows/{flowId}/cancel-request", confirmationFlow.AbortCancel).Methods(http.MethodDelete)
	api.HandleFunc("/confirmation-flows/{flowId}/cancel", confirmationFlow.ConfirmCancel).Methods(http.MethodPost)
	api.HandleFunc("/confirmation-flows/{flowId}/refund", confirmationFlow.SubmitRefund).Methods(http.MethodPost)
	api.HandleFunc("/confirmation-flows/{flowId}/reset", confirmationFlow.Reset).Methods(http.MethodPost)

	// --- Объявления и карта ---
	api.HandleFunc("/notices", getNotices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT, role=admin)
	// ============================================================

	adminRoutes := api.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, log))

	adminRoutes.HandleFunc("/reservations", adminListReservations.Handle).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/reservations/{id}", adminGetReservation.Handle).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/reservations/{id}", adminUpdateReservation.Handle).Methods(http.MethodPut)
	adminRoutes.HandleFunc("/notices", adminCreateNotice.Handle).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/faqs", adminCreateFaq.Handle).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/themes/refresh", adminRefreshThemes.Handle).Methods(http.MethodPost)

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

	// Останавливаем очистку сессий
	stopBackground()
	janitors.Wait()

	log.Info("Server stopped gracefully")
}
