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

	cancelBookingHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/create_booking"
	createCulturalEventHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/create_cultural_event"
	createMonasteryHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/create_monastery"
	createStatusCheckHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/create_status_check"
	getBookingHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_booking"
	getBookingsByEmailHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_bookings_by_email"
	getChatHistoryHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_chat_history"
	getCulturalEventHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_cultural_event"
	getMonasteryHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_monastery"
	getMonthlyEventsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_monthly_events"
	getRootHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_root"
	getTravelGuideHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/get_travel_guide"
	initializeCulturalEventsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/initialize_cultural_events"
	initializeMonasteriesHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/initialize_monasteries"
	listBookingsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_bookings"
	listCulturalEventsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_cultural_events"
	listDistrictsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_districts"
	listFestivalsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_festivals"
	listMonasteriesHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_monasteries"
	listStatusChecksHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_status_checks"
	listTraditionsHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/list_traditions"
	sendChatMessageHandler "github.com/m04kA/SMC-HeritageService/internal/api/handlers/send_chat_message"
	"github.com/m04kA/SMC-HeritageService/internal/api/middleware"
	"github.com/m04kA/SMC-HeritageService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/booking"
	chatRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/chat"
	culturalEventRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/culturalevent"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/migrations"
	monasteryRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/monastery"
	statusRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/status"
	"github.com/m04kA/SMC-HeritageService/internal/integrations/completion"
	"github.com/m04kA/SMC-HeritageService/internal/seed"
	bookingsService "github.com/m04kA/SMC-HeritageService/internal/service/bookings"
	chatService "github.com/m04kA/SMC-HeritageService/internal/service/chat"
	culturalEventsService "github.com/m04kA/SMC-HeritageService/internal/service/culturalevents"
	monasteriesService "github.com/m04kA/SMC-HeritageService/internal/service/monasteries"
	statusService "github.com/m04kA/SMC-HeritageService/internal/service/status"
	initializeEventsUC "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_cultural_events"
	initializeMonasteriesUC "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_monasteries"
	relinkEventsUC "github.com/m04kA/SMC-HeritageService/internal/usecase/relink_cultural_events"
	sendChatMessageUC "github.com/m04kA/SMC-HeritageService/internal/usecase/send_chat_message"
	"github.com/m04kA/SMC-HeritageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HeritageService/pkg/logger"
	"github.com/m04kA/SMC-HeritageService/pkg/metrics"
	"github.com/m04kA/SMC-HeritageService/pkg/txmanager"
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

	log.Info("Starting SMC-HeritageService...")

	// Встроенный каталог читаем до подключения к БД: битый каталог это ошибка сборки
	catalog := seed.MustLoad()

	// Метрики (если включены). nil коллектор безопасен для всех потребителей
	var metricsCollector *metrics.Metrics
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
	log.Info("Successfully connected to database (db=%s)", cfg.Database.DBName)

	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	monasteryRepository := monasteryRepo.NewRepository(wrappedDB)
	eventRepository := culturalEventRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	chatRepository := chatRepo.NewRepository(wrappedDB)
	statusRepository := statusRepo.NewRepository(wrappedDB)

	// Клиент сервиса генерации ответов
	completionClient := completion.NewClient(completion.Config{
		BaseURL:     cfg.Completion.BaseURL,
		APIKey:      cfg.Completion.APIKey,
		Model:       cfg.Completion.Model,
		MaxTokens:   cfg.Completion.MaxTokens,
		Temperature: cfg.Completion.Temperature,
		Timeout:     cfg.Completion.CompletionTimeout(),
	}, metricsCollector, log)
	if !completionClient.Enabled() {
		log.Warn("OPENAI_API_KEY is not set, chat endpoint will respond with an error")
	} else {
		log.Info("Completion client initialized (base_url=%s, model=%s, timeout=%ds)",
			cfg.Completion.BaseURL, cfg.Completion.Model, cfg.Completion.Timeout)
	}

	// Сервисы
	monasterySvc := monasteriesService.NewService(monasteryRepository, catalog, log)
	eventSvc := culturalEventsService.NewService(eventRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	chatSvc := chatService.NewService(chatRepository, log)
	statusSvc := statusService.NewService(statusRepository, log)

	// Use cases
	relinkEventsUseCase := relinkEventsUC.NewUseCase(monasteryRepository, eventRepository, log)
	initializeMonasteriesUseCase := initializeMonasteriesUC.NewUseCase(
		monasteryRepository,
		catalog,
		relinkEventsUseCase,
		txMgr,
		log,
	)
	initializeEventsUseCase := initializeEventsUC.NewUseCase(
		eventRepository,
		monasteryRepository,
		catalog,
		txMgr,
		log,
	)
	sendChatMessageUseCase := sendChatMessageUC.NewUseCase(
		monasteryRepository,
		chatRepository,
		completionClient,
		log,
	)

	// Handlers
	createStatusCheck := createStatusCheckHandler.NewHandler(statusSvc, log)
	listStatusChecks := listStatusChecksHandler.NewHandler(statusSvc, log)
	initializeMonasteries := initializeMonasteriesHandler.NewHandler(initializeMonasteriesUseCase, log)
	listMonasteries := listMonasteriesHandler.NewHandler(monasterySvc, log)
	getMonastery := getMonasteryHandler.NewHandler(monasterySvc, log)
	createMonastery := createMonasteryHandler.NewHandler(monasterySvc, log)
	sendChatMessage := sendChatMessageHandler.NewHandler(sendChatMessageUseCase, log)
	getChatHistory := getChatHistoryHandler.NewHandler(chatSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingsByEmail := getBookingsByEmailHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listDistricts := listDistrictsHandler.NewHandler(monasterySvc, log)
	listTraditions := listTraditionsHandler.NewHandler(monasterySvc, log)
	listFestivals := listFestivalsHandler.NewHandler(monasterySvc, log)
	getTravelGuide := getTravelGuideHandler.NewHandler(monasterySvc)
	initializeEvents := initializeCulturalEventsHandler.NewHandler(initializeEventsUseCase, log)
	listCulturalEvents := listCulturalEventsHandler.NewHandler(eventSvc, log)
	getCulturalEvent := getCulturalEventHandler.NewHandler(eventSvc, log)
	createCulturalEvent := createCulturalEventHandler.NewHandler(eventSvc, log)
	getMonthlyEvents := getMonthlyEventsHandler.NewHandler(eventSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", getRootHandler.Handle).Methods(http.MethodGet)

	// --- Проверки доступности ---
	api.HandleFunc("/status", createStatusCheck.Handle).Methods(http.MethodPost)
	api.HandleFunc("/status", listStatusChecks.Handle).Methods(http.MethodGet)

	// --- Монастыри ---
	api.HandleFunc("/monasteries/initialize", initializeMonasteries.Handle).Methods(http.MethodPost)
	api.HandleFunc("/monasteries", listMonasteries.Handle).Methods(http.MethodGet)
	api.HandleFunc("/monasteries", createMonastery.Handle).Methods(http.MethodPost)
	api.HandleFunc("/monasteries/{id}", getMonastery.Handle).Methods(http.MethodGet)

	// --- Чат с гидом ---
	api.HandleFunc("/chat", sendChatMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/chat/history/{session_id}", getChatHistory.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/email/{email}", getBookingsByEmail.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Справочники ---
	api.HandleFunc("/districts", listDistricts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/traditions", listTraditions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/festivals", listFestivals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/travel-guide", getTravelGuide.Handle).Methods(http.MethodGet)

	// --- Культурные события ---
	api.HandleFunc("/cultural-events/initialize", initializeEvents.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cultural-events", listCulturalEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cultural-events", createCulturalEvent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cultural-events/calendar/{year}/{month}", getMonthlyEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cultural-events/{id}", getCulturalEvent.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер; CORS снаружи роутера, чтобы preflight не упирался в Methods
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.Origins)(r),
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
