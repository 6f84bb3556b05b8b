package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/get_available_slots"
	getCalendarConfigHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/get_calendar_config"
	rescheduleBookingHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/reschedule_booking"
	sendRemindersHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/send_reminders"
	updateCalendarConfigHandler "github.com/tekom-dev/TKM-BookingService/internal/api/handlers/update_calendar_config"
	"github.com/tekom-dev/TKM-BookingService/internal/api/middleware"
	"github.com/tekom-dev/TKM-BookingService/internal/config"
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/infra/ratelimit"
	"github.com/tekom-dev/TKM-BookingService/internal/infra/storage/kv"
	policyRepo "github.com/tekom-dev/TKM-BookingService/internal/infra/storage/policy"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/mockcalendar"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/msgraph"
	notionClient "github.com/tekom-dev/TKM-BookingService/internal/integrations/notion"
	resendClient "github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	bookingsService "github.com/tekom-dev/TKM-BookingService/internal/service/bookings"
	policyService "github.com/tekom-dev/TKM-BookingService/internal/service/policy"
	createBookingUC "github.com/tekom-dev/TKM-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/tekom-dev/TKM-BookingService/internal/usecase/get_available_slots"
	sendRemindersUC "github.com/tekom-dev/TKM-BookingService/internal/usecase/send_reminders"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
	"github.com/tekom-dev/TKM-BookingService/pkg/logger"
	"github.com/tekom-dev/TKM-BookingService/pkg/metrics"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// CalendarClient объединяет операции календаря, которые нужны сервису.
// Реализуется клиентом Microsoft Graph и mock-клиентом.
type CalendarClient interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]msgraph.Event, error)
	CreateEvent(ctx context.Context, req msgraph.CreateEventRequest) (*msgraph.EventResult, error)
	UpdateEventTime(ctx context.Context, eventID, date string, startTime types.TimeString, durationMinutes int) error
	DeleteEvent(ctx context.Context, eventID string) error
}

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

	log.Info("Starting TKM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Бизнес-таймзона для всей слотовой арифметики
	conv, err := civiltime.New(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Business timezone: %s", cfg.Booking.Timezone)

	// Подключаемся к redis. Недоступность не фатальна: конфигурация
	// деградирует до дефолтов, rate limiter пропускает всех.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis at %s is unavailable, continuing without it: %v", cfg.Redis.Addr, err)
			rdb = nil
		} else {
			log.Info("Connected to redis at %s", cfg.Redis.Addr)
		}
		cancel()
	} else {
		log.Warn("Redis is not configured, config storage and rate limiter are degraded")
	}
	kvStore := kv.NewStore(rdb)

	// Календарь: Microsoft Graph или mock, если учетные данные не заданы
	var calendar CalendarClient
	if cfg.MSGraph.Configured() {
		calendar = msgraph.NewClient(
			cfg.MSGraph.TenantID,
			cfg.MSGraph.ClientID,
			cfg.MSGraph.ClientSecret,
			cfg.MSGraph.UserID,
			time.Duration(cfg.MSGraph.Timeout)*time.Second,
			conv,
			log,
		)
		log.Info("Calendar backend: Microsoft Graph (user=%s)", cfg.MSGraph.UserID)
	} else {
		calendar = mockcalendar.NewClient(log)
		log.Warn("Calendar backend: mock (Microsoft Graph credentials are not configured)")
	}

	// Остальные интеграционные клиенты
	records := notionClient.NewClient(
		cfg.Notion.APIKey,
		cfg.Notion.DatabaseID,
		time.Duration(cfg.Notion.Timeout)*time.Second,
		log,
	)
	mailer := resendClient.NewClient(
		cfg.Resend.APIKey,
		cfg.Resend.FromEmail,
		cfg.Resend.FromName,
		cfg.Resend.OperatorEmail,
		cfg.Server.BaseURL,
		time.Duration(cfg.Resend.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized")

	// Репозитории и лимитер
	policyRepository := policyRepo.New(kvStore)
	limiter := ratelimit.New(
		kvStore,
		domain.RateLimitMaxPerWindow,
		domain.RateLimitWindowHours*time.Hour,
		log,
	)

	// Сервисы
	policySvc := policyService.NewService(policyRepository, log)
	bookingSvc := bookingsService.NewService(records, calendar, mailer, conv, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(calendar, policySvc, conv, log)
	createBookingUseCase := createBookingUC.NewUseCase(calendar, records, mailer, conv, log)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(records, mailer, conv, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, cfg.Booking.DefaultDurationMinutes, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	getCalendarConfig := getCalendarConfigHandler.NewHandler(policySvc, log)
	updateCalendarConfig := updateCalendarConfigHandler.NewHandler(policySvc, log)
	sendReminders := sendRemindersHandler.NewHandler(sendRemindersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования, с лимитером по IP
	rateLimited := middleware.RateLimit(limiter, log)
	api.Handle("/bookings",
		rateLimited(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// Отмена и перенос по ссылкам из писем
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (bearer-токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.BearerAuth(cfg.Admin.Token, log))
	admin.HandleFunc("/config", getCalendarConfig.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/config", updateCalendarConfig.Handle).Methods(http.MethodPut)

	// ============================================================
	// CRON ROUTES (bearer-секрет планировщика)
	// ============================================================

	cron := api.PathPrefix("/cron").Subrouter()
	cron.Use(middleware.BearerAuth(cfg.Admin.CronSecret, log))
	cron.HandleFunc("/reminders", sendReminders.Handle).Methods(http.MethodGet)

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

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
