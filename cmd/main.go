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

	createBookingHandler "github.com/roombooker/booking-service/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/roombooker/booking-service/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/roombooker/booking-service/internal/api/handlers/get_booking"
	getNotificationsHandler "github.com/roombooker/booking-service/internal/api/handlers/get_notifications"
	getRoomSlotsHandler "github.com/roombooker/booking-service/internal/api/handlers/get_room_slots"
	getRoomStatusHandler "github.com/roombooker/booking-service/internal/api/handlers/get_room_status"
	listBookingsHandler "github.com/roombooker/booking-service/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/roombooker/booking-service/internal/api/handlers/list_rooms"
	manageRolesHandler "github.com/roombooker/booking-service/internal/api/handlers/manage_roles"
	manageRoomsHandler "github.com/roombooker/booking-service/internal/api/handlers/manage_rooms"
	manageUsersHandler "github.com/roombooker/booking-service/internal/api/handlers/manage_users"
	updateBookingHandler "github.com/roombooker/booking-service/internal/api/handlers/update_booking"
	"github.com/roombooker/booking-service/internal/api/middleware"
	"github.com/roombooker/booking-service/internal/config"
	"github.com/roombooker/booking-service/internal/domain"
	bookingRepo "github.com/roombooker/booking-service/internal/infra/storage/booking"
	directoryRepo "github.com/roombooker/booking-service/internal/infra/storage/directory"
	"github.com/roombooker/booking-service/internal/infra/storage/memory"
	"github.com/roombooker/booking-service/internal/integrations/mailservice"
	"github.com/roombooker/booking-service/internal/mailer"
	"github.com/roombooker/booking-service/internal/notify"
	bookingsService "github.com/roombooker/booking-service/internal/service/bookings"
	directoryService "github.com/roombooker/booking-service/internal/service/directory"
	roomsService "github.com/roombooker/booking-service/internal/service/rooms"
	createBookingUC "github.com/roombooker/booking-service/internal/usecase/create_booking"
	getRoomSlotsUC "github.com/roombooker/booking-service/internal/usecase/get_room_slots"
	updateBookingUC "github.com/roombooker/booking-service/internal/usecase/update_booking"
	"github.com/roombooker/booking-service/pkg/logger"
	"github.com/roombooker/booking-service/pkg/metrics"
	"github.com/roombooker/booking-service/pkg/txmanager"
)

// bookingStorage is the union of booking operations the services and use
// cases need; both storage drivers satisfy it.
type bookingStorage interface {
	CreateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	ListBookingsByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error)
	ListBookingsByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	DeleteBookingsByRoom(ctx context.Context, roomID string) (int, error)
	DeleteBookingsByUser(ctx context.Context, userID string) (int, error)
}

// directoryStorage is the union of room, user and role operations.
type directoryStorage interface {
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	UpdateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
	ListRooms(ctx context.Context) ([]*domain.Room, error)

	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUserRole(ctx context.Context, userID, roleID string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)

	GetRole(ctx context.Context, id string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
	UpdateRolePermissions(ctx context.Context, roleID string, permissions []domain.Permission) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Storage backend: seed-initialized in-process state by default, or
	// postgres when configured.
	var (
		bookingStore   bookingStorage
		directoryStore directoryStorage
		txMgr          txManager
	)

	if cfg.Storage.Driver == "postgres" {
		db, err := sql.Open("postgres", cfg.Storage.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Storage.Host, cfg.Storage.Port, cfg.Storage.DBName)

		bookingStore = bookingRepo.NewRepository(db)
		directoryStore = directoryRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)
	} else {
		store := memory.NewStore(memory.DefaultSeed())
		bookingStore = store
		directoryStore = store
		txMgr = store
		log.Info("Using in-memory storage with seed data")
	}

	// Confirmation mail sender: simulated emails to the log by default, or
	// an external mailer service over HTTP.
	var sender mailer.Sender
	if cfg.Mailer.Mode == "http" {
		sender = mailservice.NewClient(
			cfg.Mailer.URL,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Mailer: HTTP sender targeting %s", cfg.Mailer.URL)
	} else {
		sender = mailer.NewLogSender(log)
		log.Info("Mailer: simulated email sender")
	}

	notifications := notify.New(cfg.Notifications.TTL(), log)
	dispatcher := mailer.NewService(directoryStore, directoryStore, sender, log)

	directorySvc := directoryService.NewService(
		directoryStore,
		directoryStore,
		bookingStore,
		txMgr,
		notifications,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingStore,
		directorySvc,
		txMgr,
		notifications,
		dispatcher,
		log,
	)
	roomSvc := roomsService.NewService(
		directoryStore,
		bookingStore,
		directorySvc,
		txMgr,
		notifications,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingStore,
		directoryStore,
		txMgr,
		notifications,
		dispatcher,
		cfg.Booking.MaxDuration(),
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingStore,
		directoryStore,
		directorySvc,
		txMgr,
		notifications,
		dispatcher,
		cfg.Booking.MaxDuration(),
		log,
	)
	getRoomSlotsUseCase := getRoomSlotsUC.NewUseCase(
		bookingStore,
		directoryStore,
		cfg.Booking.SlotWindow(),
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getRoomSlots := getRoomSlotsHandler.NewHandler(getRoomSlotsUseCase, log)
	getRoomStatus := getRoomStatusHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	manageRooms := manageRoomsHandler.NewHandler(roomSvc, log)
	manageUsers := manageUsersHandler.NewHandler(directorySvc, log)
	manageRoles := manageRolesHandler.NewHandler(directorySvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notifications, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: browsing rooms and their schedules needs no identity.
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/slots", getRoomSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/status", getRoomStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/rooms", manageRooms.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", manageRooms.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}", manageRooms.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/users", manageUsers.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/users", manageUsers.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}", manageUsers.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{userId}/role", manageUsers.HandleUpdateRole).Methods(http.MethodPut)

	protected.HandleFunc("/roles", manageRoles.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/roles/{roleId}/permissions", manageRoles.HandleUpdatePermissions).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	log.Info("Server stopped gracefully")
}
