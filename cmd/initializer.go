package main

import (
	"database/sql"
	"log"
	"net/http"

	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"garageFront/internal/api"
	"garageFront/internal/config"
	"garageFront/internal/geo"
	"garageFront/internal/handlers"
	"garageFront/internal/notify"
	"garageFront/internal/repositories"
	"garageFront/internal/services"
	"garageFront/internal/wizard"
	"garageFront/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	cfg config.Config

	garageHandler   *handlers.GarageHandler
	bookingHandler  *handlers.BookingHandler
	vehicleHandler  *handlers.VehicleHandler
	addressHandler  *handlers.AddressHandler
	cityHandler     *handlers.CityHandler
	locationHandler *handlers.LocationHandler

	garageService *services.GarageService
	sessionRepo   *repositories.SessionRepository
	tokenManager  *utils.Manager

	wsManager *WebSocketManager
	metrics   *Metrics
	db        *sql.DB
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	metrics := NewMetrics()

	// Upstream client and repositories
	client := api.NewClient(nil, cfg.Upstream.BaseURL)
	client.OnError = metrics.UpstreamErrors.Inc
	garageRepo := repositories.GarageRepository{Client: client}
	subscriberRepo := repositories.SubscriberRepository{Client: client}
	catalogRepo := repositories.CatalogRepository{Client: client}
	sessionRepo := repositories.SessionRepository{DB: db}

	// Stores and side-channel clients
	draftStore := wizard.NewStore(rdb, 0)
	locationCache := geo.NewLocationCache(rdb, 0)
	storage := utils.NewStorage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
	notifier := &notify.FCMNotifier{Client: fcmClient, ErrorLog: errorLog}

	// Services
	garageService := &services.GarageService{GarageRepo: &garageRepo}
	bookingService := &services.BookingService{
		GarageRepo:     &garageRepo,
		SubscriberRepo: &subscriberRepo,
		Drafts:         draftStore,
		Promos:         cfg.Promos,
		Notifier:       notifier,
	}
	vehicleService := &services.VehicleService{SubscriberRepo: &subscriberRepo, CatalogRepo: &catalogRepo, Storage: storage}
	addressService := &services.AddressService{SubscriberRepo: &subscriberRepo}
	cityService := &services.CityService{CatalogRepo: &catalogRepo}
	locationService := &services.LocationService{Cache: locationCache}

	// Websocket manager carries confirmed-booking events to subscribers.
	wsManager := NewWebSocketManager(garageService, metrics, errorLog)

	// Handlers
	garageHandler := &handlers.GarageHandler{Service: garageService}
	bookingHandler := &handlers.BookingHandler{Service: bookingService, Broadcast: wsManager.Bookings()}
	vehicleHandler := &handlers.VehicleHandler{Service: vehicleService}
	addressHandler := &handlers.AddressHandler{Service: addressService}
	cityHandler := &handlers.CityHandler{Service: cityService}
	locationHandler := &handlers.LocationHandler{Service: locationService}

	tokenManager, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		errorLog.Fatalf("Failed to init token manager: %v", err)
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		cfg:             cfg,
		garageHandler:   garageHandler,
		bookingHandler:  bookingHandler,
		vehicleHandler:  vehicleHandler,
		addressHandler:  addressHandler,
		cityHandler:     cityHandler,
		locationHandler: locationHandler,
		garageService:   garageService,
		sessionRepo:     &sessionRepo,
		tokenManager:    tokenManager,
		wsManager:       wsManager,
		metrics:         metrics,
		db:              db,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
