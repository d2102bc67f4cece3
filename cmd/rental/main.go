package main

import (
	"context"

	"fleetbook/internal/bookings/events"
	bookinghandler "fleetbook/internal/bookings/handler"
	bookingrepository "fleetbook/internal/bookings/repository"
	bookingservice "fleetbook/internal/bookings/service"
	"fleetbook/internal/bookings/validator"
	cataloghandler "fleetbook/internal/catalog/handler"
	catalogrepository "fleetbook/internal/catalog/repository"
	catalogservice "fleetbook/internal/catalog/service"
	"fleetbook/pkg/app"
	"fleetbook/pkg/config"
	"fleetbook/pkg/kafka"
)

const ServiceName = "rental"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting rental service")

	catalogSvc := initCatalog(cfg)
	bookingSvc, bookingCleanup := initBookings(cfg)

	if err := catalogSvc.Seed(context.Background()); err != nil {
		cfg.Log.Fatal("Failed to seed catalog", "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.RegisterCleanup(bookingCleanup)
	serverApp.SetApp(
		cataloghandler.NewCatalogHandler(catalogSvc, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
	)
	serverApp.Run()
}

func initCatalog(cfg *config.Config) catalogservice.CatalogService {
	repo := catalogrepository.NewMongoCatalogRepository(cfg)
	return catalogservice.NewCatalogService(repo, cfg)
}

func initBookings(cfg *config.Config) (bookingservice.BookingService, func()) {
	publisher := events.NewNoopPublisher()
	cleanup := func() {}
	if cfg.KafkaEnabled() {
		producer, err := kafka.NewProducer(kafka.DefaultConfig(cfg.KafkaBrokers), cfg.KafkaTopic)
		if err != nil {
			cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
		}
		publisher = events.NewKafkaPublisher(producer, cfg.Log)
		cleanup = func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}
		cfg.Log.Info("Booking event publishing enabled", "topic", cfg.KafkaTopic)
	}

	repo := bookingrepository.NewMongoBookingRepository(cfg)
	lockRepo := bookingrepository.NewBookingLockRepository(cfg)
	requestValidator := validator.NewBookingRequestValidator(cfg.Log)

	svc := bookingservice.NewBookingService(repo, lockRepo, requestValidator, publisher, cfg)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return svc, cleanup
}
