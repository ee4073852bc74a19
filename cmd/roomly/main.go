package main

import (
	"context"

	bookinghandler "roomly/internal/bookings/handler"
	"roomly/internal/bookings/ledger"
	bookingservice "roomly/internal/bookings/service"
	"roomly/internal/bookings/validator"
	roomhandler "roomly/internal/rooms/handler"
	"roomly/internal/rooms/registry"
	roomservice "roomly/internal/rooms/service"
	"roomly/internal/session"
	"roomly/internal/store"
	"roomly/pkg/app"
	"roomly/pkg/config"
	"roomly/pkg/events"
)

const ServiceName = "roomly"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting roomly service")

	blobs := newBlobStore(cfg)
	mirror := store.NewMirror(blobs)

	roomRegistry := registry.New()
	bookingLedger := ledger.New()
	restore(cfg, mirror, roomRegistry, bookingLedger)

	producer := events.New(cfg.KafkaBrokers, cfg.KafkaTopic, ServiceName)

	roomSvc := roomservice.NewRoomService(roomRegistry, bookingLedger, mirror, producer, cfg)
	bookingSvc := bookingservice.NewBookingService(
		bookingLedger,
		roomRegistry,
		validator.NewBookingValidator(cfg.Log),
		mirror,
		producer,
		cfg,
	)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		session.RequireSession(sessions, cfg.Log),
		session.NewHandler(sessions, cfg.Log),
		roomhandler.NewRoomHandler(roomSvc, cfg.Log),
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
	)
	serverApp.OnShutdown(func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close event producer", "error", err)
		}
	})
	serverApp.Run()
}

func newBlobStore(cfg *config.Config) store.BlobStore {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return store.NewRedisStore(cfg.Client.Redis.Client)
	case config.StoreBackendMongo:
		cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
		return store.NewMongoStore(cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName))
	case config.StoreBackendMemory:
		return store.NewMemoryStore()
	default:
		fileStore, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			cfg.Log.Fatal("Failed to open file store", "error", err, "dir", cfg.DataDir)
		}
		return fileStore
	}
}

// restore seeds both collections from the persisted blobs. A missing blob
// is an empty collection; a corrupt one is fatal rather than silently
// starting from scratch and overwriting it on the next save.
func restore(cfg *config.Config, mirror *store.Mirror, roomRegistry *registry.Registry, bookingLedger *ledger.Ledger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	rooms, err := mirror.LoadRooms(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to restore rooms", "error", err)
	}
	roomRegistry.Restore(rooms)

	bookings, err := mirror.LoadBookings(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to restore bookings", "error", err)
	}
	bookingLedger.Restore(bookings)

	cfg.Log.Info("Collections restored",
		"rooms", roomRegistry.Len(),
		"bookings", bookingLedger.Len(),
	)
}
