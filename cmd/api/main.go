package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	invapp "backoffice/internal/application/inventory"
	mfgapp "backoffice/internal/application/manufacturing"
	posapp "backoffice/internal/application/pos"
	purchaseapp "backoffice/internal/application/purchasing"
	salesapp "backoffice/internal/application/sales"
	trackingapp "backoffice/internal/application/tracking"
	"backoffice/internal/config"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infrastructure/encoding/avro"
	jsoncodec "backoffice/internal/infrastructure/encoding/json"
	ginserver "backoffice/internal/infrastructure/http/gin"
	"backoffice/internal/infrastructure/messaging/inproc"
	kafkainfra "backoffice/internal/infrastructure/messaging/kafka"
	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/persistence/memory"
	mongoinfra "backoffice/internal/infrastructure/persistence/mongo"
	"backoffice/internal/infrastructure/persistence/postgres"
	"backoffice/internal/infrastructure/scheduler"
	"backoffice/internal/infrastructure/storefront"
	"backoffice/internal/interfaces/http/handler"
	"backoffice/internal/interfaces/http/router"
	"backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("api stopped", logger.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, lg logger.Logger) error {
	src := storefront.NewMockSource(cfg.Storefront, lg)
	m := metrics.New()

	orderRepo, closeOrders, err := newOrderRepository(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeOrders()

	inventoryRepo, closeInventory, err := newInventoryRepository(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeInventory()

	codec, err := newCodec(cfg.Kafka)
	if err != nil {
		return err
	}

	var sales *salesapp.Service
	if cfg.Kafka.Enabled {
		producer, err := kafkainfra.NewOrderProducer(cfg.Kafka, lg)
		if err != nil {
			return err
		}
		defer producer.Close(context.Background())

		sales = salesapp.NewService(orderRepo, producer, codec, src, lg)

		consumer := kafkainfra.NewOrderConsumer(cfg.Kafka, sales.HandleMessage, lg)
		defer consumer.Close()
		go func() {
			if err := consumer.Start(ctx); err != nil {
				lg.Error("kafka consumer stopped", logger.Error(err))
			}
		}()
	} else {
		bus := inproc.NewBus(lg)
		sales = salesapp.NewService(orderRepo, bus, codec, src, lg)
		bus.Subscribe(sales.HandleMessage)
	}

	ledger := invapp.NewService(inventoryRepo, src, cfg.Inventory.LowStockThreshold, lg)
	purchasing := purchaseapp.NewService(memory.NewPurchaseOrderRepository(), cfg.Storefront.Seed, lg)
	manufacturing := mfgapp.NewService(
		memory.NewProductionOrderRepository(),
		memory.NewRawMaterialRepository(),
		cfg.Storefront.Seed,
		lg,
	)
	if err := warmUp(ctx, sales, ledger, purchasing, manufacturing); err != nil {
		return err
	}

	register := posapp.NewService(ledger, sales, posapp.Config{
		StrictStock:     cfg.POS.StrictStock,
		DefaultCustomer: cfg.POS.DefaultCustomer,
	}, lg, posapp.WithRecorder(m))

	sched, stopScheduler := newScheduler(cfg.Tracking)
	defer stopScheduler()

	tracker := trackingapp.NewService(src, sched, src, cfg.Tracking.Interval, lg, trackingapp.WithRecorder(m))
	if err := tracker.Start(ctx); err != nil {
		return fmt.Errorf("start live tracking: %w", err)
	}
	defer tracker.Stop()

	engine := ginserver.NewEngine(cfg.Server, lg, m.Middleware())
	router.RegisterRoutes(engine, router.Handlers{
		Sales:         handler.NewSalesHandler(sales, lg),
		Inventory:     handler.NewInventoryHandler(ledger, lg),
		Purchasing:    handler.NewPurchasingHandler(purchasing, lg),
		Manufacturing: handler.NewManufacturingHandler(manufacturing, lg),
		POS:           handler.NewPOSHandler(register, lg),
		Tracking:      handler.NewTrackingHandler(tracker, lg),
		Settings:      handler.NewSettingsHandler(cfg),
		Metrics:       m.Handler(),
	})

	return ginserver.NewServer(cfg.Server, engine, lg).Run(ctx)
}

// warmUp fills every store the dashboard opens on: the storefront order
// history, the inventory ledger and the seeded purchasing and manufacturing
// collections.
func warmUp(
	ctx context.Context,
	sales *salesapp.Service,
	ledger *invapp.Service,
	purchasing *purchaseapp.Service,
	manufacturing *mfgapp.Service,
) error {
	if _, err := sales.Sync(ctx); err != nil {
		return fmt.Errorf("sync orders: %w", err)
	}
	if _, err := ledger.Load(ctx); err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	if err := purchasing.Seed(ctx); err != nil {
		return fmt.Errorf("seed purchase orders: %w", err)
	}
	if err := manufacturing.Seed(ctx); err != nil {
		return fmt.Errorf("seed manufacturing: %w", err)
	}
	return nil
}

func newOrderRepository(ctx context.Context, cfg *config.Config, lg logger.Logger) (repository.OrderRepository, func(), error) {
	if cfg.Storage.Orders != config.StorePostgres {
		return memory.NewOrderRepository(), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, lg)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewOrderRepository(pool), pool.Close, nil
}

func newInventoryRepository(ctx context.Context, cfg *config.Config, lg logger.Logger) (repository.InventoryRepository, func(), error) {
	if cfg.Storage.Inventory != config.StoreMongo {
		return memory.NewInventoryRepository(), func() {}, nil
	}

	client, err := mongoinfra.Connect(ctx, cfg.Mongo, lg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Disconnect(context.Background()) }

	repo, err := mongoinfra.NewInventoryRepository(ctx, client.Database(cfg.Mongo.Database))
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return repo, closeFn, nil
}

func newCodec(cfg config.KafkaConfig) (salesapp.Codec, error) {
	if cfg.Encoding == config.EncodingAvro {
		codec, err := avro.NewOrderCodec()
		if err != nil {
			return nil, err
		}
		return codec, nil
	}
	return jsoncodec.NewOrderCodec(), nil
}

func newScheduler(cfg config.TrackingConfig) (trackingapp.Scheduler, func()) {
	if cfg.Scheduler == config.SchedulerCron {
		c := scheduler.NewCron()
		return c, c.Stop
	}
	return scheduler.NewTicker(), func() {}
}
