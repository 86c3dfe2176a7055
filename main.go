package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/api"
	"restaurant-pos/bot"
	"restaurant-pos/config"
	"restaurant-pos/db"
	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	cmd := "demo"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	log := newLogger(cfg, cmd)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "migrate":
		err = runMigrate(ctx, cfg, log)
	case "serve":
		err = runServe(ctx, cfg, log)
	case "demo":
		err = runDemo(ctx, cfg, log)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want migrate, serve or demo)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Errorw("command failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, cmd string) *zap.SugaredLogger {
	var l *zap.Logger
	if cfg.Env == "production" || cmd == "serve" {
		l = zap.Must(zap.NewProduction())
	} else {
		l = zap.Must(zap.NewDevelopment())
	}
	return l.Sugar().With("command", cmd)
}

func runMigrate(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	if err := db.Init(ctx, cfg.DB); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	return applyMigrations(ctx, db.Pool, log)
}

// openStore returns the configured catalog backend, a health probe for it and
// a cleanup func.
func openStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (services.CatalogStore, func(context.Context) error, func(), error) {
	switch cfg.Menu.Backend {
	case config.BackendFile:
		log.Infow("menu backend", "backend", "file", "path", cfg.Menu.File)
		return services.NewFileStore(cfg.Menu.File), nil, func() {}, nil
	case config.BackendPostgres:
		if err := db.Init(ctx, cfg.DB); err != nil {
			return nil, nil, nil, fmt.Errorf("db: %w", err)
		}
		log.Infow("menu backend", "backend", "postgres", "host", cfg.DB.Host, "database", cfg.DB.Database)
		return services.NewPostgresStore(db.Pool), db.Pool.Ping, db.Close, nil
	case config.BackendMongo:
		store, err := services.NewMongoStore(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Infow("menu backend", "backend", "mongo", "database", cfg.Mongo.Database)
		ping := func(ctx context.Context) error {
			_, err := store.Load(ctx)
			return err
		}
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				log.Warnw("error closing mongodb", "error", err)
			}
		}
		return store, ping, cleanup, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown MENU_BACKEND %q", cfg.Menu.Backend)
	}
}

// staffBot is nil unless TOKEN is configured.
func staffBot(cfg *config.Config, log *zap.SugaredLogger) *bot.Bot {
	if cfg.Telegram.Token == "" {
		return nil
	}
	b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.ReceiptChatID, log)
	if err != nil {
		log.Warnw("telegram bot disabled", "error", err)
		return nil
	}
	log.Infow("telegram bot ready", "bot", b.Username(), "chat_id", cfg.Telegram.ReceiptChatID)
	return b
}

// receiptNotifier keeps a nil *bot.Bot from becoming a non-nil interface.
func receiptNotifier(b *bot.Bot) services.ReceiptNotifier {
	if b == nil {
		return nil
	}
	return b
}

func runServe(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	store, ping, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	tg := staffBot(cfg, log)
	catalog := services.OpenCatalog(ctx, store, log)
	register := services.NewRegister(services.NewOrderQueue(), os.Stdout, receiptNotifier(tg), log)

	app := api.New(catalog, register, log)
	if ping != nil {
		app.WithStoragePing(ping)
	}
	if tg != nil {
		go tg.Run(ctx, app)
	}
	return app.Run(ctx, cfg.HTTP.Addr)
}

// runDemo seeds the sample menu, queues two orders and settles them in cash.
func runDemo(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	store, _, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	catalog := services.OpenCatalog(ctx, store, log)
	for _, item := range sampleMenu() {
		if _, err := catalog.GetItem(item.Name); err == nil {
			continue
		}
		if err := catalog.AddItem(ctx, item); err != nil {
			return err
		}
	}

	queue := services.NewOrderQueue()
	for _, names := range [][]string{{"Spaghetti", "Lemonade"}, {"Chocolate Cake"}} {
		order, err := services.OrderFromMenu(catalog, names...)
		if err != nil {
			return err
		}
		if err := queue.Enqueue(order); err != nil {
			return err
		}
	}

	register := services.NewRegister(queue, os.Stdout, receiptNotifier(staffBot(cfg, log)), log)
	for !queue.IsEmpty() {
		bill, ok, err := register.ProcessNextOrder(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		cash := bill.Total.Ceil()
		s, err := register.Settle(ctx, bill, services.CashPayment{Total: bill.Total, CashReceived: cash})
		if err != nil {
			return err
		}
		fmt.Printf("Paid in cash, change: $%s\n\n", services.FormatAmount(s.Change))
	}
	return nil
}

func sampleMenu() []models.MenuItem {
	tax := decimal.RequireFromString("0.07")
	tip := decimal.RequireFromString("0.1")
	return []models.MenuItem{
		{Name: "Spaghetti", Price: decimal.NewFromInt(50000), Tax: tax, Tip: tip, Category: models.CategoryMainCourse},
		{Name: "Lemonade", Price: decimal.NewFromInt(10000), Tax: tax, Tip: tip, Category: models.CategoryDrink},
		{Name: "Chocolate Cake", Price: decimal.NewFromInt(20000), Tax: tax, Tip: tip, Category: models.CategoryDessert},
	}
}
