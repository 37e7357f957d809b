package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/database"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/messaging"
	"restaurant-pos/internal/notify"
	"restaurant-pos/internal/services/chatbot"
	"restaurant-pos/internal/services/display"
	"restaurant-pos/internal/services/menu"
	"restaurant-pos/internal/services/order"
	"restaurant-pos/internal/services/request"
	"restaurant-pos/internal/services/table"
)

func main() {
	var (
		mode       = flag.String("mode", "", "Service mode (api-server, kitchen-display, table-display)")
		configPath = flag.String("config", "config.yaml", "Path to configuration file")
		tableID    = flag.Int64("table-id", 0, "Table id (required for table-display mode)")
		prefetch   = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", requestID, fmt.Sprintf("Starting %s", *mode), map[string]interface{}{
		"mode": *mode,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", requestID, "Received shutdown signal", nil)
		cancel()
	}()

	switch *mode {
	case "api-server":
		if err := runAPIServer(ctx, cfg, log); err != nil {
			log.Error("service_failed", requestID, "API server failed", err, nil)
			os.Exit(1)
		}
	case "kitchen-display":
		if err := runKitchenDisplay(ctx, cfg, log, *prefetch); err != nil && err != context.Canceled {
			log.Error("service_failed", requestID, "Kitchen display failed", err, nil)
			os.Exit(1)
		}
	case "table-display":
		if *tableID == 0 {
			log.Error("validation_failed", requestID, "table-id is required for table-display mode", nil, nil)
			os.Exit(1)
		}
		if err := runTableDisplay(ctx, cfg, log, *tableID, *prefetch); err != nil && err != context.Canceled {
			log.Error("service_failed", requestID, "Table display failed", err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", requestID, fmt.Sprintf("Unknown mode: %s", *mode), nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Service stopped gracefully", nil)
}

// runAPIServer wires the HTTP API: ledgers, collaborator CRUD and the
// notification publisher.
func runAPIServer(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", requestID, "Connected to PostgreSQL database", nil)

	if err := db.RunMigrations(ctx, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("amqp_connected", requestID, "Connected to RabbitMQ", nil)

	dispatcher := messaging.NewPublisher(conn, log)
	channels := notify.Channels{}

	tableService := table.NewService(table.NewPostgresRepository(db), log)
	orderService := order.NewService(order.NewPostgresRepository(db), tableService, dispatcher, channels, log)
	requestService := request.NewService(request.NewPostgresRepository(db), tableService, dispatcher, channels, log)
	menuService := menu.NewService(menu.NewPostgresRepository(db), log)
	chatbotService := chatbot.NewService(menuService, log)

	tableHandler := table.NewHandler(tableService, log)
	orderHandler := order.NewHandler(orderService, log)
	requestHandler := request.NewHandler(requestService, log)
	menuHandler := menu.NewHandler(menuService, log)
	chatbotHandler := chatbot.NewHandler(chatbotService, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		healthCtx, healthCancel := context.WithTimeout(req.Context(), 5*time.Second)
		defer healthCancel()

		status := http.StatusOK
		if err := db.Ping(healthCtx); err != nil || conn.IsClosed() {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"status":%q,"timestamp":%q}`,
			http.StatusText(status), time.Now().UTC().Format(time.RFC3339))
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/orders", orderHandler.Routes())
		r.Mount("/table-requests", requestHandler.Routes())
		r.Mount("/tables", tableHandler.Routes())
		r.Mount("/categories", menuHandler.CategoryRoutes())
		r.Mount("/products", menuHandler.ProductRoutes())
		r.Mount("/chatbot", chatbotHandler.Routes())
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info("server_listening", requestID, fmt.Sprintf("API server started on port %d", cfg.Server.Port), map[string]interface{}{
			"port": cfg.Server.Port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", requestID, "HTTP server failed", err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runKitchenDisplay attaches a console display to the kitchen-wide channel.
func runKitchenDisplay(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.KitchenQueue, "kitchen-display", prefetch)
	return display.NewKitchenDisplay(consumer, log).Run(ctx)
}

// runTableDisplay attaches a console display to one table's channel.
func runTableDisplay(ctx context.Context, cfg *config.Config, log *logger.Logger, tableID int64, prefetch int) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	channels := notify.Channels{}
	queueName := channels.SubscriptionQueue(tableID)
	if err := conn.DeclareSubscription(queueName, channels.Table(tableID)); err != nil {
		return err
	}

	consumer := messaging.NewConsumer(conn, log, queueName, fmt.Sprintf("table-display-%d", tableID), prefetch)
	return display.NewTableDisplay(consumer, tableID, log).Run(ctx)
}
