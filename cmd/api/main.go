package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
	adminUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/admin"
	paymentUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/payment"
	ticketUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/ticket"
	userUseCase "github.com/powerstack-ng/powerstack-api/internal/domain/usecase/user"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/handler"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/api/routes"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/database"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/dynamo"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/gateway/paystack"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/idgen"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/logger"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/repository"
	timeProvider "github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/time"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/vending"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Storage adapter, selected by driver
	stores, cleanup, err := buildStores(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialize storage", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer cleanup()

	fees, err := buildFeeSchedule(cfg.Fees)
	if err != nil {
		appLogger.Error("Invalid fee schedule configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	refs := idgen.NewUUIDGenerator()
	gateway := paystack.NewClient(cfg.Paystack, appLogger)
	vendor := vending.NewStubVendor(appLogger)
	balances := paymentUseCase.NewBalanceManager(stores.users, appLogger, cfg.Wallet.MaxRetries)

	// Use cases
	paymentService := paymentUseCase.NewService(
		stores.purchases,
		stores.users,
		gateway,
		vendor,
		balances,
		fees,
		refs,
		tp,
		appLogger,
		cfg.Paystack.CallbackURL,
	)
	userService := userUseCase.NewUseCase(stores.users, stores.purchases, refs, tp, appLogger)
	ticketService := ticketUseCase.NewUseCase(stores.tickets, tp, appLogger)
	adminService := adminUseCase.NewUseCase(stores.users, stores.purchases, appLogger)

	// API handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, userService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	ticketHandler := handler.NewTicketHandler(ticketService, appLogger)
	adminHandler := handler.NewAdminHandler(adminService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, paymentHandler, userHandler, ticketHandler, adminHandler, tp, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":   cfg.Server.Port,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// stores bundles the three persistence ports behind whichever driver is
// configured.
type stores struct {
	users     persistence.UserRepository
	purchases persistence.PurchaseRepository
	tickets   persistence.TicketRepository
}

func buildStores(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (stores, func(), error) {
	switch cfg.Database.Driver {
	case "dynamodb":
		client, err := dynamo.NewClient(context.Background(), cfg.Database)
		if err != nil {
			return stores{}, func() {}, err
		}
		return stores{
			users:     dynamo.NewUserRepository(client, cfg.Database.UsersTable),
			purchases: dynamo.NewPurchaseRepository(client, cfg.Database.PurchasesTable),
			tickets:   dynamo.NewTicketRepository(client, cfg.Database.TicketsTable),
		}, func() {}, nil

	case "postgres":
		manager := database.NewManager(cfg.Database, appLogger, tp)
		db, err := manager.Connect()
		if err != nil {
			return stores{}, func() {}, err
		}
		if err := manager.Migrate(); err != nil {
			_ = manager.Close()
			return stores{}, func() {}, err
		}
		return stores{
			users:     repository.NewUserRepository(db, tp, appLogger),
			purchases: repository.NewPurchaseRepository(db, appLogger),
			tickets:   repository.NewTicketRepository(db, appLogger),
		}, func() { _ = manager.Close() }, nil

	default:
		return stores{}, func() {}, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// buildFeeSchedule converts the configured naira amounts into kobo.
func buildFeeSchedule(cfg config.FeesConfig) (paymentUseCase.FeeSchedule, error) {
	serviceFee, err := entity.ParseNaira(cfg.ServiceFeeNaira)
	if err != nil {
		return paymentUseCase.FeeSchedule{}, fmt.Errorf("fees.serviceFeeNaira: %w", err)
	}
	surcharge, err := entity.ParseNaira(cfg.PlatformSurchargeNaira)
	if err != nil {
		return paymentUseCase.FeeSchedule{}, fmt.Errorf("fees.platformSurchargeNaira: %w", err)
	}
	floor, err := entity.ParseNaira(cfg.PlatformSurchargeFloor)
	if err != nil {
		return paymentUseCase.FeeSchedule{}, fmt.Errorf("fees.platformSurchargeFloor: %w", err)
	}

	return paymentUseCase.FeeSchedule{
		ServiceFeeKobo:             serviceFee,
		PlatformRateBps:            cfg.PlatformRateBps,
		PlatformSurchargeKobo:      surcharge,
		PlatformSurchargeFloorKobo: floor,
		CommissionRateBps:          cfg.CommissionRateBps,
	}, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case "dynamodb":
		if cfg.Database.Region == "" {
			missing = append(missing, "database.region (or PS_AWS_REGION environment variable)")
		}
		if cfg.Database.UsersTable == "" || cfg.Database.PurchasesTable == "" || cfg.Database.TicketsTable == "" {
			missing = append(missing, "database.usersTable/purchasesTable/ticketsTable")
		}
	case "postgres":
		if cfg.Database.Host == "" {
			missing = append(missing, "database.host (or PS_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missing = append(missing, "database.username (or PS_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missing = append(missing, "database.database (or PS_DB_NAME environment variable)")
		}
	default:
		return fmt.Errorf("invalid database.driver: %s, must be dynamodb or postgres", cfg.Database.Driver)
	}

	if cfg.Paystack.SecretKey == "" {
		missing = append(missing, "paystack.secretKey (PS_PAYSTACK_SECRET_KEY environment variable)")
	}
	if cfg.Paystack.CallbackURL == "" {
		missing = append(missing, "paystack.callbackURL (or PS_PAYSTACK_CALLBACK_URL environment variable)")
	}
	if cfg.Wallet.MaxRetries <= 0 {
		missing = append(missing, "wallet.maxRetries")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}
	return nil
}
