package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/fiado-api/internal/application/analytics"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
	"github.com/jhoicas/fiado-api/internal/application/ports"
	"github.com/jhoicas/fiado-api/internal/application/usecase"
	infraai "github.com/jhoicas/fiado-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/fiado-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fiado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/fiado-api/internal/interfaces/http"
	"github.com/jhoicas/fiado-api/pkg/config"
	"github.com/jhoicas/fiado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := appledger.NewCustomerUseCase(customerRepo)
	addTransactionUC := appledger.NewAddTransactionUseCase(txRunner)
	transactionQueryUC := appledger.NewTransactionQueryUseCase(customerRepo, transactionRepo)

	// PDF del extracto con los datos de la tienda del entorno
	pdfGenerator := infrapdf.NewMarotoStatementGenerator(infrapdf.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
		Terms:   cfg.Shop.Terms,
	})
	statementUC := appledger.NewStatementUseCase(customerRepo, transactionRepo, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, transactionRepo)

	var llmSvc ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llmSvc = infraai.NewAnthropicService(cfg.AI.AnthropicKey, cfg.AI.AnthropicModel)
	default:
		llmSvc = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	aiUC := usecase.NewAIUseCase(llmSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fiado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:     customerUC,
		AddTransaction: addTransactionUC,
		TransactionUC:  transactionQueryUC,
		StatementUC:    statementUC,
		DashboardUC:    dashboardUC,
		AIUC:           aiUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
