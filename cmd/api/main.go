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

	"github.com/seu-usuario/gestor-api/internal/application/auth"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
	"github.com/seu-usuario/gestor-api/internal/domain/expense"
	"github.com/seu-usuario/gestor-api/internal/infrastructure/cloudinary"
	infrapdf "github.com/seu-usuario/gestor-api/internal/infrastructure/pdf"
	"github.com/seu-usuario/gestor-api/internal/infrastructure/postgres"
	"github.com/seu-usuario/gestor-api/internal/infrastructure/receitaws"
	httpRouter "github.com/seu-usuario/gestor-api/internal/interfaces/http"
	"github.com/seu-usuario/gestor-api/pkg/config"
	"github.com/seu-usuario/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	seqRepo := postgres.NewSequenceRepository(pool)

	registryClient := receitaws.NewClient(cfg.ReceitaWS.BaseURL, cfg.ReceitaWS.Token)
	reportGenerator := infrapdf.NewExpenseReportGenerator()
	rounding := expense.ParseRoundingStrategy(cfg.Expense.RoundingStrategy)

	customerUC := usecase.NewCustomerUseCase(customerRepo, seqRepo)
	productUC := usecase.NewProductUseCase(productRepo, seqRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, seqRepo, registryClient)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, seqRepo, rounding, reportGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	uploader := cloudinary.NewUploader(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ProductUC:  productUC,
		SupplierUC: supplierUC,
		ExpenseUC:  expenseUC,
		AuthUC:     authUC,
		Uploader:   uploader,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
