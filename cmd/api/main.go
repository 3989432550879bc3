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

	"github.com/jhoicas/payment-terminal-api/internal/application/auth"
	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/application/usecase"
	inframail "github.com/jhoicas/payment-terminal-api/internal/infrastructure/mail"
	infrapayment "github.com/jhoicas/payment-terminal-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/payment-terminal-api/internal/infrastructure/pdf"
	"github.com/jhoicas/payment-terminal-api/internal/infrastructure/postgres"
	infrastorage "github.com/jhoicas/payment-terminal-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/payment-terminal-api/internal/interfaces/http"
	"github.com/jhoicas/payment-terminal-api/pkg/config"
	"github.com/jhoicas/payment-terminal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend de persistencia del estado: archivo JSON o fila en PostgreSQL.
	storageLog := log.Component("storage")
	var port store.StatePort
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			storageLog.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		port, err = postgres.NewStateStore(ctx, pool)
		if err != nil {
			storageLog.Fatal().Err(err).Msg("inicializar estado en PostgreSQL")
		}
	default:
		fileStore, err := infrastorage.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			storageLog.Fatal().Err(err).Msg("inicializar estado en disco")
		}
		storageLog.Info().Str("path", fileStore.Path()).Msg("estado en archivo")
		port = fileStore
	}

	st, err := store.New(port)
	if err != nil {
		log.Fatal().Err(err).Msg("hidratar estado")
	}

	gateway := infrapayment.NewSimulatedGateway(
		time.Duration(cfg.Payment.DelayMS)*time.Millisecond,
		cfg.Payment.FailCode,
	)
	mailer := inframail.NewGomailMailer(cfg.SMTP)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	builder := billing.NewInvoiceBuilder()

	authUC := auth.NewAuthUseCase(st, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(st)
	settingsUC := usecase.NewSettingsUseCase(st)
	dashboardUC := usecase.NewDashboardUseCase(st)
	invoiceUC := billing.NewInvoiceUseCase(st, builder, cfg.Share.BaseURL)
	emailUC := billing.NewEmailUseCase(st, mailer, pdfGenerator, cfg.Share.BaseURL, cfg.SMTP.From)
	paymentUC := billing.NewPaymentUseCase(st, gateway)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Payment Terminal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		InvoiceUC:   invoiceUC,
		EmailUC:     emailUC,
		PaymentUC:   paymentUC,
		PDFGen:      pdfGenerator,
		JWTSecret:   cfg.JWT.Secret,
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
