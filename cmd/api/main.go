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
	"github.com/tu-usuario/negocios-rp/internal/application/analytics"
	"github.com/tu-usuario/negocios-rp/internal/application/auth"
	"github.com/tu-usuario/negocios-rp/internal/application/authz"
	"github.com/tu-usuario/negocios-rp/internal/application/sales"
	"github.com/tu-usuario/negocios-rp/internal/application/usecase"
	"github.com/tu-usuario/negocios-rp/internal/infrastructure/identity"
	infrapdf "github.com/tu-usuario/negocios-rp/internal/infrastructure/pdf"
	"github.com/tu-usuario/negocios-rp/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/negocios-rp/internal/interfaces/http"
	"github.com/tu-usuario/negocios-rp/pkg/config"
	"github.com/tu-usuario/negocios-rp/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	gate := authz.NewGate(businessRepo, employeeRepo)

	identityProvider := identity.NewDiscordProvider(
		cfg.Identity.BaseURL,
		time.Duration(cfg.Identity.TimeoutSeconds)*time.Second,
	)
	authUC := auth.NewAuthUseCase(identityProvider, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	businessUC := usecase.NewBusinessUseCase(businessRepo, gate)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, userRepo, gate)
	productUC := usecase.NewProductUseCase(productRepo, businessRepo, gate, cfg.Inventory.LowStockThreshold)
	saleUC := sales.NewCreateSaleUseCase(txRunner, gate, businessRepo, employeeRepo, saleRepo, invoiceRepo)
	invoiceUC := sales.NewInvoiceUseCase(invoiceRepo, gate)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := sales.NewPDFUseCase(invoiceRepo, saleRepo, businessRepo, gate, pdfGenerator)

	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, businessRepo, cfg.Inventory.LowStockThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El spec se genera con swag init; si no está, el servidor arranca sin la UI.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BusinessUC:  businessUC,
		EmployeeUC:  employeeUC,
		ProductUC:   productUC,
		SaleUC:      saleUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
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
