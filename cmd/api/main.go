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

	"github.com/tu-usuario/exitplanner-pricing/internal/application/usecase"
	"github.com/tu-usuario/exitplanner-pricing/internal/domain/catalog"
	"github.com/tu-usuario/exitplanner-pricing/internal/infrastructure/memory"
	httpRouter "github.com/tu-usuario/exitplanner-pricing/internal/interfaces/http"
	"github.com/tu-usuario/exitplanner-pricing/pkg/config"
	"github.com/tu-usuario/exitplanner-pricing/pkg/logger"
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

	// Catálogo: estático, inmutable, una sola construcción por proceso.
	cat := catalog.Default()

	// Directorio: seed embebido o archivo JSON externo (PRICING_ACCOUNTS_FILE).
	companies := memory.SeedCompanies()
	if cfg.Pricing.AccountsFile != "" {
		companies, err = memory.LoadCompaniesFile(cfg.Pricing.AccountsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Pricing.AccountsFile).Msg("cargar directorio de cuentas")
		}
		log.Info().Int("companies", len(companies)).Str("file", cfg.Pricing.AccountsFile).Msg("directorio cargado desde archivo")
	}
	directory := memory.NewCompanyDirectory(companies)

	pricingUC := usecase.NewPricingUseCase(cat, directory)
	comparisonUC := usecase.NewComparisonUseCase(cat)
	companyUC := usecase.NewCompanyUseCase(directory)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ExitPlanner Pricing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PricingUC:    pricingUC,
		ComparisonUC: comparisonUC,
		CompanyUC:    companyUC,
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
