package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jcastan/inventario-ventas/internal/application/auth"
	"github.com/jcastan/inventario-ventas/internal/application/inventory"
	"github.com/jcastan/inventario-ventas/internal/application/sales"
	infrapdf "github.com/jcastan/inventario-ventas/internal/infrastructure/pdf"
	"github.com/jcastan/inventario-ventas/internal/infrastructure/postgres"
	httpRouter "github.com/jcastan/inventario-ventas/internal/interfaces/http"
	"github.com/jcastan/inventario-ventas/pkg/config"
	"github.com/jcastan/inventario-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := inventory.NewProductUseCase(txRunner, productRepo, movementRepo)
	movementUC := inventory.NewMovementUseCase(txRunner, productRepo)
	customerUC := sales.NewCustomerUseCase(customerRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, customerRepo, productRepo)
	saleQueryUC := sales.NewQueryUseCase(saleRepo, customerRepo, productRepo, reportRepo)

	// PDF: comprobante de venta. Deshabilitado, el endpoint degrada a un error fijo.
	var pdfGenerator sales.SalePDFGenerator
	if cfg.PDF.Enabled {
		pdfGenerator = infrapdf.NewMarotoSalePDF()
	} else {
		log.Warn().Msg("generación de PDF deshabilitada por configuración")
	}
	salePDFUC := sales.NewPDFUseCase(saleRepo, customerRepo, productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		MovementUC: movementUC,
		CustomerUC: customerUC,
		CreateSale: createSaleUC,
		SaleQuery:  saleQueryUC,
		SalePDF:    salePDFUC,
		AuthUC:     authUC,
		Perms:      groupRepo,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
