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

	"github.com/jfcastiblanco/boutique-api/internal/application/auth"
	"github.com/jfcastiblanco/boutique-api/internal/application/inventory"
	"github.com/jfcastiblanco/boutique-api/internal/application/purchasing"
	"github.com/jfcastiblanco/boutique-api/internal/application/usecase"
	infrapdf "github.com/jfcastiblanco/boutique-api/internal/infrastructure/pdf"
	"github.com/jfcastiblanco/boutique-api/internal/infrastructure/postgres"
	httpRouter "github.com/jfcastiblanco/boutique-api/internal/interfaces/http"
	"github.com/jfcastiblanco/boutique-api/pkg/config"
	"github.com/jfcastiblanco/boutique-api/pkg/logger"
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
	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, variantRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, variantRepo)
	lookupUC := usecase.NewLookupUseCase(postgres.NewLookupRepository(pool))
	userUC := usecase.NewUserUseCase(userRepo)

	createPurchaseUC := purchasing.NewCreatePurchaseUseCase(txRunner, supplierRepo)
	purchaseQueryUC := purchasing.NewPurchaseQueryUseCase(purchaseRepo, paymentRepo)
	pdfGenerator := infrapdf.NewPurchasePDFGenerator(cfg.App.Name)
	purchasePDFUC := purchasing.NewPurchasePDFUseCase(purchaseRepo, supplierRepo, pdfGenerator)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	reverseMovementUC := inventory.NewReverseMovementUseCase(txRunner)
	listMovementsUC := inventory.NewListMovementsUseCase(movementRepo)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		SupplierUC:       supplierUC,
		CatalogUC:        catalogUC,
		LookupUC:         lookupUC,
		UserUC:           userUC,
		CreatePurchase:   createPurchaseUC,
		PurchaseQuery:    purchaseQueryUC,
		PurchasePDF:      purchasePDFUC,
		RegisterMovement: registerMovementUC,
		ReverseMovement:  reverseMovementUC,
		ListMovements:    listMovementsUC,
		JWTSecret:        cfg.JWT.Secret,
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
