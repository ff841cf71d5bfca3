package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastiblanco/boutique-api/internal/application/auth"
	"github.com/jfcastiblanco/boutique-api/internal/application/inventory"
	"github.com/jfcastiblanco/boutique-api/internal/application/purchasing"
	"github.com/jfcastiblanco/boutique-api/internal/application/usecase"
	"github.com/jfcastiblanco/boutique-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	SupplierUC       *usecase.SupplierUseCase
	CatalogUC        *usecase.CatalogUseCase
	LookupUC         *usecase.LookupUseCase
	UserUC           *usecase.UserUseCase
	CreatePurchase   *purchasing.CreatePurchaseUseCase
	PurchaseQuery    *purchasing.PurchaseQueryUseCase
	PurchasePDF      *purchasing.PurchasePDFUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ReverseMovement  *inventory.ReverseMovementUseCase
	ListMovements    *inventory.ListMovementsUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público, solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalogo/productos", catalogHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos y variantes (protegido)
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/variantes", productHandler.CreateVariant)
	variants := protected.Group("/variantes")
	variants.Put("/:id", productHandler.UpdateVariant)
	variants.Delete("/:id", productHandler.DeleteVariant)

	// Catálogos auxiliares para formularios (protegido)
	lookupHandler := NewLookupHandler(deps.LookupUC)
	protected.Get("/categorias", lookupHandler.Categories)
	protected.Get("/colores", lookupHandler.Colors)
	protected.Get("/tallas", lookupHandler.Sizes)

	// Proveedores (protegido)
	suppliers := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Compras (protegido)
	purchases := protected.Group("/compras")
	purchaseHandler := NewPurchaseHandler(deps.CreatePurchase, deps.PurchaseQuery, deps.PurchasePDF)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Get("/:id/pdf", purchaseHandler.GetPDF)
	purchases.Post("/:id/pagos", purchaseHandler.AddPayment)

	// Movimientos de inventario (protegido)
	invGroup := protected.Group("/inventario")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.ReverseMovement, deps.ListMovements)
	invGroup.Post("/movimientos", inventoryHandler.RegisterMovement)
	invGroup.Get("/movimientos", inventoryHandler.ListMovements)
	invGroup.Get("/movimientos/:id", inventoryHandler.GetMovement)
	invGroup.Delete("/movimientos/:id", inventoryHandler.ReverseMovement)

	// Usuarios (solo admin)
	users := protected.Group("/usuarios", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Patch("/:id/estado", userHandler.SetStatus)
}
