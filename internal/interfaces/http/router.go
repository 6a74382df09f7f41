package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastan/inventario-ventas/internal/application/auth"
	"github.com/jcastan/inventario-ventas/internal/application/inventory"
	"github.com/jcastan/inventario-ventas/internal/application/sales"
	"github.com/jcastan/inventario-ventas/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *inventory.ProductUseCase
	MovementUC *inventory.MovementUseCase
	CustomerUC *sales.CustomerUseCase
	CreateSale *sales.CreateSaleUseCase
	SaleQuery  *sales.QueryUseCase
	SalePDF    *sales.PDFUseCase
	AuthUC     *auth.AuthUseCase
	Perms      permissionChecker
	JWTSecret  string
}

// Router registra las rutas de la API. Cada ruta protegida exige el permiso
// equivalente al del grupo del usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perm := func(codename string) fiber.Handler {
		return RequirePermission(codename, deps.Perms)
	}

	// Products + inventario (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	products.Get("/", perm(entity.PermViewProducto), productHandler.List)
	products.Get("/low-stock", perm(entity.PermViewProducto), productHandler.ListLowStock)
	products.Post("/", perm(entity.PermAddProducto), productHandler.Create)
	products.Get("/:id", perm(entity.PermViewProducto), productHandler.GetByID)
	products.Put("/:id", perm(entity.PermChangeProducto), productHandler.Update)
	products.Delete("/:id", perm(entity.PermDeleteProducto), productHandler.Delete)
	products.Post("/:id/movements", perm(entity.PermAddMovimiento), inventoryHandler.RegisterMovement)
	products.Post("/:id/adjust", perm(entity.PermAddMovimiento), inventoryHandler.AdjustStock)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", perm(entity.PermViewCliente), customerHandler.List)
	customers.Post("/", perm(entity.PermAddCliente), customerHandler.Create)
	customers.Get("/:id", perm(entity.PermViewCliente), customerHandler.GetByID)
	customers.Put("/:id", perm(entity.PermChangeCliente), customerHandler.Update)
	customers.Delete("/:id", perm(entity.PermDeleteCliente), customerHandler.Delete)

	// Sales + reportes (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQuery, deps.SalePDF)
	reportHandler := NewReportHandler(deps.SaleQuery)
	salesGroup.Get("/", perm(entity.PermViewVenta), saleHandler.List)
	salesGroup.Post("/", perm(entity.PermAddVenta), saleHandler.Create)
	salesGroup.Get("/by-day", perm(entity.PermViewVenta), reportHandler.SalesByDay)
	salesGroup.Get("/by-product", perm(entity.PermViewVenta), reportHandler.SalesByProduct)
	salesGroup.Get("/:id", perm(entity.PermViewVenta), saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", perm(entity.PermViewVenta), saleHandler.DownloadPDF)
}
