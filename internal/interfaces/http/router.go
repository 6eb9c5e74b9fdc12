package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/negocios-rp/internal/application/analytics"
	"github.com/tu-usuario/negocios-rp/internal/application/auth"
	"github.com/tu-usuario/negocios-rp/internal/application/sales"
	"github.com/tu-usuario/negocios-rp/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BusinessUC  *usecase.BusinessUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *sales.CreateSaleUseCase
	InvoiceUC   *sales.InvoiceUseCase
	PDFUC       *sales.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: el access token del proveedor viaja en el body)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Game server (público: autentica con api key en el body)
	gameHandler := NewGameHandler(deps.SaleUC)
	api.Post("/game/sales", gameHandler.CreateSale)

	// Rutas protegidas (requieren Bearer Token de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Businesses + empleados
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	businesses := protected.Group("/businesses")
	businesses.Post("/", businessHandler.Create)
	businesses.Get("/", businessHandler.List)
	businesses.Get("/:id", businessHandler.GetByID)
	businesses.Put("/:id", businessHandler.Update)
	businesses.Delete("/:id", businessHandler.Delete)
	businesses.Post("/:id/rotate-key", businessHandler.RotateAPIKey)
	businesses.Post("/:id/employees", employeeHandler.Add)
	businesses.Get("/:id/employees", employeeHandler.List)
	businesses.Delete("/:id/employees/:userId", employeeHandler.Remove)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales (inmutables una vez creadas)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Invoices
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices := protected.Group("/invoices")
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id", invoiceHandler.UpdateStatus)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
}
