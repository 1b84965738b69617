package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-api/internal/application/auth"
	"github.com/seu-usuario/gestor-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	AuthUC     *auth.AuthUseCase
	Uploader   ImageUploader
	JWTSecret  string
}

// Router registra as rotas da API. Tudo sob /api exige Bearer Token, exceto
// /api/login e /api/upload-image.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Upload de imagem (público, consumido pelo formulário de produto)
	uploadHandler := NewUploadHandler(deps.Uploader)
	api.Post("/upload-image", uploadHandler.Upload)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/validate-session", authHandler.ValidateSession)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Post("/:id/orders", customerHandler.AppendOrder)
	customers.Get("/:id/orders", customerHandler.ListOrders)

	// Produtos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Fornecedores (protegido); a consulta de CNPJ vem antes de :id
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/cnpj/:cnpj", supplierHandler.LookupCNPJ)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Despesas (protegido); o relatório vem antes de :id
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/report", expenseHandler.MonthlyReport)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
}
