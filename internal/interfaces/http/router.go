package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/fiado-api/internal/application/analytics"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
	"github.com/jhoicas/fiado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC     *appledger.CustomerUseCase
	AddTransaction *appledger.AddTransactionUseCase
	TransactionUC  *appledger.TransactionQueryUseCase
	StatementUC    *appledger.StatementUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	AIUC           *usecase.AIUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Transactions
	transactionHandler := NewTransactionHandler(deps.AddTransaction, deps.TransactionUC)
	transactions := api.Group("/transactions")
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/recent", transactionHandler.ListRecent)
	customers.Get("/:id/transactions", transactionHandler.ListByCustomer)

	// Statements
	statementHandler := NewStatementHandler(deps.StatementUC)
	customers.Get("/:id/statement", statementHandler.Get)
	customers.Get("/:id/statement/pdf", statementHandler.DownloadPDF)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// AI
	aiGroup := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Post("/analyze-line-item", aiHandler.AnalyzeLineItem)
}
