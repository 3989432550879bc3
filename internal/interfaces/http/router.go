package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/auth"
	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	InvoiceUC   *billing.InvoiceUseCase
	EmailUC     *billing.EmailUseCase
	PaymentUC   *billing.PaymentUseCase
	PDFGen      billing.InvoicePDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Página pública de pago (el ID de la factura es la capacidad)
	payHandler := NewPayHandler(deps.InvoiceUC)
	app.Get("/pay/:id", payHandler.Show)
	app.Get("/pay/:id/qr", payHandler.QR)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/verify", authHandler.Verify)

	// Rutas protegidas (Bearer Token + email verificado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireVerifiedEmail())

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/toggle", companyHandler.Toggle)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.EmailUC, deps.PDFGen)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/generate", invoiceHandler.Generate)
	invoices.Post("/drafts", invoiceHandler.SaveDraft)
	invoices.Get("/drafts", invoiceHandler.Drafts)
	invoices.Get("/drafts/:id", invoiceHandler.Draft)
	invoices.Get("/:id/share", invoiceHandler.Share)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Post("/:id/email", invoiceHandler.Email)

	// Payments
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/charge", paymentHandler.Charge)
	payments.Post("/intents", paymentHandler.CreateIntent)
	protected.Get("/transactions", paymentHandler.Transactions)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
