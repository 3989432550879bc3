package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payment-terminal-api/internal/application/auth"
	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/application/usecase"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	apphttp "github.com/jhoicas/payment-terminal-api/internal/interfaces/http"
	"github.com/jhoicas/payment-terminal-api/internal/infrastructure/payment"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// memoryPort implementa store.StatePort en memoria.
type memoryPort struct {
	saved *store.AppState
}

func (p *memoryPort) Load() (*store.AppState, bool, error) {
	if p.saved == nil {
		return nil, false, nil
	}
	return p.saved, true, nil
}

func (p *memoryPort) Save(s *store.AppState) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var copied store.AppState
	if err := json.Unmarshal(raw, &copied); err != nil {
		return err
	}
	p.saved = &copied
	return nil
}

// fakeMailer registra los mensajes sin enviarlos.
type fakeMailer struct {
	sent []billing.Message
}

func (m *fakeMailer) Send(_ context.Context, msg billing.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

// stubPDFGenerator devuelve bytes fijos para no generar PDFs reales en los tests.
type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.InvoiceRecord, _ string) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App completa para tests de integración
// ──────────────────────────────────────────────────────────────────────────────

const testBaseURL = "http://terminal.test"

func buildAPI(t *testing.T) (*fiber.App, *fakeMailer) {
	t.Helper()
	st, err := store.New(&memoryPort{})
	require.NoError(t, err)

	mailer := &fakeMailer{}
	builder := billing.NewInvoiceBuilder()
	gateway := payment.NewSimulatedGateway(0, "")
	pdfGen := stubPDFGenerator{}

	deps := apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(st, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		CompanyUC:   usecase.NewCompanyUseCase(st),
		SettingsUC:  usecase.NewSettingsUseCase(st),
		DashboardUC: usecase.NewDashboardUseCase(st),
		InvoiceUC:   billing.NewInvoiceUseCase(st, builder, testBaseURL),
		EmailUC:     billing.NewEmailUseCase(st, mailer, pdfGen, testBaseURL, "no-reply@terminal.test"),
		PaymentUC:   billing.NewPaymentUseCase(st, gateway),
		PDFGen:      pdfGen,
		JWTSecret:   testJWTSecret,
	}

	app := fiber.New()
	apphttp.Router(app, deps)
	return app, mailer
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// registerAndVerify registra un usuario, verifica su email y devuelve el token.
func registerAndVerify(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": email, "password": "secreto123", "name": "Tester",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/verify", "", fiber.Map{"email": email})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración de la API
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegistroLoginYVerificacion(t *testing.T) {
	app, _ := buildAPI(t)

	// Registro
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "nuevo@test.com", "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Email duplicado → 409 (password válido para llegar al chequeo de duplicado)
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "nuevo@test.com", "password": "otro1234",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Login sin verificar: token válido pero sin acceso a rutas protegidas
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nuevo@test.com", "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, resp, &login)

	resp = doJSON(t, app, http.MethodGet, "/api/companies/", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin verificar el email no se accede a la aplicación")
	resp.Body.Close()

	// Password incorrecto → 401
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nuevo@test.com", "password": "malo",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_CicloCompleto_EmpresaFacturaYCobro(t *testing.T) {
	app, _ := buildAPI(t)
	token := registerAndVerify(t, app, "operador@test.com")

	// Crear empresa
	resp := doJSON(t, app, http.MethodPost, "/api/companies/", token, fiber.Map{
		"name": "Acme Corp", "email": "billing@acme.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var company struct {
		ID       string `json:"id"`
		IsActive bool   `json:"is_active"`
	}
	decode(t, resp, &company)
	require.NotEmpty(t, company.ID)
	assert.True(t, company.IsActive, "una empresa nueva nace activa")

	// Generar factura
	resp = doJSON(t, app, http.MethodPost, "/api/invoices/generate", token, fiber.Map{
		"company_id":   company.ID,
		"client_name":  "Cliente Uno",
		"client_email": "cliente@uno.com",
		"items": []fiber.Map{
			{"description": "Consultoría", "quantity": 40, "rate": 75},
			{"description": "Desarrollo", "quantity": 20, "rate": 85},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inv struct {
		ID       string `json:"id"`
		Subtotal string `json:"subtotal"`
		Total    string `json:"total"`
		Status   string `json:"status"`
	}
	decode(t, resp, &inv)
	assert.Equal(t, "4700", inv.Subtotal)
	assert.Equal(t, "5170", inv.Total, "subtotal 4700 + 10% de impuesto")
	assert.Equal(t, "sent", inv.Status)

	// Enlaces de pago
	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+inv.ID+"/share", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var share struct {
		PaymentURL string `json:"payment_url"`
		ShortURL   string `json:"short_url"`
	}
	decode(t, resp, &share)
	assert.Equal(t, testBaseURL+"/pay/"+inv.ID, share.PaymentURL)
	assert.Contains(t, share.ShortURL, "pay.ly/")

	// Página pública de pago (sin token)
	resp = doJSON(t, app, http.MethodGet, "/pay/"+inv.ID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la página de pago es pública")
	resp.Body.Close()

	// QR público del enlace
	resp = doJSON(t, app, http.MethodGet, "/pay/"+inv.ID+"/qr", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// Cobro del terminal
	resp = doJSON(t, app, http.MethodPost, "/api/payments/charge", token, fiber.Map{
		"amount":         100,
		"description":    "Venta mostrador",
		"payment_method": "card",
		"company_id":     company.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var charge struct {
		Transaction struct {
			Status        string `json:"status"`
			ProcessingFee string `json:"processing_fee"`
		} `json:"transaction"`
		Display string `json:"display"`
	}
	decode(t, resp, &charge)
	assert.Equal(t, "succeeded", charge.Transaction.Status)
	assert.Equal(t, "3.2", charge.Transaction.ProcessingFee, "2.9% + 0.30 sobre 100")
	assert.Equal(t, "$100.00", charge.Display)

	// Historial
	resp = doJSON(t, app, http.MethodGet, "/api/transactions", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var txns struct {
		Items []json.RawMessage `json:"items"`
	}
	decode(t, resp, &txns)
	assert.Len(t, txns.Items, 1)

	// Dashboard refleja la actividad
	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash struct {
		TransactionCount int `json:"transaction_count"`
		CompanyCount     int `json:"company_count"`
	}
	decode(t, resp, &dash)
	assert.Equal(t, 1, dash.TransactionCount)
	assert.Equal(t, 1, dash.CompanyCount)
}

func TestAPI_ValidacionDeFactura(t *testing.T) {
	app, _ := buildAPI(t)
	token := registerAndVerify(t, app, "valida@test.com")

	// Sin empresa ni cliente → 400 con campo
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/generate", token, fiber.Map{
		"items": []fiber.Map{{"description": "X", "quantity": 1, "rate": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errResp struct {
		Code  string `json:"code"`
		Field string `json:"field"`
	}
	decode(t, resp, &errResp)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, "company", errResp.Field)

	// Preview no valida: el mismo cuerpo devuelve 200
	resp = doJSON(t, app, http.MethodPost, "/api/invoices/preview", token, fiber.Map{
		"items": []fiber.Map{{"description": "X", "quantity": 1, "rate": 10}},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_CobroRechazado(t *testing.T) {
	// Gateway con inyección de fallo por código
	st, err := store.New(&memoryPort{})
	require.NoError(t, err)
	builder := billing.NewInvoiceBuilder()
	pdfGen := stubPDFGenerator{}
	mailer := &fakeMailer{}
	deps := apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(st, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		CompanyUC:   usecase.NewCompanyUseCase(st),
		SettingsUC:  usecase.NewSettingsUseCase(st),
		DashboardUC: usecase.NewDashboardUseCase(st),
		InvoiceUC:   billing.NewInvoiceUseCase(st, builder, testBaseURL),
		EmailUC:     billing.NewEmailUseCase(st, mailer, pdfGen, testBaseURL, "no-reply@terminal.test"),
		PaymentUC:   billing.NewPaymentUseCase(st, payment.NewSimulatedGateway(0, "4000-0000")),
		PDFGen:      pdfGen,
		JWTSecret:   testJWTSecret,
	}
	app := fiber.New()
	apphttp.Router(app, deps)

	token := registerAndVerify(t, app, "rechazo@test.com")

	resp := doJSON(t, app, http.MethodPost, "/api/payments/charge", token, fiber.Map{
		"amount":         50,
		"description":    "Venta",
		"payment_method": "card",
		"method_details": "tarjeta 4000-0000",
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var errResp struct {
		Code string `json:"code"`
	}
	decode(t, resp, &errResp)
	assert.Equal(t, "PAYMENT_FAILED", errResp.Code)

	// Sin transacción registrada tras el rechazo
	resp = doJSON(t, app, http.MethodGet, "/api/transactions", token, nil)
	var txns struct {
		Items []json.RawMessage `json:"items"`
	}
	decode(t, resp, &txns)
	assert.Empty(t, txns.Items)
}

func TestAPI_EnvioDeFacturaPorCorreo(t *testing.T) {
	app, mailer := buildAPI(t)
	token := registerAndVerify(t, app, "correo@test.com")

	resp := doJSON(t, app, http.MethodPost, "/api/companies/", token, fiber.Map{
		"name": "Acme Corp", "email": "billing@acme.com",
	})
	var company struct {
		ID string `json:"id"`
	}
	decode(t, resp, &company)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices/generate", token, fiber.Map{
		"company_id":   company.ID,
		"client_name":  "Cliente",
		"client_email": "cliente@test.com",
		"items":        []fiber.Map{{"description": "Servicio", "quantity": 1, "rate": 500}},
	})
	var inv struct {
		ID string `json:"id"`
	}
	decode(t, resp, &inv)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices/"+inv.ID+"/email", token, fiber.Map{
		"to":                   "cliente@test.com",
		"message":              "Adjunto su factura.",
		"include_payment_link": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, []string{"cliente@test.com"}, msg.To)
	assert.Contains(t, msg.Body, testBaseURL+"/pay/"+inv.ID,
		"el cuerpo debe incluir el enlace de pago")
	assert.Equal(t, "billing@acme.com", msg.From,
		"el remitente es el email de la empresa emisora")
}

func TestAPI_SettingsAfectanCobros(t *testing.T) {
	app, _ := buildAPI(t)
	token := registerAndVerify(t, app, "settings@test.com")

	// Subir comisiones
	resp := doJSON(t, app, http.MethodPut, "/api/settings/", token, fiber.Map{
		"processing_fee_rate":  "0.05",
		"processing_fee_fixed": "1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/payments/charge", token, fiber.Map{
		"amount": 100, "description": "Venta", "payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var charge struct {
		Transaction struct {
			ProcessingFee string `json:"processing_fee"`
		} `json:"transaction"`
	}
	decode(t, resp, &charge)
	assert.Equal(t, "6", charge.Transaction.ProcessingFee, "5% + 1 sobre 100")

	// Moneda no soportada → 400
	resp = doJSON(t, app, http.MethodPut, "/api/settings/", token, fiber.Map{
		"default_currency": "BITCOIN",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Ejercita el patch parcial de empresas vía HTTP.
func TestAPI_ActualizacionParcialDeEmpresa(t *testing.T) {
	app, _ := buildAPI(t)
	token := registerAndVerify(t, app, "patch@test.com")

	resp := doJSON(t, app, http.MethodPost, "/api/companies/", token, fiber.Map{
		"name": "Original", "email": "o@test.com", "phone": "555-1234",
	})
	var company struct {
		ID string `json:"id"`
	}
	decode(t, resp, &company)

	resp = doJSON(t, app, http.MethodPut, "/api/companies/"+company.ID, token, fiber.Map{
		"name": "Renombrada",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	decode(t, resp, &updated)
	assert.Equal(t, "Renombrada", updated.Name)
	assert.Equal(t, "555-1234", updated.Phone, "los campos no enviados se conservan")

	// ID desconocido → 404
	resp = doJSON(t, app, http.MethodPut, "/api/companies/no-existe", token, fiber.Map{
		"name": "X",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
