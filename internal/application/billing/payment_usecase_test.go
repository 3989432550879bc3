package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: puerto de estado en memoria y gateway con resultado
// inyectable (éxito o fallo), como pide el diseño de adaptadores.
// ──────────────────────────────────────────────────────────────────────────────

type memoryPort struct{ saved *store.AppState }

func (p *memoryPort) Load() (*store.AppState, bool, error) {
	if p.saved == nil {
		return nil, false, nil
	}
	return p.saved, true, nil
}
func (p *memoryPort) Save(s *store.AppState) error { p.saved = s; return nil }

type fakeGateway struct {
	failWith    error
	lastCharge  billing.ChargeRequest
	lastIntent  billing.IntentRequest
	chargeCalls int
}

func (g *fakeGateway) Charge(_ context.Context, in billing.ChargeRequest) (*billing.ChargeResult, error) {
	g.chargeCalls++
	g.lastCharge = in
	if g.failWith != nil {
		return nil, g.failWith
	}
	return &billing.ChargeResult{Ref: "ch_test_1"}, nil
}

func (g *fakeGateway) CreateIntent(_ context.Context, in billing.IntentRequest) (*billing.Intent, error) {
	g.lastIntent = in
	if g.failWith != nil {
		return nil, g.failWith
	}
	return &billing.Intent{ID: "pi_test_1", ClientSecret: "secret", Currency: in.Currency, AmountMinor: 1050}, nil
}

func newPaymentUC(t *testing.T) (*billing.PaymentUseCase, *store.Store, *fakeGateway) {
	t.Helper()
	st, err := store.New(&memoryPort{})
	require.NoError(t, err)
	gw := &fakeGateway{}
	return billing.NewPaymentUseCase(st, gw), st, gw
}

func looseD(s string) dto.LooseDecimal { return dto.LooseDecimal{Decimal: d(s)} }

// ──────────────────────────────────────────────────────────────────────────────
// Charge
// ──────────────────────────────────────────────────────────────────────────────

func TestCharge_ExitoRegistraTransaccionConComision(t *testing.T) {
	uc, st, gw := newPaymentUC(t)

	resp, err := uc.Charge(context.Background(), dto.ChargeRequest{
		Amount:        looseD("100"),
		Description:   "Venta mostrador",
		PaymentMethod: entity.PayMethodCard,
		CustomerEmail: "cliente@test.com",
	})
	require.NoError(t, err)

	// Comisión 2.9% + 0.30 de los settings por defecto.
	assert.True(t, d("3.2").Equal(resp.Transaction.ProcessingFee), "fee: %s", resp.Transaction.ProcessingFee)
	assert.True(t, d("103.2").Equal(resp.Transaction.TotalWithFees))
	assert.Equal(t, entity.TxStatusSucceeded, resp.Transaction.Status)
	assert.Equal(t, "USD", resp.Transaction.Currency, "moneda por defecto de settings")
	assert.Equal(t, "$100.00", resp.Display)
	assert.Equal(t, int64(10000), gw.lastCharge.AmountMinor, "unidades menores según la moneda")
	assert.Len(t, st.Transactions(), 1)
}

// Fallo del gateway: error transitorio, ningún registro en el log y el
// formulario queda para reintento manual.
func TestCharge_FalloDejaElEstadoIntacto(t *testing.T) {
	uc, st, gw := newPaymentUC(t)
	gw.failWith = errors.New("tarjeta rechazada")

	_, err := uc.Charge(context.Background(), dto.ChargeRequest{
		Amount:        looseD("50"),
		Description:   "Venta",
		PaymentMethod: entity.PayMethodCard,
	})
	require.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Empty(t, st.Transactions(), "sin transacción tras un fallo")
	assert.Equal(t, 1, gw.chargeCalls, "sin reintento automático")
}

func TestCharge_ValidacionDeCampos(t *testing.T) {
	uc, _, _ := newPaymentUC(t)

	tests := []struct {
		name      string
		in        dto.ChargeRequest
		wantField string
	}{
		{"monto cero", dto.ChargeRequest{Description: "x", PaymentMethod: "card"}, "amount"},
		{"sin descripción", dto.ChargeRequest{Amount: looseD("10"), PaymentMethod: "card"}, "description"},
		{"sin método", dto.ChargeRequest{Amount: looseD("10"), Description: "x"}, "payment_method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Charge(context.Background(), tt.in)
			ve, ok := domain.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

// Un cobro asociado a una empresa acredita sus contadores.
func TestCharge_AcreditaEmpresa(t *testing.T) {
	uc, st, _ := newPaymentUC(t)
	c, err := st.AddCompany(entity.Company{Name: "Acme", Email: "acme@test.com"})
	require.NoError(t, err)

	_, err = uc.Charge(context.Background(), dto.ChargeRequest{
		Amount:        looseD("200"),
		Description:   "Factura INV-1",
		PaymentMethod: entity.PayMethodLink,
		CompanyID:     c.ID,
	})
	require.NoError(t, err)

	got, _ := st.Company(c.ID)
	assert.True(t, d("200").Equal(got.Stats.TotalRevenue))
	assert.Equal(t, 1, got.Stats.InvoiceCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateIntent
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateIntent_MonedaNoSoportadaCaeAUSD(t *testing.T) {
	uc, _, gw := newPaymentUC(t)

	resp, err := uc.CreateIntent(context.Background(), dto.CreateIntentRequest{
		Amount:   looseD("10.50"),
		Currency: "XYZ",
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", gw.lastIntent.Currency)
	assert.Equal(t, "pi_test_1", resp.IntentID)
}

func TestCreateIntent_MontoInvalido(t *testing.T) {
	uc, _, _ := newPaymentUC(t)
	_, err := uc.CreateIntent(context.Background(), dto.CreateIntentRequest{Amount: looseD("0")})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "amount", ve.Field)
}
