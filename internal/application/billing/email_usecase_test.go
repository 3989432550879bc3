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

type fakeMailer struct {
	failWith error
	sent     []billing.Message
}

func (m *fakeMailer) Send(_ context.Context, msg billing.Message) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakePDF struct{ calls int }

func (p *fakePDF) GenerateInvoicePDF(_ context.Context, _ *entity.InvoiceRecord, _ string) ([]byte, error) {
	p.calls++
	return []byte("%PDF-fake"), nil
}

func newEmailUC(t *testing.T) (*billing.EmailUseCase, *store.Store, *fakeMailer, *fakePDF) {
	t.Helper()
	st, err := store.New(&memoryPort{})
	require.NoError(t, err)
	mailer := &fakeMailer{}
	pdf := &fakePDF{}
	uc := billing.NewEmailUseCase(st, mailer, pdf, "https://pagos.test", "noreply@paymentterminal.test")
	return uc, st, mailer, pdf
}

func savedDraft(t *testing.T, st *store.Store) entity.Draft {
	t.Helper()
	b := billing.NewInvoiceBuilder()
	record := b.Build(testCompany(), testClient(), testItems(), entity.DefaultSettings(), billing.BuildOverrides{
		InvoiceNumber: "INV-77",
	})
	draft, err := st.SaveDraft(*record)
	require.NoError(t, err)
	return draft
}

func TestSendInvoice_ComponeCuerpoYEnlace(t *testing.T) {
	uc, st, mailer, _ := newEmailUC(t)
	draft := savedDraft(t, st)

	resp, err := uc.SendInvoice(context.Background(), draft.ID, dto.EmailInvoiceRequest{
		To:         "cliente@test.com",
		Message:    "Adjunto su factura.",
		IncludeURL: true,
	})
	require.NoError(t, err)
	require.True(t, resp.Sent)
	require.Len(t, mailer.sent, 1)

	msg := mailer.sent[0]
	assert.Equal(t, []string{"cliente@test.com"}, msg.To)
	assert.Equal(t, "acme@test.com", msg.From, "remitente = email de la empresa emisora")
	assert.Contains(t, msg.Subject, "INV-77")
	assert.Contains(t, msg.Body, "Adjunto su factura.")
	assert.Contains(t, msg.Body, resp.PaymentURL)
	assert.Contains(t, msg.Body, "sistema Payment Terminal")
}

func TestSendInvoice_CopiaALaEmpresaYAdjuntoPDF(t *testing.T) {
	uc, st, mailer, pdf := newEmailUC(t)
	draft := savedDraft(t, st)

	_, err := uc.SendInvoice(context.Background(), draft.ID, dto.EmailInvoiceRequest{
		To:        "cliente@test.com",
		Message:   "Factura",
		SendCopy:  true,
		AttachPDF: true,
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Contains(t, msg.To, "acme@test.com", "send_copy agrega a la empresa")
	assert.Equal(t, "INV-77.pdf", msg.AttachmentName)
	assert.NotEmpty(t, msg.Attachment)
	assert.Equal(t, 1, pdf.calls)
}

// Sin destinatario: bloqueado con la condición específica, sin envío.
func TestSendInvoice_SinDestinatario(t *testing.T) {
	uc, st, mailer, _ := newEmailUC(t)
	draft := savedDraft(t, st)

	_, err := uc.SendInvoice(context.Background(), draft.ID, dto.EmailInvoiceRequest{Message: "Hola"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "to", ve.Field)
	assert.Empty(t, mailer.sent)
	_ = draft
}

func TestSendInvoice_FalloDelMailerEsTransitorio(t *testing.T) {
	uc, st, mailer, _ := newEmailUC(t)
	draft := savedDraft(t, st)
	mailer.failWith = errors.New("smtp caído")

	_, err := uc.SendInvoice(context.Background(), draft.ID, dto.EmailInvoiceRequest{
		To:      "cliente@test.com",
		Message: "Factura",
	})
	assert.ErrorIs(t, err, domain.ErrEmailSendFailed)
}

func TestSendInvoice_BorradorInexistente(t *testing.T) {
	uc, _, _, _ := newEmailUC(t)
	_, err := uc.SendInvoice(context.Background(), "nope", dto.EmailInvoiceRequest{
		To: "a@b.co", Message: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
