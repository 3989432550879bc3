package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// EmailUseCase envío de facturas por correo. El fallo del mailer se reporta
// como aviso transitorio (ErrEmailSendFailed); no hay reintento automático.
type EmailUseCase struct {
	store    *store.Store
	mailer   Mailer
	pdf      InvoicePDFGenerator
	baseURL  string // base pública para los enlaces de pago
	fromAddr string // remitente por defecto si la empresa no tiene email
}

// NewEmailUseCase construye el caso de uso.
func NewEmailUseCase(st *store.Store, mailer Mailer, pdf InvoicePDFGenerator, baseURL, fromAddr string) *EmailUseCase {
	return &EmailUseCase{store: st, mailer: mailer, pdf: pdf, baseURL: baseURL, fromAddr: fromAddr}
}

// SendInvoice envía por correo el borrador identificado por invoiceID.
// Compone asunto y cuerpo, agrega la sección del enlace de pago, adjunta el
// PDF si se pidió y manda copia a la empresa emisora con send_copy.
func (uc *EmailUseCase) SendInvoice(ctx context.Context, invoiceID string, in dto.EmailInvoiceRequest) (*dto.EmailInvoiceResponse, error) {
	if strings.TrimSpace(in.To) == "" {
		return nil, domain.NewValidationError("to", "el destinatario es obligatorio")
	}
	if !emailPattern.MatchString(in.To) {
		return nil, domain.NewValidationError("to", "formato de email inválido")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, domain.NewValidationError("message", "el mensaje es obligatorio")
	}

	draft, ok := uc.store.Draft(invoiceID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	record := draft.Data

	subject := in.Subject
	if subject == "" {
		subject = defaultSubject(&record)
	}

	paymentURL := ""
	if in.IncludeURL {
		paymentURL = PaymentURL(uc.baseURL, record.ID)
	}
	body := composeBody(in.Message, paymentURL)

	from := uc.fromAddr
	to := []string{in.To}
	if record.Company != nil && record.Company.Email != "" {
		from = record.Company.Email
		if in.SendCopy {
			to = append(to, record.Company.Email)
		}
	}

	msg := Message{From: from, To: to, Subject: subject, Body: body}
	if in.AttachPDF && uc.pdf != nil {
		pdfBytes, err := uc.pdf.GenerateInvoicePDF(ctx, &record, paymentURL)
		if err != nil {
			return nil, fmt.Errorf("generar PDF: %w", err)
		}
		msg.AttachmentName = record.InvoiceNumber + ".pdf"
		msg.Attachment = pdfBytes
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmailSendFailed, err)
	}
	return &dto.EmailInvoiceResponse{Sent: true, PaymentURL: paymentURL}, nil
}

func defaultSubject(record *entity.InvoiceRecord) string {
	company := ""
	if record.Company != nil {
		company = record.Company.Name
	}
	return fmt.Sprintf("Factura %s de %s por %s",
		record.InvoiceNumber, company, money.Format(record.Total, record.Currency))
}

// composeBody agrega al mensaje la sección del enlace de pago y el pie fijo
// del sistema.
func composeBody(message, paymentURL string) string {
	var b strings.Builder
	b.WriteString(message)
	if paymentURL != "" {
		b.WriteString("\n\nPague su factura en línea: ")
		b.WriteString(paymentURL)
		b.WriteString("\nUse el enlace para pagar de forma segura con su tarjeta.")
	}
	b.WriteString("\n\n---\nEste correo fue enviado desde su sistema Payment Terminal.")
	return b.String()
}
