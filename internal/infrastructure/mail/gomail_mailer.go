// Package mail implementa el puerto de correo sobre SMTP con gomail.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/pkg/config"
)

// GomailMailer implementa billing.Mailer contra un servidor SMTP.
type GomailMailer struct {
	dialer *gomail.Dialer
}

// NewGomailMailer construye el mailer con la configuración SMTP.
func NewGomailMailer(cfg config.SMTPConfig) *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Send envía el mensaje. El adjunto, si existe, va inline en el mismo correo.
func (m *GomailMailer) Send(ctx context.Context, msg billing.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if len(msg.Attachment) > 0 && msg.AttachmentName != "" {
		gm.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(msg.Attachment))
			return err
		}))
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("mail: enviar: %w", err)
	}
	return nil
}
