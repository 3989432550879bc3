// Package payment implementa la pasarela de pagos simulada. Reproduce el
// contrato de una pasarela real (intents, cargos en unidades menores,
// referencias opacas) sin mover dinero: útil para demos y pruebas de punta a
// punta sin credenciales.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/payment-terminal-api/internal/application/billing"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// SimulatedGateway implementa billing.PaymentGateway en memoria.
type SimulatedGateway struct {
	delay    time.Duration
	failCode string
}

// NewSimulatedGateway construye la pasarela. delay simula la latencia del
// procesador; failCode, si no está vacío, hace fallar los cargos cuyo detalle
// de método lo contenga (inyección de fallos para pruebas manuales).
func NewSimulatedGateway(delay time.Duration, failCode string) *SimulatedGateway {
	return &SimulatedGateway{delay: delay, failCode: failCode}
}

// CreateIntent crea un intent con identificador y client secret opacos.
func (g *SimulatedGateway) CreateIntent(ctx context.Context, req billing.IntentRequest) (*billing.Intent, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	id := "pi_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	return &billing.Intent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.New().String()[:8],
		AmountMinor:  money.MinorUnits(req.Amount, req.Currency),
		Currency:     req.Currency,
	}, nil
}

// Charge ejecuta el cargo. Solo falla si el detalle del método coincide con el
// código de fallo configurado.
func (g *SimulatedGateway) Charge(ctx context.Context, req billing.ChargeRequest) (*billing.ChargeResult, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	if g.failCode != "" && strings.Contains(req.MethodDetails, g.failCode) {
		return nil, fmt.Errorf("la tarjeta fue rechazada por el emisor")
	}
	return &billing.ChargeResult{
		Ref: "ch_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
	}, nil
}

// wait simula la latencia del procesador respetando la cancelación del contexto.
func (g *SimulatedGateway) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
