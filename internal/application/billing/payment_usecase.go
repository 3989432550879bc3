package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	domInvoice "github.com/jhoicas/payment-terminal-api/internal/domain/invoice"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// PaymentUseCase cobros del terminal e intentos de pago. Mientras el gateway
// resuelve, el caller mantiene la UI en estado "procesando" y bloquea el
// reenvío; aquí no hay reintento automático.
type PaymentUseCase struct {
	store   *store.Store
	gateway PaymentGateway
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(st *store.Store, gateway PaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{store: st, gateway: gateway}
}

// Charge procesa un cobro del terminal: valida, calcula la comisión de
// procesamiento con las tasas de settings, invoca el gateway y, solo si el
// cobro resuelve con éxito, registra la transacción en el log. Un fallo del
// gateway deja el estado intacto para que el usuario reintente manualmente.
func (uc *PaymentUseCase) Charge(ctx context.Context, in dto.ChargeRequest) (*dto.ChargeResponse, error) {
	amount := in.Amount.Decimal
	if amount.IsZero() || amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "el monto debe ser mayor a cero")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.NewValidationError("description", "la descripción es obligatoria")
	}
	if in.PaymentMethod == "" {
		return nil, domain.NewValidationError("payment_method", "seleccione un método de pago")
	}

	settings := uc.store.Settings()
	currency := in.Currency
	if currency == "" {
		currency = settings.DefaultCurrency
	}
	currency = money.Lookup(currency).Code

	fee := domInvoice.ProcessingFee(amount, settings.ProcessingFeeRate, settings.ProcessingFeeFixed)
	totalWithFees := amount.Add(fee)

	result, err := uc.gateway.Charge(ctx, ChargeRequest{
		AmountMinor:   money.MinorUnits(amount, currency),
		Currency:      currency,
		Description:   in.Description,
		CustomerEmail: in.CustomerEmail,
		PaymentMethod: in.PaymentMethod,
		MethodDetails: in.MethodDetails,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	txn, err := uc.store.AddTransaction(entity.Transaction{
		CompanyID:     in.CompanyID,
		Amount:        amount,
		Currency:      currency,
		Description:   in.Description,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.TxStatusSucceeded,
		ProcessingFee: fee,
		TotalWithFees: totalWithFees,
		MethodDetails: in.MethodDetails,
		IntentRef:     result.Ref,
	})
	if err != nil {
		return nil, err
	}
	return &dto.ChargeResponse{
		Transaction: toTransactionResponse(txn),
		Display:     money.Format(amount, currency),
	}, nil
}

// CreateIntent crea un intento de pago confirmable por el cliente. El monto
// se convierte a unidades menores según los decimales de la moneda; una
// moneda no soportada cae a USD en lugar de fallar.
func (uc *PaymentUseCase) CreateIntent(ctx context.Context, in dto.CreateIntentRequest) (*dto.CreateIntentResponse, error) {
	amount := in.Amount.Decimal
	if amount.IsZero() || amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "el monto debe ser mayor a cero")
	}
	currency := in.Currency
	if currency == "" {
		currency = uc.store.Settings().DefaultCurrency
	}
	if !money.IsSupported(currency) {
		currency = "USD"
	}
	currency = money.Lookup(currency).Code

	intent, err := uc.gateway.CreateIntent(ctx, IntentRequest{
		Amount:        amount,
		Currency:      currency,
		Description:   in.Description,
		CustomerEmail: in.CustomerEmail,
		Metadata:      in.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}
	return &dto.CreateIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Currency:     intent.Currency,
		AmountMinor:  intent.AmountMinor,
	}, nil
}

// Transactions devuelve el log completo (append-only).
func (uc *PaymentUseCase) Transactions() *dto.TransactionListResponse {
	txns := uc.store.Transactions()
	// El log se guarda en orden de llegada; el historial se muestra al revés.
	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		items = append(items, toTransactionResponse(txns[i]))
	}
	return &dto.TransactionListResponse{Items: items}
}

func toTransactionResponse(t entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID,
		CompanyID:     t.CompanyID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Description:   t.Description,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		PaymentMethod: t.PaymentMethod,
		Status:        t.Status,
		Date:          t.Date,
		ProcessingFee: t.ProcessingFee,
		TotalWithFees: t.TotalWithFees,
		MethodDetails: t.MethodDetails,
	}
}
