package billing

import (
	"github.com/jhoicas/payment-terminal-api/internal/application/dto"
	"github.com/jhoicas/payment-terminal-api/internal/application/store"
	"github.com/jhoicas/payment-terminal-api/internal/domain"
	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// InvoiceUseCase orquesta el ciclo del editor de facturas: preview en cada
// edición, generación validada y guardado explícito como borrador.
type InvoiceUseCase struct {
	store   *store.Store
	builder *InvoiceBuilder
	baseURL string
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(st *store.Store, builder *InvoiceBuilder, baseURL string) *InvoiceUseCase {
	return &InvoiceUseCase{store: st, builder: builder, baseURL: baseURL}
}

// build arma el registro desde el request. La empresa puede faltar en un
// preview; la validación de generación la exige después.
func (uc *InvoiceUseCase) build(in dto.BuildInvoiceRequest) *entity.InvoiceRecord {
	var company *entity.Company
	if in.CompanyID != "" {
		if c, ok := uc.store.Company(in.CompanyID); ok {
			company = &c
		}
	}
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.Decimal,
			Rate:        it.Rate.Decimal,
		})
	}
	ov := BuildOverrides{
		InvoiceNumber: in.InvoiceNumber,
		DueDate:       in.DueDate,
		Currency:      in.Currency,
		Notes:         in.Notes,
	}
	if in.TaxRatePercent != nil {
		pct := in.TaxRatePercent.Decimal
		ov.TaxRatePercent = &pct
	}
	return uc.builder.Build(company, entity.Client{
		Name:    in.ClientName,
		Email:   in.ClientEmail,
		Address: in.ClientAddress,
	}, items, uc.store.Settings(), ov)
}

// Preview recalcula los totales sin validar ni mutar estado. Se invoca en
// cada edición de línea.
func (uc *InvoiceUseCase) Preview(in dto.BuildInvoiceRequest) *dto.InvoiceResponse {
	return toInvoiceResponse(uc.build(in))
}

// Generate valida que el registro esté listo y lo emite. Un fallo de
// validación bloquea la generación sin producir registro ni mutación. Al
// generar se registra el cliente para el contador de la empresa.
func (uc *InvoiceUseCase) Generate(in dto.BuildInvoiceRequest) (*dto.InvoiceResponse, error) {
	record := uc.build(in)
	if err := uc.builder.ValidateForGenerate(record); err != nil {
		return nil, err
	}
	record.Status = entity.InvoiceStatusSent
	// Se persiste para que la página de pago, el PDF y el envío por correo
	// puedan resolverla por id.
	if _, err := uc.store.SaveDraft(*record); err != nil {
		return nil, err
	}
	if _, err := uc.store.RecordClient(record.Company.ID, record.Client.Email); err != nil {
		return nil, err
	}
	return toInvoiceResponse(record), nil
}

// SaveDraft guarda el payload actual como borrador, sin pasar por la
// validación de generación.
func (uc *InvoiceUseCase) SaveDraft(in dto.BuildInvoiceRequest) (*dto.DraftResponse, error) {
	record := uc.build(in)
	draft, err := uc.store.SaveDraft(*record)
	if err != nil {
		return nil, err
	}
	resp := toDraftResponse(draft)
	return &resp, nil
}

// Drafts listado de borradores guardados.
func (uc *InvoiceUseCase) Drafts() *dto.DraftListResponse {
	drafts := uc.store.Drafts()
	items := make([]dto.DraftResponse, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, toDraftResponse(d))
	}
	return &dto.DraftListResponse{Items: items}
}

// Draft resuelve un borrador por id (o por id del registro que contiene).
func (uc *InvoiceUseCase) Draft(id string) (*dto.DraftResponse, error) {
	d, ok := uc.store.Draft(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	resp := toDraftResponse(d)
	return &resp, nil
}

// DraftRecord devuelve el registro crudo del borrador (para el PDF).
func (uc *InvoiceUseCase) DraftRecord(id string) (*entity.InvoiceRecord, error) {
	d, ok := uc.store.Draft(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d.Data, nil
}

// Share deriva los enlaces de cobro de una factura guardada.
func (uc *InvoiceUseCase) Share(id string) (*dto.ShareResponse, error) {
	d, ok := uc.store.Draft(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &dto.ShareResponse{
		PaymentURL: PaymentURL(uc.baseURL, d.Data.ID),
		ShortURL:   ShortURL(d.Data.ID),
		QRPath:     "/pay/" + d.Data.ID + "/qr",
	}, nil
}

func toInvoiceResponse(r *entity.InvoiceRecord) *dto.InvoiceResponse {
	items := make([]dto.LineItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}
	resp := &dto.InvoiceResponse{
		ID:            r.ID,
		ClientName:    r.Client.Name,
		ClientEmail:   r.Client.Email,
		ClientAddress: r.Client.Address,
		InvoiceNumber: r.InvoiceNumber,
		DueDate:       r.DueDate,
		Currency:      r.Currency,
		Items:         items,
		Subtotal:      r.Subtotal,
		TaxRate:       r.TaxRate,
		Tax:           r.Tax,
		Total:         r.Total,
		TotalDisplay:  money.Format(r.Total, r.Currency),
		Notes:         r.Notes,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
	if r.Company != nil {
		resp.CompanyID = r.Company.ID
		resp.CompanyName = r.Company.Name
	}
	return resp
}

func toDraftResponse(d entity.Draft) dto.DraftResponse {
	return dto.DraftResponse{
		ID:      d.ID,
		SavedAt: d.SavedAt,
		Data:    *toInvoiceResponse(&d.Data),
	}
}
