// Package pdf implementa la representación gráfica de la factura con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa emisora  │  N° Factura + Fechas            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAR A: Cliente + contacto                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Tarifa | Importe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Notas + QR del enlace de pago                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/payment-terminal-api/internal/domain/entity"
	"github.com/jhoicas/payment-terminal-api/internal/domain/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}

	decimalHundred = decimal.NewFromInt(100)
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	record *entity.InvoiceRecord,
	paymentURL string,
) ([]byte, error) {
	author := "Payment Terminal"
	if record.Company != nil && record.Company.Name != "" {
		author = record.Company.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+record.InvoiceNumber, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(record))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(record.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(record) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(record))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(record, paymentURL) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa emisora (izq) y número + fechas (der).
func headerRow(record *entity.InvoiceRecord) core.Row {
	companyName := "—"
	companyContact := ""
	if record.Company != nil {
		companyName = record.Company.Name
		companyContact = fmt.Sprintf("%s   |   %s",
			nonEmpty(record.Company.Email, "—"),
			nonEmpty(record.Company.Address, "—"),
		)
	}
	emitida := record.CreatedAt.Format("02/01/2006")
	vence := nonEmpty(record.DueDate, "—")

	return row.New(20).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(companyContact, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(record.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitida: "+emitida+"   Vence: "+vence, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// billToRow: datos del cliente.
func billToRow(client entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(client.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Dirección: %s",
				nonEmpty(client.Email, "—"),
				nonEmpty(client.Address, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Descripción", 5, align.Left),
		h("Tarifa", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(record *entity.InvoiceRecord) []core.Row {
	result := make([]core.Row, 0, len(record.Items))
	for _, it := range record.Items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(it.Rate, record.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.Format(it.Amount, record.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(record *entity.InvoiceRecord) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	taxPct := record.TaxRate.Mul(decimalHundred)

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:", 2),
			label(fmt.Sprintf("Impuesto (%s%%):", taxPct.String()), 9),
			grandLabel("TOTAL:", 17),
		),
		col.New(4).Add(
			value(money.Format(record.Subtotal, record.Currency), 2),
			value(money.Format(record.Tax, record.Currency), 9),
			grandValue(money.Format(record.Total, record.Currency), 17),
		),
		col.New(1),
	)
}

// footerRows: notas + QR del enlace de pago.
func footerRows(record *entity.InvoiceRecord, paymentURL string) []core.Row {
	var rows []core.Row

	if record.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("NOTAS", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
			)),
			row.New(10).Add(col.New(12).Add(
				text.New(record.Notes, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
			)),
		)
	}

	if paymentURL != "" {
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(paymentURL, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para pagar\nesta factura en línea.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New(paymentURL, props.Text{
					Size: 7, Top: 18, Left: 3, Color: colorPrimary,
				}),
			),
		))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Gracias por su preferencia. Conserve este documento como soporte de la operación.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
