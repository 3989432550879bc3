package billing

import "fmt"

// PaymentURL deriva la URL pública de cobro de una factura. El esquema
// codifica el id del registro, de modo que /pay/:id lo resuelve de forma
// determinista desde los borradores guardados.
func PaymentURL(baseURL, invoiceID string) string {
	return fmt.Sprintf("%s/pay/%s", baseURL, invoiceID)
}

// ShortURL forma corta para SMS: pay.ly/<últimos 8 del id>.
func ShortURL(invoiceID string) string {
	id := invoiceID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return "pay.ly/" + id
}
