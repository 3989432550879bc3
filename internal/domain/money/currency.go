// Package money implementa la tabla de monedas de referencia: lookup por
// código, formato de montos según la precisión declarada y conversión a
// unidades menores para el procesador de pagos.
package money

import "strings"

// Currency entrada inmutable de la tabla de monedas.
type Currency struct {
	Code     string // ISO 4217, mayúsculas
	Name     string
	Symbol   string
	Decimals int // cantidad de dígitos fraccionarios (0, 2 o 3)
}

// Currencies tabla estática de monedas soportadas. La primera entrada (USD)
// es la moneda por defecto cuando un código no se reconoce.
var Currencies = []Currency{
	// Principales
	{Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: 2},
	{Code: "EUR", Name: "Euro", Symbol: "€", Decimals: 2},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Decimals: 2},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: 0},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Decimals: 2},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Decimals: 2},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Decimals: 2},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$", Decimals: 2},

	// Asia
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Decimals: 2},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", Decimals: 0},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Decimals: 2},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", Decimals: 2},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Decimals: 2},
	{Code: "THB", Name: "Thai Baht", Symbol: "฿", Decimals: 2},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Decimals: 2},
	{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", Decimals: 0},
	{Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Decimals: 2},
	{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", Decimals: 0},

	// Europa
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Decimals: 2},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", Decimals: 2},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr", Decimals: 2},
	{Code: "PLN", Name: "Polish Zloty", Symbol: "zł", Decimals: 2},
	{Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", Decimals: 2},
	{Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", Decimals: 0},
	{Code: "RON", Name: "Romanian Leu", Symbol: "lei", Decimals: 2},
	{Code: "BGN", Name: "Bulgarian Lev", Symbol: "лв", Decimals: 2},
	{Code: "HRK", Name: "Croatian Kuna", Symbol: "kn", Decimals: 2},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽", Decimals: 2},
	{Code: "UAH", Name: "Ukrainian Hryvnia", Symbol: "₴", Decimals: 2},

	// Medio Oriente y África
	{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ", Decimals: 2},
	{Code: "SAR", Name: "Saudi Riyal", Symbol: "﷼", Decimals: 2},
	{Code: "QAR", Name: "Qatari Riyal", Symbol: "﷼", Decimals: 2},
	{Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "د.ك", Decimals: 3},
	{Code: "BHD", Name: "Bahraini Dinar", Symbol: ".د.ب", Decimals: 3},
	{Code: "OMR", Name: "Omani Rial", Symbol: "﷼", Decimals: 3},
	{Code: "JOD", Name: "Jordanian Dinar", Symbol: "د.ا", Decimals: 3},
	{Code: "LBP", Name: "Lebanese Pound", Symbol: "ل.ل", Decimals: 2},
	{Code: "EGP", Name: "Egyptian Pound", Symbol: "£", Decimals: 2},
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Decimals: 2},
	{Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Decimals: 2},
	{Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh", Decimals: 2},
	{Code: "GHS", Name: "Ghanaian Cedi", Symbol: "₵", Decimals: 2},
	{Code: "MAD", Name: "Moroccan Dirham", Symbol: "د.م.", Decimals: 2},
	{Code: "TND", Name: "Tunisian Dinar", Symbol: "د.ت", Decimals: 3},

	// Latinoamérica
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$", Decimals: 2},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Decimals: 2},
	{Code: "ARS", Name: "Argentine Peso", Symbol: "$", Decimals: 2},
	{Code: "CLP", Name: "Chilean Peso", Symbol: "$", Decimals: 0},
	{Code: "COP", Name: "Colombian Peso", Symbol: "$", Decimals: 2},
	{Code: "PEN", Name: "Peruvian Sol", Symbol: "S/", Decimals: 2},
	{Code: "UYU", Name: "Uruguayan Peso", Symbol: "$U", Decimals: 2},
	{Code: "BOB", Name: "Bolivian Boliviano", Symbol: "Bs", Decimals: 2},
	{Code: "PYG", Name: "Paraguayan Guarani", Symbol: "₲", Decimals: 0},
	{Code: "GTQ", Name: "Guatemalan Quetzal", Symbol: "Q", Decimals: 2},
	{Code: "CRC", Name: "Costa Rican Colon", Symbol: "₡", Decimals: 2},
	{Code: "DOP", Name: "Dominican Peso", Symbol: "RD$", Decimals: 2},

	// Otras
	{Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Decimals: 2},
	{Code: "ILS", Name: "Israeli Shekel", Symbol: "₪", Decimals: 2},
	{Code: "PKR", Name: "Pakistani Rupee", Symbol: "₨", Decimals: 2},
	{Code: "BDT", Name: "Bangladeshi Taka", Symbol: "৳", Decimals: 2},
	{Code: "LKR", Name: "Sri Lankan Rupee", Symbol: "₨", Decimals: 2},
	{Code: "NPR", Name: "Nepalese Rupee", Symbol: "₨", Decimals: 2},
	{Code: "MMK", Name: "Myanmar Kyat", Symbol: "K", Decimals: 2},
	{Code: "KHR", Name: "Cambodian Riel", Symbol: "៛", Decimals: 2},
	{Code: "LAK", Name: "Lao Kip", Symbol: "₭", Decimals: 2},
	{Code: "BND", Name: "Brunei Dollar", Symbol: "B$", Decimals: 2},
	{Code: "FJD", Name: "Fijian Dollar", Symbol: "FJ$", Decimals: 2},
	{Code: "TOP", Name: "Tongan Pa'anga", Symbol: "T$", Decimals: 2},
	{Code: "WST", Name: "Samoan Tala", Symbol: "WS$", Decimals: 2},
	{Code: "VUV", Name: "Vanuatu Vatu", Symbol: "VT", Decimals: 0},
	{Code: "SBD", Name: "Solomon Islands Dollar", Symbol: "SI$", Decimals: 2},
	{Code: "PGK", Name: "Papua New Guinea Kina", Symbol: "K", Decimals: 2},
}

// Lookup busca una moneda por código (insensible a mayúsculas). Nunca falla:
// si el código no está en la tabla devuelve la moneda por defecto (USD).
func Lookup(code string) Currency {
	c := strings.ToUpper(strings.TrimSpace(code))
	for _, cur := range Currencies {
		if cur.Code == c {
			return cur
		}
	}
	return Currencies[0]
}

// IsSupported indica si el código existe en la tabla.
func IsSupported(code string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	for _, cur := range Currencies {
		if cur.Code == c {
			return true
		}
	}
	return false
}

// Symbol devuelve el símbolo de la moneda, o "$" si no se reconoce.
func Symbol(code string) string {
	return Lookup(code).Symbol
}
