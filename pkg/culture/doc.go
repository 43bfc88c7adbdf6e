// Package culture formats numbers and currency amounts the way a given language writes them.
//
//	culture.FormatNumber(1234567.5, "de")         // "1.234.567,5"
//	culture.FormatCurrency(1234.5, "USD", "en")   // "$ 1,234.50"
//	culture.CurrencySymbol("BRL", "pt")           // "R$"
//	culture.FormatMoney(1234.5, "BRL")            // "R$ 1.234,50", home language of the currency
//
// A Format holds the settings for one language and can be reused:
//
//	f := culture.New("pt-BR", culture.WithISOSymbols())
//	s, err := f.Currency(99.9, "BRL") // "BRL 99,90"
//
// Currency codes must be ISO 4217; anything else yields ErrUnknownCurrency.
package culture
