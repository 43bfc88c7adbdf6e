package culture

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnknownCurrency is returned for currency codes that are not ISO 4217.
var ErrUnknownCurrency = errors.New("culture: unknown currency")

// Format formats numbers and amounts for one language.
// It is immutable after creation and safe for concurrent use.
type Format struct {
	tag        language.Tag
	printer    *message.Printer
	isoSymbols bool
	separator  string
}

// FormatOption configures a Format during construction.
type FormatOption func(*Format)

// WithISOSymbols prints currency amounts with the ISO code ("USD 1.00")
// instead of the localized symbol ("$ 1.00").
func WithISOSymbols() FormatOption {
	return func(f *Format) {
		f.isoSymbols = true
	}
}

// WithSymbolSeparator sets the text between the currency symbol and the amount.
func WithSymbolSeparator(sep string) FormatOption {
	return func(f *Format) {
		f.separator = sep
	}
}

// New creates a Format for lang. Unparsable tags fall back to English.
// Underscore separated locales such as "pt_BR" are accepted.
func New(lang string, opts ...FormatOption) *Format {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
	if err != nil {
		tag = language.English
	}

	f := &Format{
		tag:       tag,
		printer:   message.NewPrinter(tag),
		separator: " ",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Language returns the BCP 47 tag the format was built for.
func (f *Format) Language() string {
	return f.tag.String()
}

// Number formats n with the language's grouping and decimal separators.
func (f *Format) Number(n float64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Percent formats n as a percentage, so 0.25 becomes "25%".
func (f *Format) Percent(n float64) string {
	return f.printer.Sprint(number.Percent(n))
}

// Symbol returns the currency symbol for iso in this language.
func (f *Format) Symbol(iso string) (string, error) {
	unit, err := parseCurrency(iso)
	if err != nil {
		return "", err
	}
	return f.symbol(unit), nil
}

// Currency formats amount in the currency iso, rounded to the currency's
// standard number of decimals.
func (f *Format) Currency(amount float64, iso string) (string, error) {
	unit, err := parseCurrency(iso)
	if err != nil {
		return "", err
	}

	scale, _ := currency.Standard.Rounding(unit)
	digits := f.printer.Sprint(number.Decimal(amount, number.Scale(scale)))
	return f.symbol(unit) + f.separator + digits, nil
}

func (f *Format) symbol(unit currency.Unit) string {
	if f.isoSymbols {
		return unit.String()
	}
	return f.printer.Sprint(currency.Symbol(unit))
}

func parseCurrency(iso string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(iso)))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, iso)
	}
	return unit, nil
}

// ForCurrency returns a Format for the language spoken in the home region of the
// currency iso, so BRL amounts use Brazilian Portuguese separators. The home region
// is the one named by the code's first two letters when it uses the currency,
// otherwise the alphabetically first region that does. Currencies without a region
// fall back to English.
func ForCurrency(iso string, opts ...FormatOption) (*Format, error) {
	unit, err := parseCurrency(iso)
	if err != nil {
		return nil, err
	}

	region, ok := homeRegion(unit)
	if !ok {
		return New("en", opts...), nil
	}

	base, _ := language.Make("und-" + region.String()).Base()
	tag, err := language.Compose(base, region)
	if err != nil {
		return New("en", opts...), nil
	}
	return New(tag.String(), opts...), nil
}

type home struct {
	region language.Region
	ok     bool
}

func homeRegion(unit currency.Unit) (language.Region, bool) {
	if v, ok := regions.Load(unit); ok {
		h := v.(home)
		return h.region, h.ok
	}

	var h home
	if r, err := language.ParseRegion(unit.String()[:2]); err == nil {
		if u, ok := currency.FromRegion(r); ok && u == unit {
			h = home{region: r, ok: true}
		}
	}
	for a := 'A'; a <= 'Z' && !h.ok; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			r, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil {
				continue
			}
			if u, ok := currency.FromRegion(r); ok && u == unit {
				h = home{region: r, ok: true}
				break
			}
		}
	}

	regions.Store(unit, h)
	return h.region, h.ok
}

var (
	formats sync.Map // string -> *Format
	regions sync.Map // currency.Unit -> home
	homes   sync.Map // currency.Unit -> *Format
)

func lookup(lang string) *Format {
	if f, ok := formats.Load(lang); ok {
		return f.(*Format)
	}
	f, _ := formats.LoadOrStore(lang, New(lang))
	return f.(*Format)
}

// FormatNumber formats n for lang.
func FormatNumber(n float64, lang string) string {
	return lookup(lang).Number(n)
}

// FormatPercent formats n as a percentage for lang.
func FormatPercent(n float64, lang string) string {
	return lookup(lang).Percent(n)
}

// FormatCurrency formats amount in the currency iso for lang.
func FormatCurrency(amount float64, iso, lang string) (string, error) {
	return lookup(lang).Currency(amount, iso)
}

// FormatMoney formats amount in the currency iso the way the currency's home
// language writes it.
func FormatMoney(amount float64, iso string) (string, error) {
	unit, err := parseCurrency(iso)
	if err != nil {
		return "", err
	}

	var f *Format
	if v, ok := homes.Load(unit); ok {
		f = v.(*Format)
	} else {
		if f, err = ForCurrency(iso); err != nil {
			return "", err
		}
		homes.Store(unit, f)
	}
	return f.Currency(amount, iso)
}

// CurrencySymbol returns the symbol of the currency iso as written in lang.
func CurrencySymbol(iso, lang string) (string, error) {
	return lookup(lang).Symbol(iso)
}
