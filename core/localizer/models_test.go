package localizer_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dmitrymomot/l10n/core/language"
	"github.com/dmitrymomot/l10n/core/localizer"
	"github.com/dmitrymomot/l10n/core/logger"
)

const (
	productName        = `{"en":"Car","pt":"Carro"}`
	productDescription = `{"en":"This is a product description.","pt":"Isso é uma descrição de produto."}`
	categoryName       = `{"en":"Cars","pt":"Carros"}`
	categoryDesc       = `{"en":"This is a category description.","pt":"Isso é uma descrição de categoria."}`
	parentName         = `{"en":"Vehicles","pt":"Veículos"}`
)

type Category struct {
	Name        string `localize:"text"`
	Description string `localize:"text"`
	Parent      *Category
}

type Product struct {
	Name        string  `localize:"text"`
	Description string  `localize:"text"`
	Summary     *string `localize:"text"`
	IsAvailable bool
	Category    *Category
	Related     []*Product
	Tags        []Category
	Audit       *Category `localize:"-"`
	internal    string
}

type Base struct {
	Title string `localize:"text"`
}

type Article struct {
	Base
	Body string `localize:"text"`
}

// Draft embeds Base but opts out of its promoted fields.
type Draft struct {
	Base `localize:"-"`
	Body string `localize:"text"`
}

// Wrapper starts with a struct value field, so its address equals that of the field.
type Wrapper struct {
	Inner Category
	Pair  [2]Category
}

type Node struct {
	Name   string `localize:"text"`
	Shared *Leaf
}

type Leaf struct {
	Name string `localize:"text"`
}

type Root struct {
	A *Node
	B *Node
}

type Plain struct {
	ID    int
	Names map[string]Category
	Any   any
}

func newProduct() *Product {
	return &Product{
		Name:        productName,
		Description: productDescription,
		Category: &Category{
			Name:        categoryName,
			Description: categoryDesc,
			Parent:      &Category{Name: parentName},
		},
	}
}

func newRegistry() *language.Registry {
	r := language.NewRegistry()
	r.Configure([]string{"en", "pt"}, []string{"es"})
	return r
}

func newLocalizer(t *testing.T, opts ...localizer.Option) *localizer.Localizer {
	t.Helper()
	base := []localizer.Option{
		localizer.WithRegistry(newRegistry()),
		localizer.WithTypeCache(localizer.NewTypeCache()),
		localizer.WithLogger(logger.Discard()),
	}
	return localizer.New(append(base, opts...)...)
}

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return logger.New(logger.WithLevel(slog.LevelDebug), logger.WithOutput(buf))
}
