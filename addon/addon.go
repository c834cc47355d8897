// Package addon resolves the helium add-on configuration for a product and applies it to
// cart lines and order lines. It is driven by explicit handler calls from the cart and
// order flows and owns no storage of its own.
package addon

import (
	"context"

	"github.com/shopspring/decimal"

	"product-helium-addon/models"
	"product-helium-addon/utils"
)

// MetaReader reads per-product meta. Missing keys read as "".
type MetaReader interface {
	GetMeta(ctx context.Context, productID int64, key string) (string, error)
}

// MetaWriter writes per-product meta
type MetaWriter interface {
	SetMeta(ctx context.Context, productID int64, key, value string) error
}

// ProductLookup loads the live product (or variation) behind a cart line
type ProductLookup interface {
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}

// OrderItemMetaWriter appends display metadata to a finalized order line
type OrderItemMetaWriter interface {
	AddOrderItemMeta(ctx context.Context, orderLineID int64, key, value string) error
}

// Renderer executes a named storefront template
type Renderer interface {
	Render(name string, data any) (string, error)
}

// Translator returns the localized string for a message key
type Translator interface {
	T(key string) string
}

// MoneyFormatter renders an amount in a currency for display
type MoneyFormatter func(amount decimal.Decimal, currency string) string

type passthroughTranslator struct{}

func (passthroughTranslator) T(key string) string { return key }

// Options wires the collaborators of an Addon
type Options struct {
	Config    models.GlobalConfig
	Meta      MetaReader
	Products  ProductLookup
	OrderMeta OrderItemMetaWriter
	Converter Converter
	Renderer  Renderer
	Translate Translator
	Format    MoneyFormatter

	// BaseCurrency is the shop currency costs are stored in; ActiveCurrency is what the
	// shopper sees. Both default to each other when one is empty.
	BaseCurrency   string
	ActiveCurrency string
}

// Addon is the request-scoped helium add-on handler set
type Addon struct {
	config         models.GlobalConfig
	meta           MetaReader
	products       ProductLookup
	orderMeta      OrderItemMetaWriter
	converter      Converter
	renderer       Renderer
	tr             Translator
	format         MoneyFormatter
	baseCurrency   string
	activeCurrency string
}

// New builds an Addon for one request
func New(opts Options) *Addon {
	a := &Addon{
		config:         opts.Config,
		meta:           opts.Meta,
		products:       opts.Products,
		orderMeta:      opts.OrderMeta,
		converter:      opts.Converter,
		renderer:       opts.Renderer,
		tr:             opts.Translate,
		format:         opts.Format,
		baseCurrency:   opts.BaseCurrency,
		activeCurrency: opts.ActiveCurrency,
	}
	if a.converter == nil {
		a.converter = IdentityConverter{}
	}
	if a.tr == nil {
		a.tr = passthroughTranslator{}
	}
	if a.format == nil {
		a.format = utils.FormatMoney
	}
	if a.baseCurrency == "" {
		a.baseCurrency = a.activeCurrency
	}
	if a.activeCurrency == "" {
		a.activeCurrency = a.baseCurrency
	}
	return a
}

// Config returns the global configuration this Addon was built with
func (a *Addon) Config() models.GlobalConfig {
	return a.config
}

// ActiveCurrency returns the currency shown to the shopper
func (a *Addon) ActiveCurrency() string {
	return a.activeCurrency
}

// ConvertPrice moves a shop-currency product price into the active currency
func (a *Addon) ConvertPrice(amount decimal.Decimal) decimal.Decimal {
	return a.convert(amount)
}

// convert moves a stored amount from the shop currency into the active currency
func (a *Addon) convert(amount decimal.Decimal) decimal.Decimal {
	return a.converter.Convert(amount, a.baseCurrency, a.activeCurrency)
}
