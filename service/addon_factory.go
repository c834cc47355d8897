package service

import (
	"context"
	"strings"

	"product-helium-addon/addon"
	"product-helium-addon/i18n"
	"product-helium-addon/repository"
)

// AddonFactory builds a request-scoped addon.Addon. The global options are read on every
// request so a settings change applies to the next request without a restart.
type AddonFactory struct {
	settings      repository.SettingsRepositoryInterface
	meta          repository.ProductMetaRepositoryInterface
	products      repository.ProductRepositoryInterface
	orders        repository.OrderRepositoryInterface
	converter     addon.Converter
	renderer      addon.Renderer
	baseCurrency  string
	defaultLocale string
}

// AddonFactoryDeps groups the collaborators of an AddonFactory
type AddonFactoryDeps struct {
	Settings      repository.SettingsRepositoryInterface
	Meta          repository.ProductMetaRepositoryInterface
	Products      repository.ProductRepositoryInterface
	Orders        repository.OrderRepositoryInterface
	Converter     addon.Converter
	Renderer      addon.Renderer
	BaseCurrency  string
	DefaultLocale string
}

// NewAddonFactory creates a new AddonFactory
func NewAddonFactory(deps AddonFactoryDeps) *AddonFactory {
	return &AddonFactory{
		settings:      deps.Settings,
		meta:          deps.Meta,
		products:      deps.Products,
		orders:        deps.Orders,
		converter:     deps.Converter,
		renderer:      deps.Renderer,
		baseCurrency:  strings.ToUpper(deps.BaseCurrency),
		defaultLocale: deps.DefaultLocale,
	}
}

// ForRequest loads the global configuration and returns an Addon for one request.
// currency is the shopper's active currency and lang an Accept-Language value; either
// may be empty.
func (f *AddonFactory) ForRequest(ctx context.Context, currency, lang string) *addon.Addon {
	return addon.New(addon.Options{
		Config:         addon.LoadGlobalConfig(ctx, f.settings),
		Meta:           f.meta,
		Products:       f.products,
		OrderMeta:      f.orders,
		Converter:      f.converter,
		Renderer:       f.renderer,
		Translate:      f.Translator(lang),
		BaseCurrency:   f.baseCurrency,
		ActiveCurrency: strings.ToUpper(strings.TrimSpace(currency)),
	})
}

// Translator returns the translator for lang, falling back to the shop locale
func (f *AddonFactory) Translator(lang string) *i18n.Translator {
	return i18n.New(lang, f.defaultLocale)
}
