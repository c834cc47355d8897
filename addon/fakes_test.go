package addon

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"product-helium-addon/models"
)

type fakeMeta struct {
	values map[int64]map[string]string
	err    error
	reads  int
}

func newFakeMeta() *fakeMeta {
	return &fakeMeta{values: map[int64]map[string]string{}}
}

func (m *fakeMeta) GetMeta(_ context.Context, productID int64, key string) (string, error) {
	m.reads++
	if m.err != nil {
		return "", m.err
	}
	return m.values[productID][key], nil
}

func (m *fakeMeta) SetMeta(_ context.Context, productID int64, key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.values[productID] == nil {
		m.values[productID] = map[string]string{}
	}
	m.values[productID][key] = value
	return nil
}

var errNoProduct = errors.New("product not found")

type fakeProducts map[int64]*models.Product

func (p fakeProducts) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	if prod, ok := p[id]; ok {
		return prod, nil
	}
	return nil, errNoProduct
}

type fakeOrderMeta struct {
	rows []string
	err  error
}

func (o *fakeOrderMeta) AddOrderItemMeta(_ context.Context, orderLineID int64, key, value string) error {
	if o.err != nil {
		return o.err
	}
	o.rows = append(o.rows, fmt.Sprintf("%d|%s|%s", orderLineID, key, value))
	return nil
}

type fakeOptions struct {
	values map[string]string
	err    error
}

func (o *fakeOptions) GetOption(_ context.Context, name string) (string, bool, error) {
	if o.err != nil {
		return "", false, o.err
	}
	v, ok := o.values[name]
	return v, ok, nil
}

func (o *fakeOptions) SetOption(_ context.Context, name, value string) error {
	if o.err != nil {
		return o.err
	}
	o.values[name] = value
	return nil
}

type recordingRenderer struct {
	name string
	data any
	err  error
}

func (r *recordingRenderer) Render(name string, data any) (string, error) {
	r.name, r.data = name, data
	if r.err != nil {
		return "", r.err
	}
	return "<p>helium</p>", nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultConfig() models.GlobalConfig {
	return models.GlobalConfig{
		EnabledByDefault:      true,
		DefaultCost:           dec("2.00"),
		DefaultWeight:         dec("50"),
		PromptMessageTemplate: "Add helium for {price}?",
	}
}

func newTestAddon(cfg models.GlobalConfig, meta *fakeMeta, products fakeProducts) *Addon {
	return New(Options{
		Config:       cfg,
		Meta:         meta,
		Products:     products,
		BaseCurrency: "USD",
	})
}

func newLine(productID int64, price string) *models.CartLine {
	return &models.CartLine{
		Key:       fmt.Sprintf("line-%d", productID),
		ProductID: productID,
		Quantity:  1,
		Data:      &models.CartItem{ProductID: productID, Price: dec(price), Weight: dec("120")},
	}
}
