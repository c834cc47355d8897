package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"product-helium-addon/models"
	"product-helium-addon/repository"
)

type memSettings struct {
	mu     sync.Mutex
	siteID int64
	sites  map[int64]map[string]string
}

func newMemSettings(values map[string]string) *memSettings {
	return &memSettings{siteID: 1, sites: map[int64]map[string]string{1: values}}
}

func (m *memSettings) values() map[string]string {
	if m.sites[m.siteID] == nil {
		m.sites[m.siteID] = map[string]string{}
	}
	return m.sites[m.siteID]
}

func (m *memSettings) GetOption(_ context.Context, name string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values()[name]
	return v, ok, nil
}

func (m *memSettings) AddOption(_ context.Context, name, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values()[name]; ok {
		return false, nil
	}
	m.values()[name] = value
	return true, nil
}

func (m *memSettings) SetOption(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values()[name] = value
	return nil
}

func (m *memSettings) DeleteOption(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values(), name)
	return nil
}

func (m *memSettings) ListSites(context.Context) ([]int64, error) {
	var ids []int64
	for id := range m.sites {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memSettings) ForSite(siteID int64) repository.SettingsRepositoryInterface {
	return &memSettings{siteID: siteID, sites: m.sites}
}

type memMeta map[int64]map[string]string

func (m memMeta) GetMeta(_ context.Context, productID int64, key string) (string, error) {
	return m[productID][key], nil
}

func (m memMeta) SetMeta(_ context.Context, productID int64, key, value string) error {
	if m[productID] == nil {
		m[productID] = map[string]string{}
	}
	m[productID][key] = value
	return nil
}

type memProducts map[int64]*models.Product

func (p memProducts) GetProduct(_ context.Context, id int64) (*models.Product, error) {
	if prod, ok := p[id]; ok {
		return prod, nil
	}
	return nil, fmt.Errorf("product %d: %w", id, repository.ErrProductNotFound)
}

type memOrders struct {
	nextLineID int64
	created    []*models.Order
	meta       map[int64][]models.OrderLineAnnotation
	createErr  error
	metaErr    error
}

func newMemOrders() *memOrders {
	return &memOrders{nextLineID: 100, meta: map[int64][]models.OrderLineAnnotation{}}
}

func (o *memOrders) Create(_ context.Context, order *models.Order) (*models.Order, error) {
	if o.createErr != nil {
		return nil, o.createErr
	}
	for i := range order.Lines {
		o.nextLineID++
		order.Lines[i].ID = o.nextLineID
		order.Lines[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	o.created = append(o.created, order)
	return order, nil
}

func (o *memOrders) AddOrderItemMeta(_ context.Context, orderLineID int64, key, value string) error {
	if o.metaErr != nil {
		return o.metaErr
	}
	o.meta[orderLineID] = append(o.meta[orderLineID], models.OrderLineAnnotation{Key: key, Value: value})
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultOptions() map[string]string {
	return map[string]string{
		models.OptionEnabled: "yes",
		models.OptionCost:    "2.00",
		models.OptionWeight:  "50",
		models.OptionMessage: "Add helium for {price}?",
	}
}

type fixture struct {
	mr       *miniredis.Miniredis
	settings *memSettings
	meta     memMeta
	products memProducts
	orders   *memOrders
	sessions *repository.CartSessionRepository
	factory  *AddonFactory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &fixture{
		mr:       mr,
		settings: newMemSettings(defaultOptions()),
		meta:     memMeta{},
		products: memProducts{
			80: {ID: 80, Name: "Balloon bouquet", Price: dec("12.50"), Weight: dec("120"), IsActive: true},
			20: {ID: 20, Name: "Balloon", Price: dec("10.00"), Weight: dec("40"), IsActive: true},
			21: {ID: 21, ParentID: 20, Name: "Balloon - red", Price: dec("15.00"), Weight: dec("40"), IsActive: true},
		},
		orders:   newMemOrders(),
		sessions: repository.NewCartSessionRepository(client, time.Hour),
	}
	f.factory = NewAddonFactory(AddonFactoryDeps{
		Settings:      f.settings,
		Meta:          f.meta,
		Products:      f.products,
		Orders:        f.orders,
		BaseCurrency:  "USD",
		DefaultLocale: "en",
	})
	return f
}

func (f *fixture) cartService() *CartService {
	return NewCartService(f.factory, f.sessions, f.products, f.orders)
}
