package addon

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-helium-addon/models"
)

func TestRehydrateWithoutFlagReturnsLineUnchanged(t *testing.T) {
	products := fakeProducts{30: {ID: 30, Price: dec("8.00")}}
	a := newTestAddon(defaultConfig(), newFakeMeta(), products)

	line := newLine(30, "8.00")
	before, err := json.Marshal(line)
	require.NoError(t, err)

	got := a.Rehydrate(context.Background(), line, models.SessionValues{ProductID: 30, HeliumAdd: false})

	after, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
	assert.Same(t, line, got)
}

func TestRehydrateRestoresFlagPriceAndWeight(t *testing.T) {
	products := fakeProducts{30: {ID: 30, Price: dec("8.00")}}
	a := newTestAddon(defaultConfig(), newFakeMeta(), products)

	line := newLine(30, "8.00")
	a.Rehydrate(context.Background(), line, models.SessionValues{ProductID: 30, HeliumAdd: true})

	assert.True(t, line.HeliumAdded())
	assert.True(t, line.Data.Price.Equal(dec("10.00")), line.Data.Price.String())
	// weight on the session path is product price + resolved weight
	assert.True(t, line.Data.Weight.Equal(dec("58.00")), line.Data.Weight.String())
}

func TestRehydratePrefersVariation(t *testing.T) {
	products := fakeProducts{
		30: {ID: 30, Price: dec("8.00")},
		31: {ID: 31, ParentID: 30, Price: dec("9.00")},
	}
	meta := newFakeMeta()
	meta.values[30] = map[string]string{models.MetaWeight: "75"}
	a := newTestAddon(defaultConfig(), meta, products)

	line := newLine(30, "9.00")
	line.VariationID = 31
	a.Rehydrate(context.Background(), line, models.SessionValues{ProductID: 30, VariationID: 31, HeliumAdd: true})

	assert.True(t, line.Data.Price.Equal(dec("11.00")))
	assert.True(t, line.Data.Weight.Equal(dec("84.00")))
}

func TestRehydrateIsIdempotent(t *testing.T) {
	products := fakeProducts{30: {ID: 30, Price: dec("8.00")}}
	a := newTestAddon(defaultConfig(), newFakeMeta(), products)
	values := models.SessionValues{ProductID: 30, HeliumAdd: true}

	line := newLine(30, "8.00")
	a.Rehydrate(context.Background(), line, values)
	first := *line.Data
	a.Rehydrate(context.Background(), line, values)

	assert.True(t, first.Price.Equal(line.Data.Price))
	assert.True(t, first.Weight.Equal(line.Data.Weight))
}

func TestRehydrateMissingProductKeepsFlagOnly(t *testing.T) {
	a := newTestAddon(defaultConfig(), newFakeMeta(), fakeProducts{})

	line := newLine(404, "8.00")
	a.Rehydrate(context.Background(), line, models.SessionValues{ProductID: 404, HeliumAdd: true})

	assert.True(t, line.HeliumAdded())
	assert.True(t, line.Data.Price.Equal(dec("8.00")))
	assert.True(t, line.Data.Weight.Equal(dec("120")))
}

// The add-to-cart path pins the weight to 500 while the session path uses
// price + resolved weight. This test documents that both are kept on purpose.
func TestDecorateAndRehydrateDisagreeOnWeight(t *testing.T) {
	products := fakeProducts{40: {ID: 40, Price: dec("10.00")}}
	a := newTestAddon(defaultConfig(), newFakeMeta(), products)
	ctx := context.Background()

	added := newLine(40, "10.00")
	added.Helium = &models.HeliumAddon{Added: true}
	a.Decorate(ctx, added)

	reloaded := newLine(40, "10.00")
	a.Rehydrate(ctx, reloaded, models.SessionValues{ProductID: 40, HeliumAdd: true})

	assert.True(t, added.Data.Price.Equal(reloaded.Data.Price))
	assert.True(t, added.Data.Weight.Equal(dec("500")))
	assert.True(t, reloaded.Data.Weight.Equal(dec("60.00")))
	assert.False(t, added.Data.Weight.Equal(reloaded.Data.Weight))
}

func TestRehydrateConvertsProductPriceAndCost(t *testing.T) {
	rates, err := ParseRates("USD", "EUR:0.5")
	require.NoError(t, err)
	products := fakeProducts{80: {ID: 80, Price: dec("12.50")}}
	a := New(Options{
		Config:         defaultConfig(),
		Meta:           newFakeMeta(),
		Products:       products,
		Converter:      rates,
		BaseCurrency:   "USD",
		ActiveCurrency: "EUR",
	})

	line := newLine(80, "6.25")
	a.Rehydrate(context.Background(), line, models.SessionValues{ProductID: 80, HeliumAdd: true})

	assert.True(t, line.Data.Price.Equal(dec("7.25")), line.Data.Price.String())
	assert.True(t, line.Data.Weight.Equal(dec("56.25")), line.Data.Weight.String())
}
