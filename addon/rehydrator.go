package addon

import (
	"context"

	"product-helium-addon/logx"
	"product-helium-addon/models"
)

// Rehydrate restores the helium state of a cart line loaded from the session.
//
// The weight on this path is the underlying product price plus the resolved helium
// weight, unlike Decorate which pins FixedHeliumWeight. Both behaviours are kept as
// they are observed in production carts.
func (a *Addon) Rehydrate(ctx context.Context, line *models.CartLine, values models.SessionValues) *models.CartLine {
	if !values.HeliumAdd {
		return line
	}

	line.Helium = &models.HeliumAddon{Added: true}

	if line.Data == nil {
		logx.Warn().Str("line_key", line.Key).Msg("⚠️  Rehydrate: line has no pricing item, skipping")
		return line
	}

	lookupID := values.ProductID
	if values.VariationID != 0 {
		lookupID = values.VariationID
	}
	product, ok := a.underlyingProduct(ctx, lookupID, "Rehydrate")
	if !ok {
		return line
	}

	cost, weight := a.resolveAmounts(ctx, line.ProductID)

	price := a.convert(product.Price)
	line.Data.Price = price.Add(a.convert(cost))
	line.Data.Weight = price.Add(weight)

	logx.Debug().Int64("product_id", line.ProductID).Str("price", line.Data.Price.String()).
		Str("weight", line.Data.Weight.String()).Msg("🔄 Rehydrate: helium restored from session")
	return line
}
