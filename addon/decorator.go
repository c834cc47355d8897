package addon

import (
	"context"

	"github.com/shopspring/decimal"

	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/utils"
)

// FixedHeliumWeight is the shipping weight set on a line decorated at add-to-cart time.
// The resolved per-product weight is not used on this path.
var FixedHeliumWeight = decimal.NewFromInt(500)

// AttachOnAdd flags new cart line metadata when the product is addable and the
// add-to-cart request carries a truthy helium_add value. Price and weight are untouched.
func (a *Addon) AttachOnAdd(ctx context.Context, data models.CartItemData, productID int64, requestFlag string) models.CartItemData {
	if !utils.IsTruthyFlag(requestFlag) {
		return data
	}
	if !a.isAddable(ctx, productID) {
		return data
	}

	data.Helium = &models.HeliumAddon{Added: true}
	logx.Debug().Int64("product_id", productID).Msg("🎈 AttachOnAdd: helium requested")
	return data
}

// Decorate applies the helium surcharge to a flagged cart line: the price becomes the
// converted underlying product price plus the converted cost and the weight becomes
// FixedHeliumWeight. The price is always rebuilt from the product, never from the line,
// so repeated calls do not compound. A line whose product cannot be loaded is returned
// unmodified.
func (a *Addon) Decorate(ctx context.Context, line *models.CartLine) *models.CartLine {
	if !line.HeliumAdded() {
		return line
	}
	if line.Data == nil {
		logx.Warn().Str("line_key", line.Key).Msg("⚠️  Decorate: line has no pricing item, skipping")
		return line
	}

	product, ok := a.underlyingProduct(ctx, line.LookupID(), "Decorate")
	if !ok {
		return line
	}

	cost, _ := a.resolveAmounts(ctx, line.ProductID)

	line.Data.Price = a.convert(product.Price).Add(a.convert(cost))
	line.Data.Weight = FixedHeliumWeight

	logx.Debug().Int64("product_id", line.ProductID).Str("price", line.Data.Price.String()).
		Str("weight", line.Data.Weight.String()).Msg("🎈 Decorate: helium applied")
	return line
}

func (a *Addon) underlyingProduct(ctx context.Context, id int64, op string) (*models.Product, bool) {
	if a.products == nil {
		logx.Warn().Int64("product_id", id).Msgf("⚠️  %s: no product lookup configured, skipping", op)
		return nil, false
	}
	product, err := a.products.GetProduct(ctx, id)
	if err != nil || product == nil {
		logx.Warn().Err(err).Int64("product_id", id).Msgf("⚠️  %s: product not resolvable, line left unmodified", op)
		return nil, false
	}
	return product, true
}
