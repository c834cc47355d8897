package addon

import (
	"context"

	"github.com/shopspring/decimal"

	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/utils"
)

// Resolve computes the effective addon configuration for a product.
// Every call re-reads product meta; a per-product value wins over the global default
// only when it is set and non-empty.
func (a *Addon) Resolve(ctx context.Context, productID int64) models.Resolution {
	pc := a.ProductConfig(ctx, productID)

	addable := a.config.EnabledByDefault
	switch pc.IsAddable {
	case models.AddableYes:
		addable = true
	case models.AddableNo:
		addable = false
	}

	cost, weight := a.amounts(productID, pc)
	return models.Resolution{Addable: addable, Cost: cost, Weight: weight}
}

// ProductConfig reads the raw per-product overrides. Read failures count as unset.
func (a *Addon) ProductConfig(ctx context.Context, productID int64) models.ProductAddonConfig {
	return models.ProductAddonConfig{
		ProductID:      productID,
		IsAddable:      models.ParseAddable(a.readMeta(ctx, productID, models.MetaIsAddable)),
		CostOverride:   a.readMeta(ctx, productID, models.MetaCost),
		WeightOverride: a.readMeta(ctx, productID, models.MetaWeight),
	}
}

// isAddable resolves only the opt-in switch
func (a *Addon) isAddable(ctx context.Context, productID int64) bool {
	switch models.ParseAddable(a.readMeta(ctx, productID, models.MetaIsAddable)) {
	case models.AddableYes:
		return true
	case models.AddableNo:
		return false
	default:
		return a.config.EnabledByDefault
	}
}

// resolveAmounts resolves cost and weight without touching the opt-in switch
func (a *Addon) resolveAmounts(ctx context.Context, productID int64) (decimal.Decimal, decimal.Decimal) {
	return a.amounts(productID, models.ProductAddonConfig{
		ProductID:      productID,
		CostOverride:   a.readMeta(ctx, productID, models.MetaCost),
		WeightOverride: a.readMeta(ctx, productID, models.MetaWeight),
	})
}

func (a *Addon) amounts(productID int64, pc models.ProductAddonConfig) (decimal.Decimal, decimal.Decimal) {
	return override(productID, models.MetaCost, pc.CostOverride, a.config.DefaultCost),
		override(productID, models.MetaWeight, pc.WeightOverride, a.config.DefaultWeight)
}

func override(productID int64, key, raw string, def decimal.Decimal) decimal.Decimal {
	if raw == "" {
		return def
	}
	d, ok := utils.ParseDecimal(raw)
	if !ok {
		logx.Warn().Int64("product_id", productID).Str("key", key).Str("value", raw).
			Msg("⚠️  Resolve: malformed override, using global default")
		return def
	}
	return d
}

func (a *Addon) readMeta(ctx context.Context, productID int64, key string) string {
	if a.meta == nil {
		return ""
	}
	v, err := a.meta.GetMeta(ctx, productID, key)
	if err != nil {
		logx.Warn().Err(err).Int64("product_id", productID).Str("key", key).
			Msg("⚠️  Resolve: product meta read failed, treating as unset")
		return ""
	}
	return v
}
