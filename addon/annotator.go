package addon

import (
	"context"
	"fmt"

	"product-helium-addon/i18n"
	"product-helium-addon/logx"
	"product-helium-addon/models"
)

// ItemData appends the "Helium Added: Yes" display pair for a flagged line
func (a *Addon) ItemData(existing []models.ItemDatum, line *models.CartLine) []models.ItemDatum {
	if !line.HeliumAdded() {
		return existing
	}
	yes := a.tr.T(i18n.Yes)
	return append(existing, models.ItemDatum{
		Name:    a.tr.T(i18n.HeliumAdded),
		Value:   yes,
		Display: yes,
	})
}

// Annotate writes the helium annotation onto a finalized order line.
// It returns nil, nil for lines without helium.
func (a *Addon) Annotate(ctx context.Context, orderLineID int64, line *models.CartLine) (*models.OrderLineAnnotation, error) {
	if !line.HeliumAdded() {
		return nil, nil
	}
	if a.orderMeta == nil {
		return nil, fmt.Errorf("no order item meta writer configured")
	}

	ann := models.OrderLineAnnotation{Key: a.tr.T(i18n.HeliumAdded), Value: a.tr.T(i18n.Yes)}
	if err := a.orderMeta.AddOrderItemMeta(ctx, orderLineID, ann.Key, ann.Value); err != nil {
		return nil, fmt.Errorf("failed to annotate order line %d: %w", orderLineID, err)
	}

	logx.Info().Int64("order_line_id", orderLineID).Int64("product_id", line.ProductID).
		Msg("✅ Annotate: helium recorded on order line")
	return &ann, nil
}
