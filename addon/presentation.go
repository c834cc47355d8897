package addon

import (
	"context"
	"fmt"
	"strings"

	"product-helium-addon/i18n"
	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/templates"
	"product-helium-addon/utils"
)

// RenderOptIn builds the product page opt-in control. It returns nil when the product
// is not helium-addable. requestFlag is the raw helium_add value of the current request,
// used to keep the box checked when the form is redisplayed.
func (a *Addon) RenderOptIn(ctx context.Context, productID int64, requestFlag string) (*models.OptInView, error) {
	res := a.Resolve(ctx, productID)
	if !res.Addable {
		return nil, nil
	}

	currentValue := 0
	if utils.AbsInt(requestFlag) != 0 {
		currentValue = 1
	}

	view := &models.OptInView{
		ProductID:    productID,
		Message:      a.config.PromptMessageTemplate,
		CurrentValue: currentValue,
		PriceText:    a.priceText(res),
	}
	view.Label = strings.ReplaceAll(view.Message, models.PricePlaceholder, view.PriceText)

	if a.renderer != nil {
		html, err := a.renderer.Render(templates.OptInTemplate, view)
		if err != nil {
			return nil, fmt.Errorf("failed to render helium option for product %d: %w", productID, err)
		}
		view.HTML = html
	}

	logx.Debug().Int64("product_id", productID).Str("price_text", view.PriceText).Int("current_value", currentValue).
		Msg("🎈 RenderOptIn: helium option shown")
	return view, nil
}

// priceText is the localized "free" label for a zero cost, otherwise the converted cost as money
func (a *Addon) priceText(res models.Resolution) string {
	if !res.Cost.IsPositive() {
		return a.tr.T(i18n.Free)
	}
	return a.format(a.convert(res.Cost), a.activeCurrency)
}
