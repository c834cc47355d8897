package addon

import (
	"context"
	"fmt"
	"net/url"

	"product-helium-addon/i18n"
	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/utils"
)

// OptionReader reads one global option. ok is false when the option does not exist.
type OptionReader interface {
	GetOption(ctx context.Context, name string) (value string, ok bool, err error)
}

// OptionStore reads and writes global options
type OptionStore interface {
	OptionReader
	SetOption(ctx context.Context, name, value string) error
}

// LoadGlobalConfig reads the four addon options. A failed or missing read leaves the
// corresponding value at its zero default.
func LoadGlobalConfig(ctx context.Context, options OptionReader) models.GlobalConfig {
	get := func(name string) string {
		v, _, err := options.GetOption(ctx, name)
		if err != nil {
			logx.Warn().Err(err).Str("option", name).Msg("⚠️  LoadGlobalConfig: option read failed, using default")
			return ""
		}
		return v
	}

	return models.GlobalConfig{
		EnabledByDefault:      utils.IsEnabledOption(get(models.OptionEnabled)),
		DefaultCost:           utils.DecimalOrZero(get(models.OptionCost)),
		DefaultWeight:         utils.DecimalOrZero(get(models.OptionWeight)),
		PromptMessageTemplate: get(models.OptionMessage),
	}
}

// SettingsFields returns the ordered admin settings fields, without values
func SettingsFields(tr Translator) []models.SettingsField {
	if tr == nil {
		tr = passthroughTranslator{}
	}
	return []models.SettingsField{
		{
			ID:   models.OptionEnabled,
			Name: tr.T(i18n.FieldEnabledName),
			Desc: tr.T(i18n.FieldEnabledDesc),
			Type: models.FieldTypeCheckbox,
		},
		{
			ID:      models.OptionCost,
			Name:    tr.T(i18n.FieldCostName),
			Desc:    tr.T(i18n.FieldCostDesc),
			Type:    models.FieldTypeText,
			DescTip: tr.T(i18n.FieldCostDesc),
		},
		{
			ID:      models.OptionMessage,
			Name:    tr.T(i18n.FieldMessageName),
			Desc:    tr.T(i18n.FieldMessageDesc),
			Type:    models.FieldTypeText,
			DescTip: tr.T(i18n.FieldMessageTip),
		},
	}
}

// AdminSettings is the settings screen for the global options
type AdminSettings struct {
	options OptionStore
	tr      Translator
}

// NewAdminSettings creates an AdminSettings over an option store
func NewAdminSettings(options OptionStore, tr Translator) *AdminSettings {
	if tr == nil {
		tr = passthroughTranslator{}
	}
	return &AdminSettings{options: options, tr: tr}
}

// Fields returns the settings fields with their stored values
func (s *AdminSettings) Fields(ctx context.Context) ([]models.SettingsField, error) {
	fields := SettingsFields(s.tr)
	for i := range fields {
		v, _, err := s.options.GetOption(ctx, fields[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to read option %s: %w", fields[i].ID, err)
		}
		fields[i].Value = v
	}
	return fields, nil
}

// Save persists each settings field from a submitted form.
// Checkboxes store "yes"/"no"; the cost is normalized to a decimal string.
func (s *AdminSettings) Save(ctx context.Context, form url.Values) error {
	for _, f := range SettingsFields(s.tr) {
		value := sanitizeField(f, form.Get(f.ID))
		if err := s.options.SetOption(ctx, f.ID, value); err != nil {
			return fmt.Errorf("failed to save option %s: %w", f.ID, err)
		}
	}
	logx.Info().Msg("✅ SaveSettings: helium addon settings saved")
	return nil
}

func sanitizeField(f models.SettingsField, raw string) string {
	switch {
	case f.Type == models.FieldTypeCheckbox:
		if utils.IsTruthyFlag(raw) {
			return "yes"
		}
		return "no"
	case f.ID == models.OptionCost:
		return utils.SanitizeDecimal(raw)
	default:
		return utils.CleanText(raw)
	}
}

// ProductPanel returns the helium section of the product edit screen
func (a *Addon) ProductPanel(ctx context.Context, productID int64) models.ProductPanel {
	pc := a.ProductConfig(ctx, productID)

	isAddable := pc.IsAddable.String()
	if pc.IsAddable == models.AddableUnset {
		isAddable = "no"
		if a.config.EnabledByDefault {
			isAddable = "yes"
		}
	}

	return models.ProductPanel{
		ProductID:         productID,
		IsAddable:         isAddable,
		Cost:              pc.CostOverride,
		CostPlaceholder:   a.config.DefaultCost.String(),
		Weight:            pc.WeightOverride,
		WeightPlaceholder: a.config.DefaultWeight.String(),
	}
}

// SaveProductPanel stores the product overrides submitted from the product edit screen
func (a *Addon) SaveProductPanel(ctx context.Context, w MetaWriter, productID int64, form url.Values) error {
	isAddable := models.AddableNo
	if utils.IsTruthyFlag(form.Get(models.MetaIsAddable)) {
		isAddable = models.AddableYes
	}

	values := []struct{ key, value string }{
		{models.MetaIsAddable, isAddable.String()},
		{models.MetaCost, utils.SanitizeDecimal(form.Get(models.MetaCost))},
		{models.MetaWeight, utils.SanitizeDecimal(form.Get(models.MetaWeight))},
	}
	for _, v := range values {
		if err := w.SetMeta(ctx, productID, v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s for product %d: %w", v.key, productID, err)
		}
	}

	logx.Info().Int64("product_id", productID).Str("is_addable", isAddable.String()).
		Msg("✅ SaveProductPanel: helium overrides saved")
	return nil
}
