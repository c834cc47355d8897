// Package i18n resolves the shopper-facing strings of the helium addon.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"product-helium-addon/logx"
)

// Message keys
const (
	Free            = "free"
	HeliumAdded     = "Helium Added"
	Yes             = "Yes"
	DefaultMessage  = "Add helium for %s?"
	HeliumAddable   = "Helium addable"
	HeliumAddonCost = "Helium addon cost"
)

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var spanish = map[string]string{
	Free:                  "gratis",
	HeliumAdded:           "Helio agregado",
	Yes:                   "Sí",
	DefaultMessage:        "¿Agregar helio por %s?",
	HeliumAddable:         "Admite helio",
	HeliumAddonCost:       "Costo del helio",
	FieldEnabledName:      "¿Helio habilitado por defecto?",
	FieldEnabledDesc:      "Habilita esta opción para permitir agregar helio a los productos por defecto.",
	FieldCostName:         "Costo predeterminado del helio",
	FieldCostDesc:         "El costo del helio salvo que se sobrescriba por producto.",
	FieldMessageName:      "Mensaje del helio",
	FieldMessageDesc:      "Nota: <code>{price}</code> se reemplaza por el costo del helio.",
	FieldMessageTip:       "Texto que ve el cliente en la tienda.",
	HeliumAddableDesc:     "Activa esta opción si el cliente puede agregar helio.",
	HeliumAddonCostDesc:   "Sobrescribe el costo predeterminado ingresando un valor aquí.",
	HeliumAddonWeight:     "Peso del helio",
	HeliumAddonWeightDesc: "Sobrescribe el peso predeterminado ingresando un valor aquí.",
}

// Settings field labels
const (
	FieldEnabledName      = "Helium Adding Enabled by Default?"
	FieldEnabledDesc      = "Enable this to allow helium adding for products by default."
	FieldCostName         = "Default Helium Addon Cost"
	FieldCostDesc         = "The cost of helium addon unless overridden per-product."
	FieldMessageName      = "Helium Addon Message"
	FieldMessageDesc      = "Note: <code>{price}</code> will be replaced with the helium addon cost."
	FieldMessageTip       = "Label shown to the user on the frontend."
	HeliumAddableDesc     = "Enable this option if the customer can add helium."
	HeliumAddonCostDesc   = "Override the default cost by inputting a cost here."
	HeliumAddonWeight     = "Helium addon weight"
	HeliumAddonWeightDesc = "Override the default weight by inputting a weight here."
)

func init() {
	if err := register(message.SetString, language.Spanish, spanish); err != nil {
		logx.Error().Err(err).Msg("❌ i18n: error registering translations")
	}
}

// register adds every entry to the catalog through set and returns the joined failures
func register(set func(language.Tag, string, string) error, tag language.Tag, entries map[string]string) error {
	var errs []error
	for key, msg := range entries {
		if err := set(tag, key, msg); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", tag, key, err))
		}
	}
	return errors.Join(errs...)
}

// Translator looks up localized strings for one language
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the best supported match of the given BCP 47 tags or
// Accept-Language header value. Unknown or empty input falls back to English.
func New(preferred ...string) *Translator {
	var tags []language.Tag
	for _, p := range preferred {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	tag := language.English
	if len(tags) > 0 {
		_, idx, conf := matcher.Match(tags...)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return &Translator{tag: tag, printer: message.NewPrinter(tag)}
}

// Language returns the matched language tag
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the localized string for key
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Tf returns the localized format string for key applied to args
func (t *Translator) Tf(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
