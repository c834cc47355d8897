// Package lifecycle installs and removes the helium addon options.
package lifecycle

import (
	"context"
	"fmt"

	"product-helium-addon/i18n"
	"product-helium-addon/logx"
	"product-helium-addon/models"
	"product-helium-addon/repository"
)

// removedOnUninstall lists the options deleted on uninstall. The weight option stays.
var removedOnUninstall = []string{
	models.OptionEnabled,
	models.OptionCost,
	models.OptionMessage,
}

// Install adds the addon options with their defaults. Existing values are kept.
func Install(ctx context.Context, settings repository.SettingsRepositoryInterface, tr *i18n.Translator) error {
	if tr == nil {
		tr = i18n.New()
	}
	defaults := []struct{ name, value string }{
		{models.OptionEnabled, ""},
		{models.OptionCost, "0"},
		{models.OptionWeight, "0"},
		{models.OptionMessage, tr.Tf(i18n.DefaultMessage, models.PricePlaceholder)},
	}

	for _, d := range defaults {
		added, err := settings.AddOption(ctx, d.name, d.value)
		if err != nil {
			return fmt.Errorf("failed to install option %s: %w", d.name, err)
		}
		if !added {
			logx.Info().Str("option", d.name).Msg("ℹ️  Install: option already present, kept")
		}
	}

	logx.Info().Msg("✅ Install: helium addon options installed")
	return nil
}

// Uninstall deletes the addon options of the current site and then of every registered site
func Uninstall(ctx context.Context, settings repository.SettingsRepositoryInterface) error {
	if err := deleteOptions(ctx, settings); err != nil {
		return err
	}

	sites, err := settings.ListSites(ctx)
	if err != nil {
		return err
	}
	for _, siteID := range sites {
		if err := deleteOptions(ctx, settings.ForSite(siteID)); err != nil {
			return fmt.Errorf("site %d: %w", siteID, err)
		}
		logx.Debug().Int64("site_id", siteID).Msg("🧹 Uninstall: site cleaned")
	}

	logx.Info().Int("sites", len(sites)).Msg("✅ Uninstall: helium addon options removed")
	return nil
}

func deleteOptions(ctx context.Context, settings repository.SettingsRepositoryInterface) error {
	for _, name := range removedOnUninstall {
		if err := settings.DeleteOption(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
