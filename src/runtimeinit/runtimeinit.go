package runtimeinit

import (
	"fmt"
	"log"

	"chill-overlay/src/config"
	"chill-overlay/src/notification"
	"chill-overlay/src/tray"
)

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)
	// LoadIcon defaults to tray.LoadIcon.
	LoadIcon            func(path string) (tray.Icon, error)
	ShowBlockingFailure bool
}

// Resources is everything the overlay needs before the window exists.
type Resources struct {
	Config *config.Config
	Icon   tray.Icon
}

// Bootstrap loads configuration, sets up logging and loads the tray icon.
// A missing tray icon is fatal: without it the overlay cannot be controlled
// or quit.
func Bootstrap(opts Options) (*Resources, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}

	loadIcon := opts.LoadIcon
	if loadIcon == nil {
		loadIcon = tray.LoadIcon
	}
	icon, err := loadIcon(cfg.TrayIconPath)
	if err != nil {
		if opts.ShowBlockingFailure {
			notification.ShowBlockingError("Chill cannot start", fmt.Sprintf("Failed to load tray icon: %v", err))
		}
		return nil, fmt.Errorf("failed to load tray icon: %w", err)
	}
	log.Printf("Tray icon loaded (%dx%d)", icon.Width, icon.Height)

	return &Resources{Config: cfg, Icon: icon}, nil
}
