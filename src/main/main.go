package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"chill-overlay/src/config"
	"chill-overlay/src/displays"
	"chill-overlay/src/eventloop"
	"chill-overlay/src/host"
	"chill-overlay/src/hotkey"
	"chill-overlay/src/logutil"
	"chill-overlay/src/placement"
	"chill-overlay/src/runtimeinit"
	"chill-overlay/src/screen"
	"chill-overlay/src/singleinstance"
	"chill-overlay/src/tray"
	"chill-overlay/src/window"
)

const windowTitle = "Chill"

type mainOptions struct {
	trayIcon    string
	frontendDir string
	hotkey      string
}

type displaysOptions struct {
	copy bool
}

func main() {
	if err := newRootCmd(&mainOptions{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts *mainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chill-overlay",
		Short:         "Desktop companion overlay with a tray menu",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlay(cmd.Context(), *opts)
		},
	}
	cmd.Flags().StringVar(&opts.trayIcon, "tray-icon", "", "Tray icon image (overrides TRAY_ICON_PATH)")
	cmd.Flags().StringVar(&opts.frontendDir, "frontend-dir", "", "Directory holding the overlay front-end (overrides FRONTEND_DIR)")
	cmd.Flags().StringVar(&opts.hotkey, "hotkey", "", "Global show/hide hotkey, e.g. Ctrl+Alt+S (overrides HOTKEY)")

	cmd.AddCommand(newDisplaysCmd(&displaysOptions{}))
	return cmd
}

func newDisplaysCmd(opts *displaysOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "displays",
		Short: "List active displays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displays.Print(cmd.OutOrStdout(), opts.copy)
		},
	}
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the report to the clipboard")
	return cmd
}

func runOverlay(parent context.Context, opts mainOptions) error {
	if parent == nil {
		parent = context.Background()
	}
	res, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions: config.LoadOptions{
			TrayIconOverride:    opts.trayIcon,
			FrontendDirOverride: opts.frontendDir,
			HotkeyOverride:      opts.hotkey,
		},
		SetupLogging:        logutil.Setup,
		ShowBlockingFailure: true,
	})
	if err != nil {
		return err
	}
	cfg := res.Config

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	srv, err := singleinstance.Listen(ctx)
	if errors.Is(err, singleinstance.ErrAlreadyRunning) {
		return handOffToResident(ctx)
	}
	if err != nil {
		return err
	}
	defer srv.Close()

	bridge := host.NewBridge(windowTitle)
	geometry := screen.NewService(bridge)
	win := window.NewController(bridge)

	var trayIcon *tray.Tray
	router := tray.NewRouter(tray.RouterConfig{
		Window:  win,
		Emitter: bridge,
		Exit: func(code int) {
			log.Printf("Quit requested from tray")
			if trayIcon != nil {
				trayIcon.Destroy()
			}
			os.Exit(code)
		},
	})
	loop := eventloop.New(router, func() { win.Reveal() })
	trayIcon = tray.New(tray.Config{
		Tooltip: cfg.Tooltip,
		Icon:    res.Icon,
		OnClick: loop.Post,
	})
	defer trayIcon.Destroy()

	if cfg.Hotkey != "" {
		stop, err := hotkey.Listen(cfg.Hotkey, loop.PostHotkey)
		if err != nil {
			log.Printf("Hotkey disabled: %v", err)
		} else {
			defer stop()
		}
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-ch:
			_ = bridge.Quit()
		case <-ctx.Done():
		}
	}()

	log.Printf("Starting overlay (frontend: %s, window %dx%d)", cfg.FrontendDir, cfg.WindowWidth, cfg.WindowHeight)

	return wails.Run(&options.App{
		Title:            windowTitle,
		Width:            cfg.WindowWidth,
		Height:           cfg.WindowHeight,
		Frameless:        true,
		AlwaysOnTop:      true,
		DisableResize:    true,
		StartHidden:      true,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0},
		AssetServer: &assetserver.Options{
			Handler: http.FileServer(http.Dir(cfg.FrontendDir)),
		},
		OnStartup: func(wctx context.Context) {
			bridge.Startup(wctx)
			pos := placement.ApplyStartup(geometry, win)
			log.Printf("Initial placement: (%v, %v)", pos.X, pos.Y)
			win.Reveal()
			trayIcon.Start()
			go func() {
				if err := loop.Run(ctx, srv.Activations()); err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("event loop stopped: %v", err)
				}
			}()
		},
		OnShutdown: func(wctx context.Context) {
			cancel()
			bridge.Shutdown(wctx)
		},
		Bind: []interface{}{
			host.NewCommands(geometry, win),
		},
		Windows: &windows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			DisableWindowIcon:    true,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: true,
		},
	})
}

// handOffToResident asks the running overlay to show itself.
func handOffToResident(ctx context.Context) error {
	actx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	found, err := singleinstance.Activate(actx)
	if err != nil {
		return fmt.Errorf("resident did not respond: %w", err)
	}
	if !found {
		start, _ := singleinstance.PortRange()
		return fmt.Errorf("port %d is busy but no overlay answered", start)
	}
	log.Printf("Overlay already running; asked it to show")
	return nil
}
