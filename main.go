package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/menu-stack/internal/app"
	"github.com/atomicstack/menu-stack/internal/config"
	"github.com/atomicstack/menu-stack/internal/logging"
	"github.com/atomicstack/menu-stack/internal/logging/events"
	"golang.org/x/term"
)

const builtInCatalog = "(built-in)"

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, probeTerminal(os.Stdout.Fd())))
	}

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminalInfo describes the descriptor the popup is drawn on.
type terminalInfo struct {
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func probeTerminal(fd uintptr) terminalInfo {
	if !term.IsTerminal(int(fd)) {
		return terminalInfo{}
	}
	info := terminalInfo{IsTerminal: true}
	width, height, err := term.GetSize(int(fd))
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}

// startupTracePayload records which menus the run starts from and how panels
// will be animated and persisted.
func startupTracePayload(cfg config.Config, tty terminalInfo) map[string]interface{} {
	catalog := cfg.App.CatalogPath
	if catalog == "" {
		catalog = builtInCatalog
	}
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   cfg.Flags,
		"catalog": catalog,
		"root":    cfg.App.RootMenu,
		"animate": cfg.App.Animate,
		"fps":     cfg.App.FPS,
		"size":    [2]int{cfg.App.Width, cfg.App.Height},
		"footer":  cfg.App.ShowFooter,
		"tty":     tty,
	}
	if cfg.App.SessionPath != "" {
		payload["session"] = map[string]interface{}{
			"path":    cfg.App.SessionPath,
			"restore": cfg.App.Restore,
		}
	}
	if cfg.App.WatchInterval > 0 {
		payload["watch"] = cfg.App.WatchInterval.String()
	}
	return payload
}
