package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/menu-stack/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalog    = "MENU_STACK_CATALOG"
	envRoot       = "MENU_STACK_ROOT"
	envWidth      = "MENU_STACK_WIDTH"
	envHeight     = "MENU_STACK_HEIGHT"
	envShowFooter = "MENU_STACK_FOOTER"
	envAnimate    = "MENU_STACK_ANIMATE"
	envFPS        = "MENU_STACK_FPS"
	envSession    = "MENU_STACK_SESSION"
	envRestore    = "MENU_STACK_RESTORE"
	envWatch      = "MENU_STACK_WATCH"
	envTrace      = "MENU_STACK_TRACE"
	envLogFile    = "MENU_STACK_LOG_FILE"

	maxFPS = 240
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menu-stack", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalog := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML or TOML menu catalog (built-in menus when empty)")
	root := fs.String("root", envOrDefault(env, envRoot, ""), "menu kind to open first (catalog root when empty)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row")
	animate := fs.Bool("animate", envOrBool(env, envAnimate, true), "animate panels opening and closing")
	fps := fs.Int("fps", envOrInt(env, envFPS, 60), "animation frame rate")
	sessionPath := fs.String("session", envOrDefault(env, envSession, ""), "file the navigation history is saved to on exit")
	restore := fs.Bool("restore", envOrBool(env, envRestore, false), "reopen the menus saved in the session file")
	watch := fs.Duration("watch", envOrDuration(env, envWatch, 0), "poll the catalog file for changes at this interval (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:   *catalog,
			RootMenu:      strings.TrimSpace(*root),
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			Animate:       *animate,
			FPS:           *fps,
			SessionPath:   *sessionPath,
			Restore:       *restore,
			WatchInterval: *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog": *catalog,
			"root":    *root,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"animate": strconv.FormatBool(*animate),
			"fps":     strconv.Itoa(*fps),
			"session": *sessionPath,
			"restore": strconv.FormatBool(*restore),
			"watch":   watch.String(),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option combinations that cannot work together.
func Validate(cfg Config) error {
	if cfg.App.FPS <= 0 || cfg.App.FPS > maxFPS {
		return fmt.Errorf("fps must be between 1 and %d (got %d)", maxFPS, cfg.App.FPS)
	}
	if cfg.App.WatchInterval < 0 {
		return fmt.Errorf("watch interval must be >= 0 (got %s)", cfg.App.WatchInterval)
	}
	if cfg.App.WatchInterval > 0 && cfg.App.CatalogPath == "" {
		return fmt.Errorf("watch requires a catalog file")
	}
	if cfg.App.Restore && cfg.App.SessionPath == "" {
		return fmt.Errorf("restore requires a session file")
	}
	return nil
}
