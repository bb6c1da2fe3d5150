// Package preview parses badge preview flags and launches the server.
package preview

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/badgekit/internal/platform/cmd"
	"github.com/louisbranch/badgekit/internal/platform/theme"
	server "github.com/louisbranch/badgekit/internal/services/preview"
)

const defaultHTTPAddr = "localhost:8095"

// Config holds preview command configuration.
type Config struct {
	HTTPAddr  string `env:"BADGEKIT_PREVIEW_HTTP_ADDR" envDefault:"localhost:8095"`
	ThemeFile string `env:"BADGEKIT_PREVIEW_THEME_FILE"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", defaultHTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ThemeFile, "theme-file", "", "YAML or TOML theme overrides")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the badge preview server.
func Run(ctx context.Context, cfg Config) error {
	th, err := theme.LoadFile(cfg.ThemeFile)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	srv, err := server.NewServer(server.Config{HTTPAddr: cfg.HTTPAddr, Theme: th})
	if err != nil {
		return fmt.Errorf("init preview server: %w", err)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePreview, func(ctx context.Context) error {
		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve preview: %w", err)
		}
		return nil
	})
}
