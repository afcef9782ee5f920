package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkblue/themeconf/internal/logging"
	"github.com/inkblue/themeconf/internal/server"
	"github.com/inkblue/themeconf/internal/themefile"
	"github.com/inkblue/themeconf/internal/watch"
)

var (
	serveAddr     string
	serveWatch    bool
	serveDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:7420)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload when a theme file changes")
	serveCmd.Flags().DurationVar(&serveDebounce, "debounce", 0, "quiet period before reloading (default from config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rendered theme over HTTP",
	Long: `Serve every rendered format of the theme:

  /tailwind.config.js  /theme.json  /theme.yaml  /theme.toml  /theme.css

plus /healthz and Prometheus /metrics. Responses carry an ETag so clients can
poll cheaply. With --watch, theme files are reloaded when they change; a
change that fails validation is logged and the last good theme stays live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		addr := serveAddr
		if addr == "" {
			addr = cfg.Serve.Addr
		}
		watching := serveWatch || cfg.Serve.Watch
		debounce := serveDebounce
		if debounce <= 0 {
			debounce = cfg.Serve.Debounce
		}

		resolved, err := loadTheme()
		if err != nil {
			return err
		}

		srv := server.New(logging.Component("server"), server.WithAddr(addr), server.WithVersion(version))
		if err := srv.Load(resolved.Config, resolved.Sources...); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		paths := watchPaths()
		if watching && len(paths) == 0 {
			logger := logging.Component("watch")
			logger.Warn().Msg("no theme directories exist; serving without reload")
			watching = false
		}
		if !watching {
			return srv.Run(ctx)
		}

		reload := func(context.Context) error {
			next, err := loadTheme()
			if err != nil {
				return err
			}
			return srv.Load(next.Config, next.Sources...)
		}
		w, err := watch.New(paths, debounce, reload, watch.WithLogger(logging.Component("watch")))
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		watchErr := make(chan error, 1)
		go func() {
			watchErr <- w.Run(ctx)
		}()

		serveErr := srv.Run(ctx)
		cancel()
		return errors.Join(serveErr, <-watchErr)
	},
}

// watchPaths lists every file whose creation or change can alter the
// resolved theme, limited to directories that exist.
func watchPaths() []string {
	if themeFile != "" {
		return []string{themeFile}
	}

	cfg := GetConfig()
	var candidates []string
	if !cfg.Theme.SkipSearchPaths {
		for _, dir := range themefile.SearchPaths(cfg.ProjectDir) {
			for _, name := range themefile.FileNames {
				candidates = append(candidates, filepath.Join(dir, name))
			}
		}
	}
	for _, file := range cfg.Theme.Files {
		candidates = append(candidates, projectPath(file))
	}

	paths := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if info, err := os.Stat(filepath.Dir(path)); err == nil && info.IsDir() {
			paths = append(paths, path)
		}
	}
	return paths
}
