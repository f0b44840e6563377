/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristianoliveira/peekshell/internal/api"
	"github.com/cristianoliveira/peekshell/internal/colors"
	"github.com/cristianoliveira/peekshell/internal/config"
	perrors "github.com/cristianoliveira/peekshell/internal/errors"
	"github.com/cristianoliveira/peekshell/internal/logging"
	"github.com/cristianoliveira/peekshell/internal/settings"
	"github.com/cristianoliveira/peekshell/internal/state"
	"github.com/cristianoliveira/peekshell/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

const serveCommandLong = `Run the local HTTP bridge the shell front end talks to.

The bridge listens on a loopback address only. When a token is set every
request must carry "Authorization: Bearer <token>". Unless --no-watch is
given, settings.json is watched and external edits are logged.

USAGE:
    peekshell serve [OPTIONS]

OPTIONS:
    --addr=<host:port>    Listen address (default: api_addr)
    --token=<token>       Bearer token (default: api_token)
    --no-watch            Do not watch settings.json

EXAMPLES:
    peekshell serve
    PEEKSHELL_API_TOKEN=s3cret peekshell serve --addr=127.0.0.1:9000`

// NewServeCmd creates the serve command with explicit dependencies.
func NewServeCmd(client managerClient) *cobra.Command {
	if client == nil {
		panic("NewServeCmd: client dependency cannot be nil")
	}

	var (
		addr    string
		token   string
		noWatch bool
	)
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP bridge",
		Long:  serveCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = config.Get("api_addr", "127.0.0.1:7457")
			} else if !config.IsLoopbackAddr(addr) {
				return fmt.Errorf("%w: --addr %q must be a loopback host:port", perrors.ErrUsage, addr)
			}
			if !cmd.Flags().Changed("token") {
				token = config.Get("api_token", "")
			}
			m, err := client.Manager()
			if err != nil {
				return err
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			colors.DisableStructuredLogging()
			defer colors.EnableStructuredLogging()
			return serve(ctx, ln, m, serveOptions{
				Token:    token,
				Watch:    !noWatch,
				Debounce: configDuration("watch_debounce", watch.DefaultDebounce),
			})
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (loopback only)")
	serveCmd.Flags().StringVar(&token, "token", "", "Bearer token required on every request")
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not watch settings.json")
	return serveCmd
}

type serveOptions struct {
	Token    string
	Watch    bool
	Debounce time.Duration
}

// serve runs the bridge on ln, and optionally the settings watcher, until ctx
// is done or either fails. It always closes ln.
func serve(ctx context.Context, ln net.Listener, m *state.Manager, opts serveOptions) error {
	log := logging.GetGlobal().With("component", "serve")
	srv := &http.Server{
		Handler: api.NewHandler(api.Deps{
			State:  m,
			Token:  opts.Token,
			Logger: logging.GetGlobal(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		colors.Info(fmt.Sprintf("Bridge listening on http://%s", ln.Addr()))
		log.Info("bridge started", "addr", ln.Addr().String(), "auth", opts.Token != "")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("bridge: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("bridge stopping")
		return srv.Shutdown(shutdownCtx)
	})
	if opts.Watch {
		g.Go(func() error {
			w, err := watch.New(watch.Options{
				Path:     m.Paths().SettingsFile(),
				Load:     m.Settings,
				Debounce: opts.Debounce,
				Logger:   logging.GetGlobal(),
				OnChange: func(s *settings.Settings, err error) {
					if err != nil {
						colors.Warning(fmt.Sprintf("settings changed but cannot be read: %v", err))
						return
					}
					log.Info("settings changed on disk", "lang", s.Lang, "onTop", s.OnTop)
					colors.Debug("settings reloaded")
				},
			})
			if err != nil {
				return err
			}
			return w.Run(gctx, nil)
		})
	}
	return g.Wait()
}
