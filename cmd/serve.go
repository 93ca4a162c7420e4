package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kindling-dev/kindling/internal/config"
	"github.com/kindling-dev/kindling/internal/server"
	"github.com/kindling-dev/kindling/internal/watcher"
)

var serveWatch bool

// serveCmd starts the HTTP server described by the project descriptor.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serve starts the project's HTTP server with the routes and middleware
configured in project.yml.

Endpoints:
  GET /            Welcome message with project metadata
  GET /api/health  Health check

The listen address comes from server.host and server.port in the
descriptor; override with KINDLING_SERVER_PORT / KINDLING_SERVER_HOST
or the --port and --host flags.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 3000, "port to listen on")
	serveCmd.Flags().String("host", "localhost", "host interface to bind")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "log a reminder to restart when project.yml changes")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		w, werr := watcher.New(config.DescriptorFile, func(path string) {
			logger.Warn(ctx, nil, "Descriptor changed; restart the server to apply", "path", path)
		}, logger)
		if werr != nil {
			logger.Warn(ctx, werr, "Could not watch descriptor")
		} else {
			defer w.Close()
			go w.Start(ctx)
		}
	}

	fmt.Printf("🔥 %s listening on http://%s:%d\n", cfg.Name, cfg.Server.Host, cfg.Server.Port)
	return srv.Start(ctx)
}
