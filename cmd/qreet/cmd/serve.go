package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/qreet/internal/render"
	"github.com/rezonia/qreet/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for receipt lottery codes.

The API provides endpoints for:
  - POST /api/v1/encode     - Encode a receipt
  - POST /api/v1/decode     - Decode a code
  - GET  /api/v1/qr/:code   - QR symbol of a code as PNG (?size=)
  - GET  /health            - Health check

Flags override QREET_HTTP_* settings.

Examples:
  # Start server on default port
  qreet serve

  # Start on custom port in debug mode
  qreet serve --address :9090 --debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default: http.address)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout (default: http.read_timeout)")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout (default: http.write_timeout)")
}

func runServe(cmd *cobra.Command, args []string) error {
	level, err := render.ParseLevel(cfg.QR.Level)
	if err != nil {
		return err
	}

	config := &server.Config{
		Address:      firstNonEmpty(serverAddr, cfg.HTTP.Address),
		ReadTimeout:  firstPositive(readTimeout, cfg.HTTP.ReadTimeout),
		WriteTimeout: firstPositive(writeTimeout, cfg.HTTP.WriteTimeout),
		Debug:        serverDebug,
		QRSize:       cfg.QR.Size,
		QRLevel:      level,
		Location:     time.Local,
		Logger:       log,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstPositive(a, b time.Duration) time.Duration {
	if a > 0 {
		return a
	}
	return b
}
