package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexiusacademia/goroark/internal/api"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	serveAddr  string
	serveRate  float64
	serveBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the beam solver over HTTP",
	Long: `Start an HTTP server with the JSON API:

  POST /api/analyze     beam case -> end values, extremes, sections
  POST /api/boundary    one load  -> A-end conditions and B-end values
  POST /api/report      beam case -> PDF calculation sheet
  GET  /api/restraints  valid restraint codes

The listen address comes from --addr, else GOROARK_ADDR (a .env file in the
working directory is read if present), else :8080.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default $GOROARK_ADDR or :8080)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 5, "Requests per second allowed per client")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 10, "Request burst allowed per client")
}

func runServe(cmd *cobra.Command, args []string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}
	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("GOROARK_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	limiter := api.NewIPRateLimiter(rate.Limit(serveRate), serveBurst)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
		return
	case <-ctx.Done():
	}
	log.Println("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error stopping server: %v", err)
	}
}
