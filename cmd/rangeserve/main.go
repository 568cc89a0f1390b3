package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/logview/rangeserve/internal/config"
	"github.com/logview/rangeserve/internal/server"
)

func main() {
	cfg := config.Config{}

	rootCmd := &cobra.Command{
		Use:   "rangeserve",
		Short: "rangeserve is a local development file server with HTTP Range support",
		Long: `rangeserve serves static files from a directory over HTTP. It answers
byte-range requests ("Range: bytes=<start>-<end>") with 206 Partial Content so
browsers can view large files such as logs without downloading them in full,
and adds permissive CORS headers to every response.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}

	fs := rootCmd.PersistentFlags()
	fs.IntVarP(&cfg.Port, "port", "p", config.DefaultPort, "port to listen on")
	fs.StringVarP(&cfg.Root, "dir", "d", config.DefaultRoot, "directory to serve files from")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func serve(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hint := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("Serving %s at %s\n", cfg.Root, hint(fmt.Sprintf("http://localhost:%d", cfg.Port)))
	fmt.Println("Press Ctrl+C to stop the server")

	if err := server.New(cfg).Run(ctx); err != nil {
		return err
	}
	fmt.Println("Server stopped.")
	return nil
}
