package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/deixis/foreman/internal/config"
	foremanmcp "github.com/deixis/foreman/internal/mcp"
	"github.com/deixis/foreman/internal/runner"
)

var (
	serveHTTPAddr     string
	serveInstructions bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the MCP server on stdio, or on HTTP with --http.

The workspace root is taken from the client's MCP roots when the client
provides them, otherwise from --workspace or the current directory.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "",
		"serve HTTP on this address (e.g. :9090) instead of stdio")
	serveCmd.Flags().BoolVar(&serveInstructions, "instructions", false,
		"print model instructions and exit")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveInstructions {
		fmt.Print(foremanmcp.Instructions)
		return nil
	}

	ws, err := workspace()
	if err != nil {
		return fmt.Errorf("determining workspace: %w", err)
	}
	loaded, err := config.Load(ws)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := loaded.Config

	r := &runner.Runner{
		Workspace: loaded.RepoRoot,
		Timeout:   cfg.Timeout(),
		MaxOutput: cfg.MaxOutputBytes(),
	}
	server := foremanmcp.NewServer(cfg, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if serveHTTPAddr != "" {
		return serveHTTP(ctx, server, serveHTTPAddr)
	}
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func serveHTTP(ctx context.Context, server *mcpsdk.Server, addr string) error {
	handler := mcpsdk.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcpsdk.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		_ = httpServer.Close()
	}()

	log.Printf("listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
