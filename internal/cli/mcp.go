package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/M2Dr3g0n/kremis/internal/mcp"
)

var mcpFlags struct {
	configPath string
	coreURL    string
	timeout    time.Duration
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the verification layer as MCP tools on stdio",
	RunE:  runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlags.configPath, "config", "", "path to YAML config file")
	mcpCmd.Flags().StringVar(&mcpFlags.coreURL, "url", "", "Core base URL (overrides config)")
	mcpCmd.Flags().DurationVar(&mcpFlags.timeout, "timeout", 0, "per-call timeout (overrides config)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadSessionConfig(mcpFlags.configPath, mcpFlags.coreURL, mcpFlags.timeout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := mcp.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer server.Close()

	fmt.Fprintf(os.Stderr, "kremis MCP server on stdio, Core at %s\n", cfg.CoreURL)
	return server.Run(ctx)
}
