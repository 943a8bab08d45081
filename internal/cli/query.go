package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/cortex"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

var queryFlags struct {
	configPath string
	coreURL    string
	timeout    time.Duration
	summary    bool
}

var queryCmd = &cobra.Command{
	Use:   "query <command...>",
	Short: "Run one verification command and print the honest response",
	Example: `  kremis query lookup 1
  kremis query traverse 4 2
  kremis query path 1 9
  kremis query ingest 1 name Alice`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryFlags.configPath, "config", "", "path to YAML config file")
	queryCmd.Flags().StringVar(&queryFlags.coreURL, "url", "", "Core base URL (overrides config)")
	queryCmd.Flags().DurationVar(&queryFlags.timeout, "timeout", 0, "per-call timeout (overrides config)")
	queryCmd.Flags().BoolVar(&queryFlags.summary, "summary", false, "print the audit summary after the response")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadSessionConfig(queryFlags.configPath, queryFlags.coreURL, queryFlags.timeout)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client := core.NewClient(cfg.CoreURL, cfg.Timeout)
	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("could not connect to Core at %s: %w", cfg.CoreURL, err)
	}
	defer client.Stop()

	trail := honesty.NewTrail()
	dispatcher := cortex.NewDispatcher(client, honesty.NewVerifier(trail))

	resp := dispatcher.Dispatch(ctx, strings.Join(args, " "))
	fmt.Println(resp.Render())

	if queryFlags.summary {
		fmt.Println()
		cortex.WriteSummary(os.Stdout, trail.Summary())
	}
	return nil
}
