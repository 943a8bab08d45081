package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/M2Dr3g0n/kremis/internal/config"
	"github.com/M2Dr3g0n/kremis/internal/core"
	"github.com/M2Dr3g0n/kremis/internal/cortex"
	"github.com/M2Dr3g0n/kremis/internal/honesty"
)

var replFlags struct {
	configPath string
	coreURL    string
	timeout    time.Duration
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive verification shell against the Core",
	RunE:  runREPL,
}

func init() {
	replCmd.Flags().StringVar(&replFlags.configPath, "config", "", "path to YAML config file")
	replCmd.Flags().StringVar(&replFlags.coreURL, "url", "", "Core base URL (overrides config)")
	replCmd.Flags().DurationVar(&replFlags.timeout, "timeout", 0, "per-call timeout (overrides config)")
	rootCmd.AddCommand(replCmd)
}

func loadSessionConfig(path, urlOverride string, timeoutOverride time.Duration) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if urlOverride != "" {
		cfg.CoreURL = urlOverride
	}
	if timeoutOverride > 0 {
		cfg.Timeout = timeoutOverride
	}
	return cfg, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadSessionConfig(replFlags.configPath, replFlags.coreURL, replFlags.timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sq := newSwitchableQuerier(core.NewClient(cfg.CoreURL, cfg.Timeout))
	trail := honesty.NewTrail()
	session := cortex.NewSession(sq, trail, os.Stdout)

	fmt.Println("==================================================")
	fmt.Println("  Kremis Cortex - honest verification layer")
	fmt.Printf("  Connecting to: %s\n", cfg.CoreURL)
	fmt.Println("==================================================")

	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("could not connect to Core: %w (is the server running?)", err)
	}
	defer session.Stop()

	// Hot-reload transport settings while the shell is open.
	if replFlags.configPath != "" {
		if reloader, rerr := config.NewReloader(replFlags.configPath, func(next *config.Config) {
			fresh := core.NewClient(next.CoreURL, next.Timeout)
			if serr := fresh.Start(ctx); serr != nil {
				fmt.Fprintf(os.Stderr, "reload: new Core settings unreachable: %v\n", serr)
				return
			}
			sq.Swap(fresh)
		}); rerr == nil {
			go func() { _ = reloader.Run(ctx) }()
		} else {
			fmt.Fprintf(os.Stderr, "config watch disabled: %v\n", rerr)
		}
	}

	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("cortex> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return nil
		case "help":
			printHelp()
			continue
		case "audit":
			cortex.WriteSummary(os.Stdout, trail.Summary())
			continue
		case "audit export":
			exportTrail(trail)
			continue
		case "audit clear":
			trail.Clear()
			fmt.Println("audit trail cleared")
			continue
		}

		resp := session.Query(ctx, line)
		fmt.Println()
		fmt.Println(resp.Render())
		fmt.Println()
	}
	return scanner.Err()
}

// exportTrail renders all cycles as JSONL on stdout. The trail itself
// stays in memory; this is a view, not persistence.
func exportTrail(trail *honesty.Trail) {
	for _, c := range trail.Cycles() {
		line, err := json.Marshal(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			return
		}
		fmt.Println(string(line))
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  lookup <entity_id>         - Verify an entity exists")
	fmt.Println("  traverse <node_id> [depth] - Verify connections within depth")
	fmt.Println("  path <start> <end>         - Verify a path exists")
	fmt.Println("  ingest <id> <attr> <value> - Ingest a signal")
	fmt.Println("  status                     - Show graph status")
	fmt.Println("  stage                      - Show developmental stage")
	fmt.Println("  audit [export|clear]       - Audit trail summary / JSONL / reset")
	fmt.Println("  help                       - Show this help")
	fmt.Println("  quit                       - Exit")
	fmt.Println()
}
