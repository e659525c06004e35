package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vsh/internal/builtins"
	"vsh/internal/config"
	"vsh/internal/pipeline"
	"vsh/internal/render"
	"vsh/internal/shell"
)

var noHistory bool

var rootCmd = &cobra.Command{
	Use:   "vsh",
	Short: "An interactive object-oriented record shell",
	Long: "vsh is an interactive shell whose pipelines carry typed records\n" +
		"instead of text, connected with the familiar \"|\" syntax.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "don't read or write the readline history file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("vsh: %w", err)
	}
	if noHistory {
		cfg.HistoryFile = ""
	}

	exe := pipeline.New(cfg.ResolveAddr)
	if _, err := builtins.SelfTest(exe.Service()); err != nil {
		return fmt.Errorf("vsh: built-in interface description is malformed: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	ctx := context.Background()

	var status int
	if interactive {
		sh, err := shell.New(cfg, exe)
		if err != nil {
			return err
		}
		status = sh.Run(ctx)
		sh.Close()
	} else {
		status = runScript(ctx, exe)
	}

	os.Exit(status)
	return nil
}

// runScript executes each line of standard input as one pipeline,
// rendering results as JSON-per-line unless a line ends in "print"
// (the non-interactive interface).
func runScript(ctx context.Context, exe *pipeline.Executor) int {
	status := 0
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		stream, err := exe.Run(ctx, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			status = 1
			continue
		}
		if err := render.Render(os.Stdout, stream, false); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			status = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		status = 1
	}
	return status
}
