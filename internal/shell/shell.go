// Package shell implements the interactive read-eval-print loop: a
// readline-backed prompt with history and command completion.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"

	"vsh/internal/builtins"
	"vsh/internal/config"
	"vsh/internal/pipeline"
	"vsh/internal/render"
	"vsh/internal/rpcservice"
	"vsh/internal/vsherr"
)

// Shell drives the interactive prompt loop.
type Shell struct {
	cfg *config.Config
	exe *pipeline.Executor
	rl  *readline.Instance
}

// New constructs a Shell backed by a readline.Instance configured with
// cfg's prompt and history file.
func New(cfg *config.Config, exe *pipeline.Executor) (*Shell, error) {
	if cfg.Dir != "" {
		_ = os.MkdirAll(cfg.Dir, 0o755)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    newCompleter(exe.Service()),
	})
	if err != nil {
		return nil, fmt.Errorf("shell: starting readline: %w", err)
	}
	return &Shell{cfg: cfg, exe: exe, rl: rl}, nil
}

func (s *Shell) Close() error {
	return s.rl.Close()
}

// Run reads and executes lines until EOF, returning the process exit
// status: 0 if every line ran without error, non-zero if any did (the
// same exit contract as the non-interactive loop in cmd/vsh).
func (s *Shell) Run(ctx context.Context) int {
	status := 0
	for {
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue // Ctrl-C: abort current line, return to prompt.
		}
		if errors.Is(err, io.EOF) {
			return status
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "exit" {
			if line == "exit" {
				return status
			}
			continue
		}

		// Ctrl-C while a pipeline runs arrives as SIGINT: cancel the
		// pipeline's context instead of terminating the process.
		lineCtx, cancel := signal.NotifyContext(ctx, os.Interrupt)
		stream, err := s.exe.Run(lineCtx, line)
		cancel()
		if err != nil {
			printError(os.Stderr, err)
			status = 1
			continue
		}
		if err := render.Render(os.Stdout, stream, true); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			status = 1
		}
	}
}

// printError formats err as "error: <ErrorName>: <parameters
// as JSON>" for a tagged vsherr.Error, or a plain line for anything else
// (a Go stdlib error surfacing from I/O, say).
func printError(w io.Writer, err error) {
	var verr *vsherr.Error
	if errors.As(err, &verr) {
		fmt.Fprintln(w, "error:", verr.Error())
		return
	}
	fmt.Fprintln(w, "error:", err)
}

// newCompleter returns a readline.AutoCompleter that suggests built-in
// command names matching the current word, the same prefix-filtering
// idea as a prefix-filter over a command-name list, but over a
// flat command list rather than a container tree.
func newCompleter(svc *rpcservice.Service) readline.AutoCompleter {
	names := make([]string, 0, len(svc.Methods()))
	for _, m := range svc.Methods() {
		names = append(names, builtins.MethodToCommand(m.Name))
	}
	return &commandCompleter{names: names}
}

type commandCompleter struct {
	names []string
}

func (c *commandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	word := currentWord(line, pos)
	var suggestions [][]rune
	for _, name := range c.names {
		if strings.HasPrefix(name, word) {
			suggestions = append(suggestions, []rune(name[len(word):]))
		}
	}
	return suggestions, len(word)
}

func currentWord(line []rune, pos int) string {
	start := pos
	for start > 0 && line[start-1] != ' ' && line[start-1] != '|' {
		start--
	}
	return string(line[start:pos])
}
