package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const shellPrompt = "oneclickcopy> "

// runShell reads commands until exit or EOF. Services and the auto-sync
// coordinator stay alive between commands, so deferred backups still run.
func (r *Root) runShell(ctx context.Context) error {
	c := r.app
	c.io.Println("OneClickCopy shell. Type 'help' for commands, 'exit' to quit.")

	// Как при открытии списка: одноразовое восстановление при входе
	c.restoreOnce()

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := c.io.ReadInput(shellPrompt)
		if errors.Is(err, io.EOF) {
			c.io.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		args, err := splitArgs(line)
		if err != nil {
			c.io.Printf("Error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		if err := r.shellRoot(args).ExecuteContext(ctx); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	}
}

// shellRoot собирает свежее дерево команд на каждую строку: флаги cobra
// сохраняют значения между запусками
func (r *Root) shellRoot(args []string) *cobra.Command {
	root := &cobra.Command{
		Use:           "oneclickcopy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(r.app.io)
	root.SetErr(r.app.io)
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(r.commands(false)...)
	root.SetArgs(args)
	return root
}

// splitArgs splits a command line on whitespace, honoring single and
// double quotes and backslash escapes outside single quotes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inArg   bool
		quote   rune
		escaped bool
	)

	for _, ch := range line {
		switch {
		case escaped:
			current.WriteRune(ch)
			escaped = false
		case ch == '\\' && quote != '\'':
			escaped = true
			inArg = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteRune(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
			inArg = true
		case ch == ' ' || ch == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(ch)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if escaped {
		return nil, errors.New("trailing backslash")
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
