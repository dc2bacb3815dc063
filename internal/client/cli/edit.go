package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/oneclickcopy/internal/client/editor"
	"github.com/iudanet/oneclickcopy/internal/client/storage"
)

// EditOptions are the changes requested by the edit command.
// Line numbers and positions are 1-based.
type EditOptions struct {
	Title    string
	Append   []string
	Toggle   []int
	MoveFrom int
	MoveTo   int
	TitleSet bool
}

func (o EditOptions) empty() bool {
	return !o.TitleSet && len(o.Append) == 0 && len(o.Toggle) == 0 && o.MoveFrom == 0 && o.MoveTo == 0
}

func (c *Cli) runEdit(ctx context.Context, id int64, opts EditOptions) error {
	if (opts.MoveFrom == 0) != (opts.MoveTo == 0) {
		return errors.New("--move and --to must be used together")
	}

	sess, err := c.openEditor(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("note not found with ID: %d", id)
		}
		return fmt.Errorf("failed to open note: %w", err)
	}
	// Close сохраняет изменения даже если одна из операций ниже не удалась
	defer func() { _ = sess.Close(ctx) }()

	if err := c.applyEdit(sess, opts); err != nil {
		return err
	}
	if err := sess.Close(ctx); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	doc := sess.Document()
	c.io.Printf("=== %s ===\n", displayTitle(&doc))
	c.io.Println()
	c.printLines(&doc)

	c.requestBackup(ctx)
	return nil
}

func (c *Cli) applyEdit(sess *editor.Session, opts EditOptions) error {
	if opts.empty() {
		content, err := c.readSnippets()
		if err != nil {
			return err
		}
		return sess.SetContent(content)
	}

	if opts.TitleSet {
		if err := sess.SetTitle(opts.Title); err != nil {
			return err
		}
	}

	if len(opts.Append) > 0 {
		content := sess.Document().Content
		added := strings.Join(opts.Append, "\n")
		if content == "" {
			content = added
		} else {
			content += "\n" + added
		}
		if err := sess.SetContent(content); err != nil {
			return err
		}
	}

	if len(opts.Toggle) > 0 {
		doc := sess.Document()
		lines := doc.Lines()
		for _, n := range opts.Toggle {
			line, err := lineAt(lines, n)
			if err != nil {
				return err
			}
			if _, err := sess.ToggleCopied(line); err != nil {
				return err
			}
		}
	}

	if opts.MoveFrom != 0 {
		sess.EnterListMode()
		defer sess.ExitListMode()
		if err := sess.Move(opts.MoveFrom-1, opts.MoveTo-1); err != nil {
			if errors.Is(err, editor.ErrInvalidPosition) {
				return fmt.Errorf("invalid move: note has %d snippet(s)", len(sess.Items()))
			}
			return err
		}
	}

	return nil
}

// lineAt returns the non-blank line with the 1-based number n
func lineAt(lines []string, n int) (string, error) {
	if n < 1 || n > len(lines) {
		return "", fmt.Errorf("line %d does not exist, note has %d line(s)", n, len(lines))
	}
	line := lines[n-1]
	if strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("line %d is empty", n)
	}
	return line, nil
}

func (c *Cli) runCopy(ctx context.Context, id int64, n int) error {
	sess, err := c.openEditor(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("note not found with ID: %d", id)
		}
		return fmt.Errorf("failed to open note: %w", err)
	}
	defer func() { _ = sess.Close(ctx) }()

	doc := sess.Document()
	line, err := lineAt(doc.Lines(), n)
	if err != nil {
		return err
	}

	if err := c.clipboard(line); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	if err := sess.SetCopied(line, true); err != nil {
		return err
	}
	if err := sess.Close(ctx); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	c.io.Printf("✓ Copied line %d\n", n)

	c.requestBackup(ctx)
	return nil
}
