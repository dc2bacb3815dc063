package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/oneclickcopy/internal/client/storage"
	"github.com/iudanet/oneclickcopy/internal/models"
)

const untitled = "(untitled)"

func (c *Cli) runList(ctx context.Context) error {
	// Вход в список: одноразовое восстановление, затем бэкап текущего набора
	c.restoreOnce()

	docs, err := c.dataService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	c.io.Println("=== Notes ===")
	c.io.Println()

	if len(docs) == 0 {
		c.io.Println("No notes found.")
		c.io.Println()
		c.io.Println("Use 'oneclickcopy new' to create your first note.")
	} else {
		for i := range docs {
			doc := &docs[i]
			c.io.Printf("%4d  %s\n", doc.ID, displayTitle(doc))
			c.io.Printf("      %d snippet(s), %d copied, updated %s\n",
				len(doc.Lines()), len(doc.CopiedItemKeys), doc.UpdatedAt.Local().Format(time.DateTime))
		}
		c.io.Println()
		c.io.Printf("Total: %d note(s)\n", len(docs))
	}

	if len(docs) > 0 {
		c.autoSync.RequestBackup(docs)
		c.autoSync.Wait()
	}
	return nil
}

func (c *Cli) runShow(ctx context.Context, id int64) error {
	doc, err := c.dataService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("note not found with ID: %d", id)
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	c.io.Printf("=== %s ===\n", displayTitle(doc))
	c.io.Println()
	c.printLines(doc)
	return nil
}

// printLines печатает строки заметки с номерами и отметкой копирования
func (c *Cli) printLines(doc *models.Document) {
	lines := doc.Lines()
	if len(lines) == 0 {
		c.io.Println("(empty)")
		return
	}
	for i, line := range lines {
		mark := " "
		if strings.TrimSpace(line) != "" && doc.IsCopied(line) {
			mark = "✓"
		}
		c.io.Printf("%3d [%s] %s\n", i+1, mark, line)
	}
}

func (c *Cli) runNew(ctx context.Context, title string) error {
	c.io.Println("=== New Note ===")
	c.io.Println()

	if title == "" {
		var err error
		title, err = c.io.ReadInput("Title: ")
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}

	content, err := c.readSnippets()
	if err != nil {
		return err
	}

	sess, err := c.openEditor(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if err := sess.SetTitle(title); err != nil {
		return err
	}
	if err := sess.SetContent(content); err != nil {
		return err
	}
	if err := sess.Close(ctx); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	doc := sess.Document()
	c.io.Println()
	if doc.IsNew() {
		c.io.Println("Empty note discarded.")
		return nil
	}
	c.io.Printf("✓ Note %d created\n", doc.ID)

	c.requestBackup(ctx)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, id int64, yes bool) error {
	doc, err := c.dataService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return fmt.Errorf("note not found with ID: %d", id)
		}
		return fmt.Errorf("failed to get note: %w", err)
	}

	if !yes {
		c.io.Println("About to delete:")
		c.io.Printf("  %s (%d snippet(s))\n", displayTitle(doc), len(doc.Lines()))
		confirm, err := c.io.ReadInput("Are you sure? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if confirm != "yes" && confirm != "y" {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := c.dataService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	c.io.Println("✓ Note deleted")

	c.requestBackup(ctx)
	return nil
}

func displayTitle(doc *models.Document) string {
	if strings.TrimSpace(doc.Title) == "" {
		return untitled
	}
	return doc.Title
}
