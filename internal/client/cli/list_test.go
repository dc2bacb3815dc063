package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/client/config"
)

func TestList_Empty(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)

	require.NoError(t, env.run("list"))

	out := env.output()
	assert.Contains(t, out, "=== Notes ===")
	assert.Contains(t, out, "No notes found.")

	// Пустой список не отправляется на бэкап
	assert.Empty(t, env.backupRequests())
}

func TestList_WithEntries(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	first := env.seed("Servers", "ssh prod\nssh stage")
	env.clock.Advance(1)
	second := env.seed("", "x")

	require.NoError(t, env.run("ls"))

	out := env.output()
	assert.Contains(t, out, "Servers")
	assert.Contains(t, out, untitled)
	assert.Contains(t, out, "2 snippet(s), 0 copied")
	assert.Contains(t, out, "Total: 2 note(s)")

	// Одноразовое восстановление проверяется до вывода списка
	assert.Len(t, env.autoSync.TryAutoRestoreCalls(), 1)

	requests := env.backupRequests()
	require.Len(t, requests, 1)
	require.Len(t, requests[0], 2)
	ids := []int64{requests[0][0].ID, requests[0][1].ID}
	assert.ElementsMatch(t, []int64{first.ID, second.ID}, ids)
}

func TestShow(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("Commands", "git status\n\ngit push")

	sess, err := env.cli.openEditor(context.Background(), doc.ID)
	require.NoError(t, err)
	require.NoError(t, sess.SetCopied("git push", true))
	require.NoError(t, sess.Close(context.Background()))

	require.NoError(t, env.run("show", "1"))

	out := env.output()
	assert.Contains(t, out, "=== Commands ===")
	assert.Contains(t, out, "  1 [ ] git status")
	assert.Contains(t, out, "  2 [ ] \n")
	assert.Contains(t, out, "  3 [✓] git push")
}

func TestShow_Errors(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)

	assert.EqualError(t, env.run("show", "7"), "note not found with ID: 7")
	assert.EqualError(t, env.run("show", "x"), `invalid note id "x"`)
	assert.ErrorContains(t, env.run("show"), "accepts 1 arg(s)")
}

func TestNew(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	env.feed("first line", "  second line", ".")

	require.NoError(t, env.run("new", "--title", "Snippets"))

	docs, err := env.data.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Snippets", docs[0].Title)
	assert.Equal(t, "first line\n  second line", docs[0].Content)
	assert.Equal(t, t0, docs[0].CreatedAt.UTC())
	assert.Contains(t, env.output(), "Note 1 created")

	// Изменение набора документов запрашивает бэкап
	requests := env.backupRequests()
	require.Len(t, requests, 1)
	assert.Len(t, requests[0], 1)
}

func TestNew_PromptsTitle(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	env.feed("From prompt", "line", ".")

	require.NoError(t, env.run("new"))

	docs, err := env.data.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "From prompt", docs[0].Title)
}

func TestNew_EmptyDiscarded(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	env.feed("", ".")

	require.NoError(t, env.run("new"))

	docs, err := env.data.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Contains(t, env.output(), "Empty note discarded.")
	assert.Empty(t, env.backupRequests())
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("Temp", "x")

	env.feed("no")
	require.NoError(t, env.run("delete", "1"))
	assert.Contains(t, env.output(), "Deletion cancelled.")
	_, err := env.data.Get(context.Background(), doc.ID)
	require.NoError(t, err)

	env.feed("yes")
	require.NoError(t, env.run("delete", "1"))
	assert.Contains(t, env.output(), "Note deleted")

	docs, err := env.data.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)

	// Удаление последней заметки не затирает удаленный бэкап
	assert.Empty(t, env.backupRequests())

	assert.EqualError(t, env.run("delete", "1", "-y"), "note not found with ID: 1")
}
