package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/oneclickcopy/internal/client/config"
	"github.com/iudanet/oneclickcopy/internal/models"
)

func (e *testEnv) get(id int64) *models.Document {
	e.t.Helper()
	doc, err := e.data.Get(context.Background(), id)
	require.NoError(e.t, err)
	return doc
}

func TestEdit_TitleAndAppend(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("Old", "a")

	require.NoError(t, env.run("edit", "1", "--title", "New", "-a", "b", "--append", "c d"))

	got := env.get(doc.ID)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "a\nb\nc d", got.Content)
	assert.Contains(t, env.output(), "=== New ===")
	assert.Len(t, env.backupRequests(), 1)
}

func TestEdit_ClearTitle(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("Old", "a")

	require.NoError(t, env.run("edit", "1", "--title", ""))
	assert.Equal(t, "", env.get(doc.ID).Title)
}

func TestEdit_ReplaceContentFromInput(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("T", "old")
	env.feed("new 1", "", "new 2", ".")

	require.NoError(t, env.run("edit", "1"))
	assert.Equal(t, "new 1\n\nnew 2", env.get(doc.ID).Content)
}

func TestEdit_Toggle(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("T", "a\nb\nc")

	require.NoError(t, env.run("edit", "1", "--toggle", "1,3"))
	assert.ElementsMatch(t, []string{"a", "c"}, env.get(doc.ID).CopiedItemKeys)

	require.NoError(t, env.run("edit", "1", "--toggle", "1"))
	assert.Equal(t, []string{"c"}, env.get(doc.ID).CopiedItemKeys)

	assert.ErrorContains(t, env.run("edit", "1", "--toggle", "9"), "line 9 does not exist")
}

func TestEdit_Move(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("T", "a\n\nb\nc")

	// Позиции считаются по непустым строкам, пустые строки после перемещения исчезают
	require.NoError(t, env.run("edit", "1", "--move", "3", "--to", "1"))
	assert.Equal(t, "c\na\nb", env.get(doc.ID).Content)

	err := env.run("edit", "1", "--move", "5", "--to", "1")
	assert.EqualError(t, err, "invalid move: note has 3 snippet(s)")

	err = env.run("edit", "1", "--move", "2")
	assert.EqualError(t, err, "--move and --to must be used together")
}

func TestEdit_NotFound(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)

	assert.EqualError(t, env.run("edit", "3", "--title", "x"), "note not found with ID: 3")
}

func TestCopy(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("T", "first\n\nsecond")

	require.NoError(t, env.run("copy", "1", "3"))

	assert.Equal(t, []string{"second"}, env.copied)
	assert.Equal(t, []string{"second"}, env.get(doc.ID).CopiedItemKeys)
	assert.Contains(t, env.output(), "Copied line 3")

	// Повторное копирование не дублирует ключ
	require.NoError(t, env.run("copy", "1", "3"))
	assert.Equal(t, []string{"second"}, env.get(doc.ID).CopiedItemKeys)
}

func TestCopy_Errors(t *testing.T) {
	env := newTestEnv(t, config.BackendServer)
	doc := env.seed("T", "first\n\nsecond")

	assert.EqualError(t, env.run("copy", "1", "2"), "line 2 is empty")
	assert.EqualError(t, env.run("copy", "1", "x"), `invalid line number "x"`)
	assert.EqualError(t, env.run("copy", "5", "1"), "note not found with ID: 5")

	env.cli.clipboard = func(text string) error { return errors.New("no display") }
	assert.EqualError(t, env.run("copy", "1", "1"), "failed to copy to clipboard: no display")
	// Без копирования отметка не ставится
	assert.Empty(t, env.get(doc.ID).CopiedItemKeys)
}

func TestLineAt(t *testing.T) {
	lines := []string{"a", " ", "b"}

	line, err := lineAt(lines, 3)
	require.NoError(t, err)
	assert.Equal(t, "b", line)

	_, err = lineAt(lines, 0)
	assert.Error(t, err)
	_, err = lineAt(lines, 2)
	assert.EqualError(t, err, "line 2 is empty")
}
