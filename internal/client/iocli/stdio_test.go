package iocli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeStdio создает Stdio, читающий из pipe с заранее записанным вводом
func pipeStdio(t *testing.T, input string) (IO, *bytes.Buffer) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	out := &bytes.Buffer{}
	return NewStdio(r, out), out
}

func TestNewStdio(t *testing.T) {
	stdio := NewStdio(os.Stdin, io.Discard)
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	stdio, out := pipeStdio(t, "")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	_, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	stdio, out := pipeStdio(t, "  user input  \nsecond\n")

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)

	// Второе чтение не теряет буферизованные данные
	result, err = stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	assert.Equal(t, "Prompt: Prompt: ", out.String())

	_, err = stdio.ReadInput("Prompt: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_KeepsWhitespace(t *testing.T) {
	stdio, _ := pipeStdio(t, "  indented\r\nlast without newline")

	line, err := stdio.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "  indented", line)

	line, err = stdio.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "last without newline", line)

	_, err = stdio.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPassword_FromPipe(t *testing.T) {
	stdio, out := pipeStdio(t, "s3cret-password\n")

	password, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret-password", password)
	assert.Equal(t, "Password: ", out.String())
}
