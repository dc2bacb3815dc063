package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal the CLI talks to
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput reads one line and trims surrounding whitespace
	ReadInput(prompt string) (string, error)
	// ReadLine reads one line as typed, without the line break
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
