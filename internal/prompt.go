package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a prompt is requested without a TTY.
var ErrNotTerminal = errors.New("prompt requires an interactive terminal")

// PromptSecret reads a secret (keyword, pad or pad passphrase) from the
// terminal. The prompt is written to out, which should be stderr so that
// stdout stays clean for ciphertext.
// If mask is true, input is read in raw mode with '*' echo; otherwise it uses
// the terminal's hidden input (no echo) via ReadPassword. With confirm the
// secret is asked for twice and must match.
// Errors are concise and never echo the secret.
func PromptSecret(out io.Writer, label string, mask, confirm bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	read := func(prompt string) (string, error) {
		if mask {
			return readMasked(out, fd, prompt)
		}
		fmt.Fprint(out, "\r"+prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read %s", label)
		}
		return string(b), nil
	}

	s1, err := read("Enter " + label + ": ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return s1, nil
	}
	s2, err := read("Re-enter " + label + ": ")
	if err != nil {
		return "", err
	}
	if s1 != s2 {
		return "", fmt.Errorf("%s entries do not match", label)
	}
	return s1, nil
}

// readMasked reads one line in raw mode, echoing '*' per rune and restoring
// the terminal on return or on SIGINT/SIGTERM.
func readMasked(out io.Writer, fd int, prompt string) (string, error) {
	fmt.Fprint(out, "\r"+prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	var buf []byte
	for {
		var b [1]byte
		n, er := os.Stdin.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := b[0]
		if ch == '\r' || ch == '\n' {
			fmt.Fprint(out, "\r\n")
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(out, "\b \b")
			}
			continue
		}
		if ch < 0x20 {
			continue
		}
		buf = append(buf, ch)
		fmt.Fprint(out, "*")
	}
	return string(buf), nil
}
