package exec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const AbortedOutput CmdOutput = "Aborted.\n"

// Confirmer asks the operator to approve a mutating action.
type Confirmer struct {
	in         io.Reader
	out        io.Writer
	isTerminal bool
}

func NewConfirmer(in io.Reader, out io.Writer, isTerminal bool) *Confirmer {
	return &Confirmer{
		in:         in,
		out:        out,
		isTerminal: isTerminal,
	}
}

// NewStdConfirmer reads answers from stdin; a non interactive stdin never confirms.
func NewStdConfirmer() *Confirmer {
	return NewConfirmer(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// Confirm returns true if the action is approved. Approval is skipped with assumeYes.
func (c *Confirmer) Confirm(question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !c.isTerminal {
		return false, nil
	}

	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", question); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
