package clipboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}

// LinePrompter writes the prompt to Out and reads a single line from In.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints prompt and reports whether the answer starts with y or Y.
// There is no retry: anything else, including an empty line or EOF, declines.
func (p LinePrompter) Confirm(prompt string) (bool, error) {
	fmt.Fprint(p.Out, prompt)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	return IsYes(line), nil
}

// IsYes reports whether answer starts with y or Y.
func IsYes(answer string) bool {
	return len(answer) > 0 && (answer[0] == 'y' || answer[0] == 'Y')
}
