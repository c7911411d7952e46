package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const invalidNumberMsg = "Invalid number. Try again."

// Prompter asks questions on out and reads the answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// ReadString returns the next trimmed line. io.EOF is returned only when the
// input is exhausted before any character was read.
func (p *Prompter) ReadString(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", errors.Wrap(err, "write prompt")
	}

	line, err := p.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "read input")
	}
	return TrimLines(line), nil
}

// ReadInt keeps asking until the answer parses as an integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadString(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		if err := Respond(p.out, invalidNumberMsg); err != nil {
			return 0, err
		}
	}
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}
