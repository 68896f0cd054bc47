// Package console implements the prompting helpers shared by the tutorial
// programs: read a line, validate it, and ask again until the answer
// parses. The reader and writer are injected so tests can script a session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrClosed is returned when the input stream ends before a valid answer.
var ErrClosed = errors.New("console: input closed")

// Prompter reads answers line by line and writes prompts and validation
// messages to out.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// String prompts once and falls back to def on empty input.
func (p *Prompter) String(label, def string) (string, error) {
	line, err := p.readLine(label)
	if err != nil {
		return def, err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Int keeps asking until the answer parses as an integer.
func (p *Prompter) Int(label string) (int, error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a whole number, got %q.\n", line)
			continue
		}
		return n, nil
	}
}

// IntInRange keeps asking until the answer is an integer in [low, high].
func (p *Prompter) IntInRange(label string, low, high int) (int, error) {
	for {
		n, err := p.Int(label)
		if err != nil {
			return 0, err
		}
		if n < low || n > high {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", low, high)
			continue
		}
		return n, nil
	}
}

// Ints keeps asking until the answer parses as a comma-separated list of
// integers.
func (p *Prompter) Ints(label string) ([]int, error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return nil, err
		}
		values, err := ParseInts(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v.\n", err)
			continue
		}
		return values, nil
	}
}

// Strings splits a comma-separated answer, dropping empty entries. An empty
// answer yields an empty list, not an error.
func (p *Prompter) Strings(label string) ([]string, error) {
	line, err := p.readLine(label)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

// Choice keeps asking until the lowercased answer matches one of allowed.
func (p *Prompter) Choice(label string, allowed ...string) (string, error) {
	for {
		line, err := p.readLine(label)
		if err != nil {
			return "", err
		}
		line = strings.ToLower(line)
		for _, a := range allowed {
			if line == a {
				return line, nil
			}
		}
		fmt.Fprintf(p.out, "Please answer one of: %s.\n", strings.Join(allowed, ", "))
	}
}

// ParseInts parses a comma-separated list of integers such as "1, 2,3".
func ParseInts(line string) ([]int, error) {
	parts := strings.Split(line, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a whole number", part)
		}
		values = append(values, n)
	}
	if len(values) == 0 {
		return nil, errors.New("no numbers given")
	}
	return values, nil
}
