package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter runs numbered-list selections on a terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ChooseFrom prints the options as a numbered list and reads a selection:
// numbers separated by commas or spaces pick entries, an empty line picks
// everything. Invalid input reprompts; out-of-range numbers are ignored.
func (p *Prompter) ChooseFrom(prompt string, options []string) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}

	for {
		fmt.Fprintln(p.out, prompt)
		for i, option := range options {
			fmt.Fprintf(p.out, "%d. %s\n", i+1, option)
		}
		fmt.Fprint(p.out, "Enter numbers separated by commas or spaces (or leave empty for all): ")

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return nil, fmt.Errorf("read selection: %w", err)
			}
			return nil, io.EOF
		}

		raw := strings.TrimSpace(p.in.Text())
		if raw == "" {
			out := make([]string, len(options))
			copy(out, options)
			return out, nil
		}

		selection, ok := parseSelection(raw, options)
		if !ok {
			fmt.Fprintln(p.out, "Invalid input. Please enter numbers separated by commas or spaces.")
			continue
		}

		return selection, nil
	}
}

func parseSelection(raw string, options []string) ([]string, bool) {
	parts := strings.Fields(strings.ReplaceAll(raw, ",", " "))

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		if index < 1 || index > len(options) {
			continue
		}
		out = append(out, options[index-1])
	}

	return out, true
}
