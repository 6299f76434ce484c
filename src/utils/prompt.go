package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PromptFloat writes prompt to w and reads one float from r. A blank line
// returns defaultValue; a nil defaultValue makes the input required.
func PromptFloat(r *bufio.Reader, w io.Writer, prompt string, defaultValue *float64) (float64, error) {
	line, err := readLine(r, w, prompt)
	if err != nil {
		return 0, fmt.Errorf("PromptFloat: %w", err)
	}

	if line == "" {
		if defaultValue == nil {
			return 0, fmt.Errorf("PromptFloat: missing required numeric input")
		}

		return *defaultValue, nil
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("PromptFloat: invalid number %q: %v", line, err)
	}

	return v, nil
}

// PromptOptionalFloat is like PromptFloat, except a blank line returns nil.
func PromptOptionalFloat(r *bufio.Reader, w io.Writer, prompt string) (*float64, error) {
	line, err := readLine(r, w, prompt)
	if err != nil {
		return nil, fmt.Errorf("PromptOptionalFloat: %w", err)
	}

	if line == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return nil, fmt.Errorf("PromptOptionalFloat: invalid number %q: %v", line, err)
	}

	return &v, nil
}

func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
