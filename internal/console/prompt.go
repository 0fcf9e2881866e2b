package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrInputClosed is returned when input ends while waiting for an answer
var ErrInputClosed = errors.New("input closed")

// readLine reads one line without its line ending
func (c *Controller) readLine(prompt string) (string, error) {
	fmt.Fprint(c.output, c.styles.prompt.Render(prompt))

	line, err := c.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// getOption asks until one of options is entered
func (c *Controller) getOption(ctx context.Context, prompt string, options ...string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		answer, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if slices.Contains(options, answer) {
			return answer, nil
		}
		c.logger.Debug("Invalid option", "answer", answer, "options", options)
	}
}

// getName asks until a name not in taken is entered
func (c *Controller) getName(ctx context.Context, taken []string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name, err := c.readLine("Enter your name: ")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		switch {
		case name == "":
		case slices.Contains(taken, name):
			c.println("%s is already playing, please choose another name.", name)
		default:
			return name, nil
		}
	}
}

func newReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
