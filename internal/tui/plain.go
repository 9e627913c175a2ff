package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Iron-Ham/cookieshell/internal/console"
	"github.com/Iron-Ham/cookieshell/internal/tui/markup"
)

// RunPlain drives c as a line REPL for non-interactive input: one command
// per line of in, plain text on out with markup stripped. It returns when
// in is exhausted, the session exits, or ctx is done.
func RunPlain(ctx context.Context, c *console.Console, in io.Reader, out io.Writer) error {
	for _, l := range c.Lines() {
		if err := writePlain(out, l); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		up, err := c.Submit(scanner.Text())
		if errors.Is(err, console.ErrLocked) {
			return nil
		}
		if err != nil {
			return err
		}
		if up.Cleared {
			if _, err := fmt.Fprintln(out, "--- cleared ---"); err != nil {
				return err
			}
		}
		for _, l := range up.Lines {
			if err := writePlain(out, l); err != nil {
				return err
			}
		}
		if up.Locked {
			return nil
		}
	}
	return scanner.Err()
}

func writePlain(w io.Writer, l console.Line) error {
	text := l.String()
	if l.Kind == console.LineOutput {
		text = markup.Strip(l.Content)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
