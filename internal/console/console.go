// Package console runs the drill as a line-oriented prompt loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/misstype/internal/drill"
	"github.com/verte-zerg/misstype/internal/model"
)

// DefaultPromptWidth is the column the answer starts at after a word prompt.
const DefaultPromptWidth = 45

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

// Options control console rendering.
type Options struct {
	PromptWidth int
	Color       bool
}

// Console reads commands and answers from in and writes dialogue to out.
type Console struct {
	drill *drill.Drill
	in    *bufio.Reader
	lines <-chan lineResult
	out   io.Writer
	opts  Options
}

type lineResult struct {
	text string
	eof  bool
	err  error
}

// New constructs a Console for the drill.
func New(d *drill.Drill, in io.Reader, out io.Writer, opts Options) *Console {
	if opts.PromptWidth < 0 {
		opts.PromptWidth = 0
	}
	return &Console{
		drill: d,
		in:    bufio.NewReader(in),
		out:   out,
		opts:  opts,
	}
}

// Run loops until the user quits, input ends, or ctx is canceled.
// Invalid input is reported and re-prompted; only write failures and
// cancellation are returned.
func (c *Console) Run(ctx context.Context) error {
	if err := c.printInstructions(); err != nil {
		return err
	}
	c.lines = c.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.printf("\nMissed letter: "); err != nil {
			return err
		}
		line, eof, err := c.readLine(ctx)
		if err != nil {
			return err
		}
		if eof && line == "" {
			return c.println("\nEnding program...")
		}

		quit, err := c.handleIdle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if eof {
			return c.println("\nEnding program...")
		}
	}
}

func (c *Console) handleIdle(ctx context.Context, line string) (bool, error) {
	cmd, _, err := drill.ParseCommand(line)
	switch {
	case errors.Is(err, drill.ErrMultipleChars):
		return false, c.println("Enter characters one at a time!")
	case err != nil:
		return false, c.println("Invalid answer!")
	}

	switch cmd {
	case drill.CommandQuit:
		return true, c.println("Ending program...")
	case drill.CommandPractice:
		return c.practice(ctx)
	default:
		if _, err := c.drill.RecordMiss(line); err != nil {
			return false, c.println("Invalid answer!")
		}
		return false, c.printCounts()
	}
}

func (c *Console) practice(ctx context.Context) (bool, error) {
	session, err := c.drill.Start()
	if errors.Is(err, drill.ErrNoMisses) {
		return false, c.println("\nFirst enter some characters you've typed wrong.")
	}
	if err != nil {
		logErrf("%v\n", err)
		return false, nil
	}
	if err := c.println("\nPractice session has begun (0 to quit practice)."); err != nil {
		return false, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		prompt, ok := session.Next()
		if !ok {
			return false, nil
		}
		label := fmt.Sprintf("Type '%s' (lowercase):", prompt.Word)
		if err := c.printf("\n%s", runewidth.FillRight(label, c.opts.PromptWidth)); err != nil {
			return false, err
		}
		answer, eof, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		if eof && answer == "" {
			if err := c.reportQuit(session.Correct()); err != nil {
				return false, err
			}
			return true, c.println("\nEnding program...")
		}

		switch session.Answer(answer) {
		case model.VerdictCorrect:
			err = c.println(c.style(correctStyle, "CORRECT"))
		case model.VerdictIncorrect:
			err = c.println(c.style(incorrectStyle, "INCORRECT"))
		case model.VerdictInvalid:
			err = c.println("Invalid answer!")
		case model.VerdictQuit:
			return false, c.reportQuit(session.Correct())
		}
		if err != nil {
			return false, err
		}
	}
}

func (c *Console) reportQuit(correct int) error {
	if err := c.printf("You accurately typed %d word(s)!\n", correct); err != nil {
		return err
	}
	return c.println("Practice session has been quit.")
}

func (c *Console) printInstructions() error {
	lines := []string{
		"This console program improves typing agility by tackling missed letters.",
		"\nEnter 0 to quit the program (results are not saved).",
		"\nEnter 1 to practice your missed letters.",
	}
	for _, line := range lines {
		if err := c.println(line); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) printCounts() error {
	for _, lc := range c.drill.Counts() {
		if err := c.printf("  %c...%d\n", lc.Letter, lc.Count); err != nil {
			return err
		}
	}
	return nil
}

// readLines scans input on its own goroutine so readLine can stop waiting
// once ctx is done. The channel closes after the first EOF or read error.
func (c *Console) readLines(ctx context.Context) <-chan lineResult {
	lines := make(chan lineResult)
	go func() {
		defer close(lines)
		for {
			text, err := c.in.ReadString('\n')
			res := lineResult{
				text: strings.TrimRight(text, "\r\n"),
				eof:  errors.Is(err, io.EOF),
			}
			if err != nil && !res.eof {
				res.err = fmt.Errorf("failed to read input: %w", err)
			}
			select {
			case lines <- res:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// readLine returns the next line without its trailing newline. eof is true
// when the input ended, possibly after a final unterminated line.
func (c *Console) readLine(ctx context.Context) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", true, nil
		}
		return res.text, res.eof, res.err
	}
}

func (c *Console) style(s lipgloss.Style, text string) string {
	if !c.opts.Color {
		return text
	}
	return s.Render(text)
}

func (c *Console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (c *Console) println(text string) error {
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
