package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/misstype/internal/drill"
)

type identityShuffle struct{}

func (identityShuffle) Shuffle([]string) {}

func runConsole(t *testing.T, words []string, input string) (string, *drill.Drill, int) {
	t.Helper()
	loads := 0
	loader := func() ([]string, error) {
		loads++
		return append([]string(nil), words...), nil
	}
	d := drill.New(loader, identityShuffle{}, drill.Options{})
	var out bytes.Buffer
	c := New(d, strings.NewReader(input), &out, Options{PromptWidth: DefaultPromptWidth})
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String(), d, loads
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func TestRunRecordsAndShowsCounts(t *testing.T) {
	out, d, _ := runConsole(t, nil, "a\ns\na\n0\n")
	if !containsAll(out, []string{"  A...2\n  S...1\n", "Ending program..."}) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if string(d.Record()) != "ASA" {
		t.Fatalf("unexpected record: %q", string(d.Record()))
	}
}

func TestRunRejectsInvalidEntries(t *testing.T) {
	out, d, _ := runConsole(t, nil, "ab\n7\n\n?\n0\n")
	if strings.Count(out, "Enter characters one at a time!") != 1 {
		t.Fatalf("expected one multi-char message:\n%s", out)
	}
	if strings.Count(out, "Invalid answer!") != 3 {
		t.Fatalf("expected three invalid messages:\n%s", out)
	}
	if len(d.Record()) != 0 {
		t.Fatalf("record changed: %q", string(d.Record()))
	}
}

func TestRunPracticeWithoutMisses(t *testing.T) {
	out, _, loads := runConsole(t, []string{"cat"}, "1\n0\n")
	if !strings.Contains(out, "First enter some characters you've typed wrong.") {
		t.Fatalf("expected precondition message:\n%s", out)
	}
	if strings.Contains(out, "Practice session has begun") {
		t.Fatalf("session should not start:\n%s", out)
	}
	if loads != 0 {
		t.Fatalf("expected no corpus load, got %d", loads)
	}
}

func TestRunPracticeCorrectThenQuit(t *testing.T) {
	out, _, _ := runConsole(t, []string{"cat", "dog", "fish", "bat"}, "a\n1\ncat\n0\n0\n")
	if !containsAll(out, []string{
		"Practice session has begun (0 to quit practice).",
		"Type 'cat' (lowercase):",
		"CORRECT",
		"Type 'bat' (lowercase):",
		"You accurately typed 1 word(s)!",
		"Practice session has been quit.",
		"Ending program...",
	}) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "'dog'") || strings.Contains(out, "'fish'") {
		t.Fatalf("non-matching words were prompted:\n%s", out)
	}
}

func TestRunPracticeInvalidAndIncorrect(t *testing.T) {
	out, _, _ := runConsole(t, []string{"cat", "bat", "hat"}, "a\n1\n5\nbad\n0\n0\n")
	if !containsAll(out, []string{"Invalid answer!", "INCORRECT", "You accurately typed 0 word(s)!"}) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunPracticeExhaustionReturnsToIdle(t *testing.T) {
	out, _, loads := runConsole(t, []string{"boat"}, "a\no\n1\nboat\nboat\n1\nboat\n0\n0\n")
	if strings.Count(out, "Type 'boat' (lowercase):") != 4 {
		t.Fatalf("expected boat prompted twice per session:\n%s", out)
	}
	if strings.Count(out, "Practice session has begun") != 2 {
		t.Fatalf("expected two sessions:\n%s", out)
	}
	if loads != 1 {
		t.Fatalf("expected corpus loaded once, got %d", loads)
	}
	if !strings.Contains(out, "You accurately typed 1 word(s)!") {
		t.Fatalf("expected second session count reset:\n%s", out)
	}
}

func TestRunPromptPadding(t *testing.T) {
	out, _, _ := runConsole(t, []string{"cat"}, "a\n1\n0\n0\n")
	want := "Type 'cat' (lowercase):" + strings.Repeat(" ", DefaultPromptWidth-len("Type 'cat' (lowercase):"))
	if !strings.Contains(out, want+"You accurately") {
		t.Fatalf("expected padded prompt:\n%q", out)
	}
}

func TestRunEOFEndsProgram(t *testing.T) {
	out, _, _ := runConsole(t, []string{"cat"}, "a\n1\n")
	if !containsAll(out, []string{"You accurately typed 0 word(s)!", "Ending program..."}) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := drill.New(func() ([]string, error) { return nil, nil }, identityShuffle{}, drill.Options{})
	var out bytes.Buffer
	err := New(d, strings.NewReader("a\n"), &out, Options{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func runUntilCanceled(t *testing.T, d *drill.Drill, input string) error {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	written := make(chan struct{})
	go func() {
		defer close(written)
		if input != "" {
			_, _ = io.WriteString(pw, input)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- New(d, pr, io.Discard, Options{}).Run(ctx)
	}()

	<-written
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatalf("Run still blocked on input after cancel")
		return nil
	}
}

func TestRunCanceledWhileWaitingForLetter(t *testing.T) {
	d := drill.New(func() ([]string, error) { return nil, nil }, identityShuffle{}, drill.Options{})
	err := runUntilCanceled(t, d, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunCanceledWhileWaitingForAnswer(t *testing.T) {
	d := drill.New(func() ([]string, error) { return []string{"apple"}, nil }, identityShuffle{}, drill.Options{})
	err := runUntilCanceled(t, d, "a\n1\n")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !d.Loaded() {
		t.Fatalf("expected practice session to have started")
	}
}

func TestRunLoadErrorStaysIdle(t *testing.T) {
	d := drill.New(func() ([]string, error) { return nil, errors.New("missing") }, identityShuffle{}, drill.Options{})
	var out bytes.Buffer
	if err := New(d, strings.NewReader("a\n1\n0\n"), &out, Options{}).Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Contains(out.String(), "Practice session has begun") {
		t.Fatalf("session started despite load error:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Ending program...") {
		t.Fatalf("expected program to continue to quit:\n%s", out.String())
	}
}
