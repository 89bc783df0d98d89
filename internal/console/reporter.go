// internal/console/reporter.go
//
// Text rendering of session prompts and events.
// Wording follows the classic console guessing game:
//   - "Please input your guess (1-10)." before every read.
//   - "Too small!" / "Too big!" after a miss.
//   - a corrective line naming the bad input and the expected range after a rejection.
//   - "You win!" or "Game aborted" at the end.
//
// Colors come from lipgloss; on a writer that is not a terminal the output is plain text.

package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/guess/internal/game"
)

// Color palette.
var (
	colorRed    = lipgloss.Color("#ff5555")
	colorGreen  = lipgloss.Color("#50fa7b")
	colorYellow = lipgloss.Color("#f1fa8c")
	colorBlue   = lipgloss.Color("#8be9fd")
	colorDim    = lipgloss.Color("#6272a4")
)

// Reporter implements game.Reporter by writing lines to w.
type Reporter struct {
	w      io.Writer
	bounds game.Bounds

	prompt lipgloss.Style
	hint   lipgloss.Style
	miss   lipgloss.Style
	bad    lipgloss.Style
	win    lipgloss.Style
	fatal  lipgloss.Style
}

// NewReporter constructs a Reporter whose color profile is detected from w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:      w,
		prompt: r.NewStyle().Foreground(colorBlue),
		hint:   r.NewStyle().Foreground(colorDim),
		miss:   r.NewStyle().Foreground(colorYellow).Bold(true),
		bad:    r.NewStyle().Foreground(colorRed),
		win:    r.NewStyle().Foreground(colorGreen).Bold(true),
		fatal:  r.NewStyle().Foreground(colorRed).Bold(true),
	}
}

// Banner prints the greeting shown once before the first prompt.
func (r *Reporter) Banner(b game.Bounds) {
	r.line(r.prompt.Render(fmt.Sprintf("Guess the number! (%d-%d)", b.Low, b.High)))
}

// Prompt asks for the next guess.
func (r *Reporter) Prompt(_ uint32, b game.Bounds) {
	r.bounds = b
	r.line(r.prompt.Render(fmt.Sprintf("Please input your guess (%d-%d).", b.Low, b.High)))
}

// Report renders one event.
func (r *Reporter) Report(ev game.Event) {
	switch ev.Kind {
	case game.EventRejected:
		r.line(r.bad.Render(Describe(ev.Err, r.bounds)))
	case game.EventOutcome:
		r.line(r.hint.Render(fmt.Sprintf("You guessed: %d", ev.Guess)))
		if ev.Outcome == game.OutcomeLess {
			r.line(r.miss.Render("Too small!"))
		} else {
			r.line(r.miss.Render("Too big!"))
		}
	case game.EventFinished:
		if ev.Result.Won() {
			r.line(r.hint.Render(fmt.Sprintf("You guessed: %d", ev.Guess)))
			r.line(r.win.Render(fmt.Sprintf("You win! (%s)", plural(ev.Result.Attempts, "attempt"))))
			return
		}
		r.line(r.fatal.Render(fmt.Sprintf("Game aborted: %v", ev.Result.Err)))
	}
}

func (r *Reporter) line(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

// Describe turns a recoverable failure into a corrective message naming the
// offending input and the expected range.
func Describe(err *game.GuessError, b game.Bounds) string {
	if err == nil {
		return ""
	}
	switch err.Kind {
	case game.KindParse:
		return fmt.Sprintf("%q is not a number. Guess value must be a whole number between %d and %d.", err.Raw, b.Low, b.High)
	case game.KindRange:
		return fmt.Sprintf("%d is out of range. The secret number is between %d and %d.", err.Value, err.Low, err.High)
	default:
		return err.Error()
	}
}

func plural(n uint32, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
