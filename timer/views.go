package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/breathe/internal/breathing"
	"github.com/ayoisaiah/breathe/internal/timeutil"
)

// phaseText returns the instruction shown for the current phase.
func phaseText(s breathing.Snapshot) string {
	switch {
	case !s.Started:
		return "Ready"
	case !s.Exercise.Paced():
		return "Breathe naturally"
	}

	return s.Phase.Text()
}

// ballWidth returns the width of the breathing ball. It expands while
// breathing in, stays full while holding and contracts while breathing out.
func ballWidth(s breathing.Snapshot) int {
	if !s.Started || !s.Exercise.Paced() {
		return minBallWidth
	}

	if s.Phase == breathing.Exhale {
		return minBallWidth
	}

	return maxBallWidth
}

func (t *Timer) ballView() string {
	w := ballWidth(t.snap)

	ball := t.style.ball.
		Width(w).
		Height(w / 3).
		Render("")

	return lipgloss.PlaceHorizontal(maxBallWidth, lipgloss.Center, ball)
}

func (t *Timer) progressView() string {
	target := t.snap.Exercise.Target
	if target <= 0 {
		return ""
	}

	percent := min(t.snap.ElapsedTime().Seconds()/target.Seconds(), 1)

	label := t.style.hint.Render(
		fmt.Sprintf(
			"%s / %s",
			timeutil.FormatElapsed(t.snap.Elapsed),
			timeutil.FormatElapsed(int(target.Seconds())),
		),
	)

	return "\n\n" + t.progress.ViewAs(percent) + "\n" + label
}

func (t *Timer) statusView() string {
	switch {
	case t.err != nil:
		return "\n\n" + t.style.secondary.Render(t.err.Error())
	case t.snap.Started && !t.snap.Active:
		return "\n\n" + t.style.secondary.Render("[Paused]")
	}

	return ""
}

func (t *Timer) timerView() string {
	var s strings.Builder

	ex := t.snap.Exercise

	s.WriteString(t.style.title.Render(ex.Name))

	if ex.Description != "" {
		s.WriteString("\n" + t.style.hint.Render(ex.Description))
	}

	s.WriteString("\n\n" + t.ballView())
	s.WriteString("\n\n" + t.style.main.Render(phaseText(t.snap)))
	s.WriteString(
		"\n" + t.style.secondary.Render(timeutil.FormatElapsed(t.snap.Elapsed)),
	)

	if t.snap.Exercise.Paced() && t.snap.Cycles > 0 {
		s.WriteString(
			t.style.hint.Render(fmt.Sprintf("  (%d cycles)", t.snap.Cycles)),
		)
	}

	s.WriteString(t.progressView())
	s.WriteString(t.statusView())
	s.WriteString("\n\n" + t.help.ShortHelpView(defaultKeymap.shortHelp()))

	return s.String()
}

func (t *Timer) View() string {
	return t.style.base.Render(t.timerView())
}
