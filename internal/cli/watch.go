package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/markuspf/libsemigroups/pkg/observability"
	"github.com/markuspf/libsemigroups/pkg/semigroup"
)

// enumEvent is a progress message from the enumeration goroutine.
type enumEvent struct {
	size     int
	rules    int
	wordlen  int
	finished bool
}

// channelHooks forwards enumeration events into the watch view. Sends never
// block the engine: when the view lags, intermediate progress events are
// dropped.
type channelHooks struct {
	events chan enumEvent
}

func (h *channelHooks) OnEnumerateStart(context.Context, int, int) {}

func (h *channelHooks) OnProgress(_ context.Context, size, rules, wordlen int) {
	select {
	case h.events <- enumEvent{size: size, rules: rules, wordlen: wordlen}:
	default:
	}
}

func (h *channelHooks) OnEnumerateDone(context.Context, int, int, bool, time.Duration) {}

// watchModel is the bubbletea model for the live enumeration view.
type watchModel struct {
	events  chan enumEvent
	cancel  context.CancelFunc
	start   time.Time
	size    int
	rules   int
	wordlen int
	stopped bool
}

func waitForEvent(events chan enumEvent) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopped = true
			m.cancel()
			return m, nil
		}
	case tickMsg:
		return m, tick()
	case enumEvent:
		if msg.size > 0 {
			m.size = msg.size
			m.rules = msg.rules
			m.wordlen = msg.wordlen
		}
		if msg.finished {
			return m, tea.Quit
		}
		return m, waitForEvent(m.events)
	}
	return m, nil
}

func (m watchModel) View() string {
	elapsed := time.Since(m.start).Round(100 * time.Millisecond)
	out := StyleTitle.Render("enumerating") + "\n"
	out += fmt.Sprintf("  %s %s\n", StyleLabel.Render("elements       "), StyleNumber.Render(fmt.Sprintf("%d", m.size)))
	out += fmt.Sprintf("  %s %s\n", StyleLabel.Render("rules          "), StyleNumber.Render(fmt.Sprintf("%d", m.rules)))
	out += fmt.Sprintf("  %s %s\n", StyleLabel.Render("max word length"), StyleNumber.Render(fmt.Sprintf("%d", m.wordlen)))
	out += fmt.Sprintf("  %s %s\n", StyleLabel.Render("elapsed        "), StyleValue.Render(elapsed.String()))
	if m.stopped {
		out += StyleDim.Render("  stopping at the next row...") + "\n"
	} else {
		out += StyleDim.Render("  press q to stop") + "\n"
	}
	return out
}

// watchEnumeration runs the enumeration in the background with a live
// bubbletea progress view in the foreground. Pressing q cancels the
// enumeration cooperatively; the engine stops at the next row with all
// tables consistent.
func watchEnumeration(ctx context.Context, s *semigroup.Semigroup, limit semigroup.Pos) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan enumEvent, 64)
	observability.SetEnumerationHooks(&channelHooks{events: events})
	defer observability.Reset()

	go func() {
		s.Enumerate(ctx, limit)
		events <- enumEvent{
			size:     s.CurrentSize(),
			rules:    s.CurrentNrRules(),
			wordlen:  s.CurrentMaxWordLength(),
			finished: true,
		}
	}()

	m := watchModel{events: events, cancel: cancel, start: time.Now()}
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	_, err := p.Run()
	return err
}
