// Package monitor is a bubbletea status view over a running session:
// it polls Snapshot once per frame and renders the mechanism and
// session counters, in the teacher pack's debugger-TUI style (a plain
// string View rebuilt from the model on every tick).
package monitor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go6502/drivecore/emu/session"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type tickMsg time.Time

type model struct {
	sess *session.Session
	snap session.Snapshot
	quit bool
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}
	case tickMsg:
		m.snap = m.sess.Snapshot()
		return m, tick()
	}
	return m, nil
}

func onOff(label string, on bool) string {
	if on {
		return labelStyle.Render(label+": ") + onStyle.Render("on")
	}
	return labelStyle.Render(label+": ") + offStyle.Render("off")
}

func (m model) View() string {
	if m.quit {
		return ""
	}
	s := m.snap
	return lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render("drivecore monitor")+"  (q to quit)",
		"",
		fmt.Sprintf("%s %d", labelStyle.Render("cycle:"), s.Cycle),
		fmt.Sprintf("%s %d (angle %d)", labelStyle.Render("half-track:"), s.HalfTrack, s.Angle),
		fmt.Sprintf("%s %d", labelStyle.Render("density:"), s.Density),
		onOff("motor", s.MotorOn),
		onOff("led", s.LEDOn),
		onOff("write-protect", s.WriteProtect),
	)
}

// Run blocks, rendering the monitor until the user quits it.
func Run(sess *session.Session) {
	p := tea.NewProgram(model{sess: sess, snap: sess.Snapshot()})
	if _, err := p.Run(); err != nil {
		fmt.Println("monitor error:", err)
	}
}
