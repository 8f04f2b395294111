package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tkarstens/cubist/pkg/run"
)

// =============================================================================
// Solve Progress Model - Live constraint insertion feed
// =============================================================================

// Messages fed into the model by solver hooks while a solve is running.
type (
	constraintMsg struct{ kind string }
	collapseMsg   struct{ members int }
	propagateMsg  struct{ added int }
	solveDoneMsg  struct {
		result *run.Result
		err    error
	}
)

// SolveModel is the bubbletea model that displays live solve progress.
// It counts constraint insertions, cycle collapses, and propagated tokens
// as the solver emits them, and quits when the solve completes.
type SolveModel struct {
	Path string

	Constraints int
	Collapses   int
	Merged      int // nodes absorbed by collapses
	Propagated  int // tokens delivered by propagation

	Result  *run.Result
	Err     error
	Aborted bool
}

// NewSolveModel creates a progress model for solving the given file.
func NewSolveModel(path string) SolveModel {
	return SolveModel{Path: path}
}

func (m SolveModel) Init() tea.Cmd {
	return nil
}

func (m SolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		}
	case constraintMsg:
		m.Constraints++
	case collapseMsg:
		m.Collapses++
		m.Merged += msg.members
	case propagateMsg:
		m.Propagated += msg.added
	case solveDoneMsg:
		m.Result = msg.result
		m.Err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m SolveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Solving " + m.Path))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q to abort"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
	}{
		{"constraints", m.Constraints},
		{"collapses", m.Collapses},
		{"nodes merged", m.Merged},
		{"tokens moved", m.Propagated},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StyleDim.Render(fmt.Sprintf("%-14s", r.label)),
			StyleHighlight.Render(fmt.Sprintf("%d", r.value))))
	}

	if m.Result != nil || m.Err != nil {
		b.WriteString("\n")
		if m.Err != nil {
			b.WriteString(styleIconError.Render(iconError) + " " + m.Err.Error())
		} else {
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render("done"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Solver Hook Bridge
// =============================================================================

// teaSolverHooks forwards solver trace events into a running bubbletea
// program. Sends on a finished program are dropped, so a hook firing after
// the UI quit is harmless.
type teaSolverHooks struct {
	p *tea.Program
}

func (h teaSolverHooks) OnConstraint(kind, desc string) { h.p.Send(constraintMsg{kind: kind}) }
func (h teaSolverHooks) OnCollapse(members int, desc string) {
	h.p.Send(collapseMsg{members: members})
}
func (h teaSolverHooks) OnPropagate(added int) { h.p.Send(propagateMsg{added: added}) }
