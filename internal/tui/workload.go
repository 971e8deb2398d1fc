package tui

import (
	"fmt"
	"strconv"
	"strings"

	"traincalc/internal/engine"
	"traincalc/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// workloadMode is what the workload screen is currently doing
type workloadMode int

const (
	workloadBrowsing workloadMode = iota
	workloadAdding
	workloadEditing
)

// WorkloadModel is the weekly mileage / ACWR screen model
type WorkloadModel struct {
	svc   *service.WorkloadService
	units Units

	data    *service.WorkloadData
	cursor  int
	mode    workloadMode
	input   textinput.Model
	loading bool
	err     error
}

// NewWorkloadModel creates a new workload screen model
func NewWorkloadModel(svc *service.WorkloadService, units Units) WorkloadModel {
	ti := textinput.New()
	ti.Placeholder = "weekly mileage"
	ti.CharLimit = 8
	ti.Width = 12

	return WorkloadModel{
		svc:     svc,
		units:   units,
		input:   ti,
		loading: true,
	}
}

// Init initializes the workload screen
func (m WorkloadModel) Init() tea.Cmd {
	return m.loadData
}

type workloadLoadedMsg struct {
	data *service.WorkloadData
	err  error
}

func (m WorkloadModel) loadData() tea.Msg {
	data, err := m.svc.GetWorkloadData()
	return workloadLoadedMsg{data: data, err: err}
}

func (m WorkloadModel) editing() bool {
	return m.mode != workloadBrowsing
}

// Update handles messages
func (m WorkloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workloadLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		if m.data != nil && m.cursor >= len(m.data.Weeks) {
			m.cursor = len(m.data.Weeks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != workloadBrowsing {
			return m.updateForm(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m WorkloadModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.data != nil && m.cursor < len(m.data.Weeks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.mode = workloadAdding
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		if m.data != nil && len(m.data.Weeks) > 0 {
			m.mode = workloadEditing
			m.input.SetValue(strconv.FormatFloat(m.data.Weeks[m.cursor].Mileage, 'f', -1, 64))
			m.input.Focus()
			return m, textinput.Blink
		}
	case "d":
		if m.data != nil && len(m.data.Weeks) > 0 {
			position := m.data.Weeks[m.cursor].Position
			return m, func() tea.Msg {
				if err := m.svc.RemoveWeek(position); err != nil {
					return workloadLoadedMsg{err: err}
				}
				return m.loadData()
			}
		}
	}
	return m, nil
}

func (m WorkloadModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = workloadBrowsing
		m.input.Blur()
		return m, nil
	case "enter":
		// Non-numeric input parses as 0; negatives are clamped downstream
		mileage, _ := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
		mode := m.mode
		position := 0
		if m.data != nil && len(m.data.Weeks) > 0 {
			position = m.data.Weeks[m.cursor].Position
		}

		m.mode = workloadBrowsing
		m.input.Blur()

		return m, func() tea.Msg {
			var err error
			if mode == workloadAdding {
				err = m.svc.AddWeek(mileage)
			} else {
				err = m.svc.UpdateWeek(position, mileage)
			}
			if err != nil {
				return workloadLoadedMsg{err: err}
			}
			return m.loadData()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the workload screen
func (m WorkloadModel) View() string {
	if m.loading {
		return "\n  Loading workload history..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Acute:Chronic Workload Ratio"))
	b.WriteString("\n")

	if m.data == nil || len(m.data.Weeks) == 0 {
		b.WriteString(statusStyle.Render("No weeks logged yet. Press 'a' to add your first week.\n"))
	} else {
		b.WriteString(m.renderTable())
		if chart := m.renderChart(); chart != "" {
			b.WriteString("\n")
			b.WriteString(cardStyle.Render(chart))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m WorkloadModel) renderTable() string {
	header := tableHeaderStyle.Render(fmt.Sprintf("%-6s %-12s %-8s %-16s", "Week", "Mileage", "ACWR", "Risk"))

	var rows []string
	for i, w := range m.data.Weeks {
		line := fmt.Sprintf("%-6d %-12s %-8s %-16s",
			w.Position+1,
			m.units.FormatMileage(w.Mileage),
			m.units.FormatRatio(w.ACWR),
			w.Risk,
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, riskStyle(w.Risk).Render(tableCellStyle.Render(line)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}

func (m WorkloadModel) renderChart() string {
	if len(m.data.Mileages) < 2 {
		return ""
	}

	graph := asciigraph.Plot(m.data.Mileages,
		asciigraph.Height(8),
		asciigraph.Caption("Weekly mileage"),
	)
	return graph
}

func (m WorkloadModel) renderFooter() string {
	switch m.mode {
	case workloadAdding:
		return "New week mileage: " + m.input.View() + statusStyle.Render("  enter: save  esc: cancel")
	case workloadEditing:
		return "Edit mileage: " + m.input.View() + statusStyle.Render("  enter: save  esc: cancel")
	default:
		return statusStyle.Render("j/k: move  a: add week  e: edit  d: delete")
	}
}

// riskStyle picks the color for a risk band label
func riskStyle(risk string) lipgloss.Style {
	switch risk {
	case engine.RiskOptimal:
		return riskOptimalStyle
	case engine.RiskHigh:
		return riskHighStyle
	case engine.RiskVeryHigh:
		return riskVeryHighStyle
	default:
		return riskLowStyle
	}
}
