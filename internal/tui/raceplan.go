package tui

import (
	"fmt"
	"strings"

	"traincalc/internal/engine"
	"traincalc/internal/service"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// racePlanMode is what the race plan screen is currently doing
type racePlanMode int

const (
	planBrowsing racePlanMode = iota
	planEditingBasics
	planAddingSplit
	planAddingBreak
)

// Basics form fields
const (
	basicsName = iota
	basicsTarget
	basicsPaceMinutes
	basicsPaceSeconds
	basicsFieldCount
)

// Split form fields
const (
	splitDistance = iota
	splitAdjustment
	splitDescription
	splitFieldCount
)

// Break form fields
const (
	breakDuration = iota
	breakAt
	breakDescription
	breakFieldCount
)

var breakTypes = []string{"drink", "toilet", "crowd"}

// RacePlanModel is the race pacing plan screen model
type RacePlanModel struct {
	svc   *service.PlanService
	units Units

	plan    *service.PlanView
	mode    racePlanMode
	inputs  []textinput.Model
	focused int

	splitHilly    bool
	breakTypeIdx  int
	splitCursor   int
	loading       bool
	err           error
}

// NewRacePlanModel creates a new race plan screen model
func NewRacePlanModel(svc *service.PlanService, units Units) RacePlanModel {
	return RacePlanModel{
		svc:     svc,
		units:   units,
		loading: true,
	}
}

// Init initializes the race plan screen
func (m RacePlanModel) Init() tea.Cmd {
	return m.loadPlan
}

type planLoadedMsg struct {
	plan *service.PlanView
	err  error
}

func (m RacePlanModel) loadPlan() tea.Msg {
	plan, err := m.svc.GetActivePlan()
	return planLoadedMsg{plan: plan, err: err}
}

func (m RacePlanModel) editing() bool {
	return m.mode != planBrowsing
}

// Update handles messages
func (m RacePlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.plan = msg.plan
		if m.plan != nil && m.splitCursor >= len(m.plan.Splits) {
			m.splitCursor = len(m.plan.Splits) - 1
		}
		if m.splitCursor < 0 {
			m.splitCursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != planBrowsing {
			return m.updateForm(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m RacePlanModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.plan == nil {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.splitCursor < len(m.plan.Splits)-1 {
			m.splitCursor++
		}
	case "k", "up":
		if m.splitCursor > 0 {
			m.splitCursor--
		}
	case "u":
		id, unit := m.plan.ID, otherUnit(m.plan.Unit)
		return m, func() tea.Msg {
			if err := m.svc.SwitchUnit(id, unit); err != nil {
				return planLoadedMsg{err: err}
			}
			return m.loadPlan()
		}
	case "p":
		m.mode = planEditingBasics
		m.buildBasicsForm()
		return m, textinput.Blink
	case "s":
		m.mode = planAddingSplit
		m.splitHilly = false
		m.buildSplitForm()
		return m, textinput.Blink
	case "b":
		m.mode = planAddingBreak
		m.breakTypeIdx = 0
		m.buildBreakForm()
		return m, textinput.Blink
	case "x":
		if len(m.plan.Splits) > 0 {
			id, pos := m.plan.ID, m.plan.Splits[m.splitCursor].Position
			return m, func() tea.Msg {
				if err := m.svc.RemoveSplit(id, pos); err != nil {
					return planLoadedMsg{err: err}
				}
				return m.loadPlan()
			}
		}
	case "X":
		if len(m.plan.Breaks) > 0 {
			breakID := m.plan.Breaks[len(m.plan.Breaks)-1].ID
			return m, func() tea.Msg {
				if err := m.svc.RemoveBreak(breakID); err != nil {
					return planLoadedMsg{err: err}
				}
				return m.loadPlan()
			}
		}
	}
	return m, nil
}

func (m *RacePlanModel) buildBasicsForm() {
	m.inputs = newInputs([]inputSpec{
		{"name", 20},
		{"distance", 10},
		{"mm", 4},
		{"ss", 4},
	})
	m.inputs[basicsName].SetValue(m.plan.Name)
	m.inputs[basicsTarget].SetValue(fmt.Sprintf("%.2f", m.plan.TargetDistance))
	pace := m.plan.BasePace.TotalSeconds()
	m.inputs[basicsPaceMinutes].SetValue(fmt.Sprintf("%d", pace/60))
	m.inputs[basicsPaceSeconds].SetValue(fmt.Sprintf("%d", pace%60))
	m.focused = 0
	m.inputs[0].Focus()
}

func (m *RacePlanModel) buildSplitForm() {
	m.inputs = newInputs([]inputSpec{
		{"distance", 10},
		{"+/- sec per unit", 16},
		{"description", 24},
	})
	m.focused = 0
	m.inputs[0].Focus()
}

func (m *RacePlanModel) buildBreakForm() {
	m.inputs = newInputs([]inputSpec{
		{"seconds", 8},
		{"at distance", 12},
		{"description", 24},
	})
	m.focused = 0
	m.inputs[0].Focus()
}

func (m RacePlanModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = planBrowsing
		m.inputs = nil
		return m, nil
	case "tab", "down":
		m.setFocus((m.focused + 1) % len(m.inputs))
		return m, textinput.Blink
	case "shift+tab", "up":
		m.setFocus((m.focused + len(m.inputs) - 1) % len(m.inputs))
		return m, textinput.Blink
	case "ctrl+h":
		if m.mode == planAddingSplit {
			m.splitHilly = !m.splitHilly
			return m, nil
		}
	case "ctrl+t":
		if m.mode == planAddingBreak {
			m.breakTypeIdx = (m.breakTypeIdx + 1) % len(breakTypes)
			return m, nil
		}
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *RacePlanModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

func (m RacePlanModel) submitForm() (tea.Model, tea.Cmd) {
	mode := m.mode
	id := m.plan.ID

	var cmd func() error
	switch mode {
	case planEditingBasics:
		name := strings.TrimSpace(m.inputs[basicsName].Value())
		target := parseFloat(m.inputs[basicsTarget].Value())
		pace := engine.Duration{
			Minutes: parseInt(m.inputs[basicsPaceMinutes].Value()),
			Seconds: parseInt(m.inputs[basicsPaceSeconds].Value()),
		}
		cmd = func() error { return m.svc.SetBasics(id, name, target, pace) }
	case planAddingSplit:
		distance := parseFloat(m.inputs[splitDistance].Value())
		adjustment := parseInt(m.inputs[splitAdjustment].Value())
		hilly := m.splitHilly
		description := strings.TrimSpace(m.inputs[splitDescription].Value())
		cmd = func() error { return m.svc.AddSplit(id, distance, adjustment, hilly, description) }
	case planAddingBreak:
		breakType := breakTypes[m.breakTypeIdx]
		duration := parseInt(m.inputs[breakDuration].Value())
		at := parseFloat(m.inputs[breakAt].Value())
		description := strings.TrimSpace(m.inputs[breakDescription].Value())
		cmd = func() error { return m.svc.AddBreak(id, breakType, duration, at, description) }
	default:
		return m, nil
	}

	m.mode = planBrowsing
	m.inputs = nil

	return m, func() tea.Msg {
		if err := cmd(); err != nil {
			return planLoadedMsg{err: err}
		}
		return m.loadPlan()
	}
}

// View renders the race plan screen
func (m RacePlanModel) View() string {
	if m.loading {
		return "\n  Loading race plan..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}
	if m.plan == nil {
		return "\n  No plan."
	}

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Race Pacing Plan: " + m.plan.Name))
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(m.renderSummary()))
	b.WriteString("\n")
	b.WriteString(m.renderSplits())
	b.WriteString("\n")
	b.WriteString(m.renderBreaks())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m RacePlanModel) renderSummary() string {
	unit := m.plan.Unit
	discrepancy := fmt.Sprintf("%.2f %s", m.plan.Discrepancy, unit)
	if m.plan.Discrepancy != 0 {
		discrepancy = warningStyleFor(m.plan.Discrepancy).Render(discrepancy)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		metricLabelStyle.Render("Target distance")+metricValueStyle.Render(m.units.FormatDistance(m.plan.TargetDistance, unit)),
		metricLabelStyle.Render("Base pace")+metricValueStyle.Render(m.units.FormatPace(m.plan.BasePace, unit)),
		metricLabelStyle.Render("Est. finish time")+metricValueStyle.Render(m.plan.TotalTime.String()),
		metricLabelStyle.Render("Splits cover")+metricValueStyle.Render(m.units.FormatDistance(m.plan.SplitDistance, unit)),
		metricLabelStyle.Render("Discrepancy")+discrepancy,
		metricLabelStyle.Render("Break time")+metricValueStyle.Render(engine.DurationFromSeconds(float64(m.plan.BreakSeconds)).String()),
	)
}

func (m RacePlanModel) renderSplits() string {
	if len(m.plan.Splits) == 0 {
		return statusStyle.Render("No splits yet. Press 's' to add one.")
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-4s %-10s %-8s %-8s %-10s %-6s %s",
		"#", "Distance", "Adjust", "Pace", "Time", "Hilly", "Notes"))

	rows := []string{header}
	for i, sp := range m.plan.Splits {
		hilly := ""
		if sp.IsHilly {
			hilly = "yes"
		}
		line := fmt.Sprintf("%-4d %-10.2f %+-8d %-8s %-10s %-6s %s",
			sp.Position+1, sp.Distance, sp.Adjustment, sp.EffectivePace,
			sp.SegmentTime, hilly, sp.Description)
		if i == m.splitCursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableCellStyle.Render(line))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m RacePlanModel) renderBreaks() string {
	if len(m.plan.Breaks) == 0 {
		return statusStyle.Render("No breaks planned.")
	}

	var rows []string
	rows = append(rows, tableHeaderStyle.Render(fmt.Sprintf("%-8s %-10s %-12s %s", "Type", "Duration", "At", "Notes")))
	for _, br := range m.plan.Breaks {
		rows = append(rows, tableCellStyle.Render(fmt.Sprintf("%-8s %-10s %-12.2f %s",
			br.Type, engine.DurationFromSeconds(float64(br.Duration)).String(), br.AtDistance, br.Description)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m RacePlanModel) renderFooter() string {
	switch m.mode {
	case planEditingBasics:
		return m.renderForm("Edit plan", []string{"Name", "Target", "Pace min", "Pace sec"}, "")
	case planAddingSplit:
		hilly := "flat"
		if m.splitHilly {
			hilly = "hilly"
		}
		return m.renderForm("New split", []string{"Distance", "Adjustment", "Notes"},
			fmt.Sprintf("ctrl+h: terrain (%s)", hilly))
	case planAddingBreak:
		return m.renderForm("New break", []string{"Duration", "At", "Notes"},
			fmt.Sprintf("ctrl+t: type (%s)", breakTypes[m.breakTypeIdx]))
	default:
		return statusStyle.Render("p: edit plan  s: add split  b: add break  x: delete split  X: delete break  u: switch km/mi")
	}
}

func (m RacePlanModel) renderForm(title string, labels []string, extra string) string {
	var fields []string
	for i, in := range m.inputs {
		fields = append(fields, metricLabelStyle.Render(labels[i])+in.View())
	}
	help := "enter: save  esc: cancel  tab: next field"
	if extra != "" {
		help = extra + "  " + help
	}
	fields = append(fields, statusStyle.Render(help))
	return cardTitleStyle.Render(title) + "\n" + lipgloss.JoinVertical(lipgloss.Left, fields...)
}

// warningStyleFor colors a discrepancy by direction
func warningStyleFor(v float64) lipgloss.Style {
	if v > 0 {
		return riskHighStyle
	}
	return riskVeryHighStyle
}

type inputSpec struct {
	placeholder string
	width       int
}

func newInputs(specs []inputSpec) []textinput.Model {
	inputs := make([]textinput.Model, len(specs))
	for i, s := range specs {
		ti := textinput.New()
		ti.Placeholder = s.placeholder
		ti.CharLimit = 32
		ti.Width = s.width
		inputs[i] = ti
	}
	return inputs
}
