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
)

// Predictor form field indexes
const (
	fieldKnownDistance = iota
	fieldKnownHours
	fieldKnownMinutes
	fieldKnownSeconds
	fieldTargetDistance
	predictorFieldCount
)

// PredictorModel is the race-time predictor screen model
type PredictorModel struct {
	svc   *service.PredictionService
	units Units

	inputs     []textinput.Model
	focused    int
	knownUnit  engine.Unit
	targetUnit engine.Unit

	// active is whether the form owns the keyboard; esc releases it so
	// global navigation keys work again
	active bool

	result  *service.PredictionResult
	history []servicePrediction
	err     error
}

// servicePrediction aliases the stored prediction for rendering
type servicePrediction struct {
	Known     string
	Target    string
	Predicted engine.Duration
}

// NewPredictorModel creates a new predictor screen model
func NewPredictorModel(svc *service.PredictionService, units Units) PredictorModel {
	labels := []struct {
		placeholder string
		width       int
	}{
		{"distance", 10},
		{"hh", 4},
		{"mm", 4},
		{"ss", 4},
		{"distance", 10},
	}

	inputs := make([]textinput.Model, predictorFieldCount)
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = 8
		ti.Width = l.width
		inputs[i] = ti
	}
	inputs[fieldKnownDistance].Focus()

	unit := units.Preferred()
	return PredictorModel{
		svc:        svc,
		units:      units,
		inputs:     inputs,
		knownUnit:  unit,
		targetUnit: unit,
		active:     true,
	}
}

// Init initializes the predictor screen
func (m PredictorModel) Init() tea.Cmd {
	return tea.Batch(m.loadHistory, textinput.Blink)
}

type predictorHistoryMsg struct {
	history []servicePrediction
	err     error
}

type predictorResultMsg struct {
	result *service.PredictionResult
	err    error
}

func (m PredictorModel) loadHistory() tea.Msg {
	records, err := m.svc.History()
	if err != nil {
		return predictorHistoryMsg{err: err}
	}

	history := make([]servicePrediction, len(records))
	for i, r := range records {
		history[i] = servicePrediction{
			Known:     fmt.Sprintf("%.2f %s in %s", r.KnownDistance, r.KnownUnit, engine.DurationFromSeconds(float64(r.KnownSeconds))),
			Target:    fmt.Sprintf("%.2f %s", r.TargetDistance, r.TargetUnit),
			Predicted: engine.DurationFromSeconds(float64(r.PredictedSeconds)),
		}
	}
	return predictorHistoryMsg{history: history}
}

func (m PredictorModel) editing() bool {
	return m.active
}

// Update handles messages
func (m PredictorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case predictorHistoryMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.history = msg.history
		return m, nil

	case predictorResultMsg:
		m.err = msg.err
		m.result = msg.result
		return m, m.loadHistory

	case tea.KeyMsg:
		if !m.active {
			switch msg.String() {
			case "e", "enter", "tab":
				m.active = true
				m.inputs[m.focused].Focus()
				return m, textinput.Blink
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.active = false
			m.inputs[m.focused].Blur()
			return m, nil
		case "tab", "down":
			m.setFocus((m.focused + 1) % predictorFieldCount)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.setFocus((m.focused + predictorFieldCount - 1) % predictorFieldCount)
			return m, textinput.Blink
		case "ctrl+u":
			// Toggle the unit of whichever distance field has focus
			if m.focused == fieldKnownDistance {
				m.knownUnit = otherUnit(m.knownUnit)
			} else if m.focused == fieldTargetDistance {
				m.targetUnit = otherUnit(m.targetUnit)
			}
			return m, nil
		case "ctrl+x":
			return m, func() tea.Msg {
				if err := m.svc.ClearHistory(); err != nil {
					return predictorHistoryMsg{err: err}
				}
				return m.loadHistory()
			}
		case "enter":
			return m, m.predict()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *PredictorModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

func (m PredictorModel) predict() tea.Cmd {
	known := engine.Performance{
		Distance: engine.Distance{
			Value: parseFloat(m.inputs[fieldKnownDistance].Value()),
			Unit:  m.knownUnit,
		},
		Time: engine.Duration{
			Hours:   parseInt(m.inputs[fieldKnownHours].Value()),
			Minutes: parseInt(m.inputs[fieldKnownMinutes].Value()),
			Seconds: parseInt(m.inputs[fieldKnownSeconds].Value()),
		},
	}
	target := engine.Distance{
		Value: parseFloat(m.inputs[fieldTargetDistance].Value()),
		Unit:  m.targetUnit,
	}

	return func() tea.Msg {
		result, err := m.svc.Predict(known, target)
		return predictorResultMsg{result: result, err: err}
	}
}

// View renders the predictor screen
func (m PredictorModel) View() string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render("Race Time Predictor (Riegel)"))
	b.WriteString("\n")

	form := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s %s %s",
			metricLabelStyle.Render("Known distance"),
			m.inputs[fieldKnownDistance].View(),
			statusStyle.Render(string(m.knownUnit)),
		),
		fmt.Sprintf("%s %s : %s : %s",
			metricLabelStyle.Render("Known time"),
			m.inputs[fieldKnownHours].View(),
			m.inputs[fieldKnownMinutes].View(),
			m.inputs[fieldKnownSeconds].View(),
		),
		fmt.Sprintf("%s %s %s",
			metricLabelStyle.Render("Target distance"),
			m.inputs[fieldTargetDistance].View(),
			statusStyle.Render(string(m.targetUnit)),
		),
	)
	b.WriteString(cardStyle.Render(form))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.result != nil {
		result := lipgloss.JoinVertical(lipgloss.Left,
			metricLabelStyle.Render("Predicted time")+metricValueStyle.Render(m.result.Predicted.String()),
			metricLabelStyle.Render("Predicted pace")+metricValueStyle.Render(m.result.Pace+"/"+string(m.result.Target.Unit)),
		)
		b.WriteString(cardStyle.Render(result))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString(cardTitleStyle.Render("Recent predictions"))
		b.WriteString("\n")
		for _, h := range m.history {
			b.WriteString(fmt.Sprintf("  %s -> %s in %s\n", h.Known, h.Target, h.Predicted))
		}
	}

	if m.active {
		b.WriteString(statusStyle.Render("tab: next field  ctrl+u: toggle unit  enter: predict  ctrl+x: clear history  esc: leave form"))
	} else {
		b.WriteString(statusStyle.Render("e: edit form  1/2/3: switch screen  q: quit"))
	}
	return b.String()
}

func otherUnit(u engine.Unit) engine.Unit {
	if u == engine.UnitKm {
		return engine.UnitMi
	}
	return engine.UnitKm
}

// parseFloat reads a raw numeric field; malformed input counts as zero
func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// parseInt reads a raw integer field; malformed input counts as zero
func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}
