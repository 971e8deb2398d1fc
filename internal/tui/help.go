package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

var helpKeyStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(primaryColor).
	Width(14)

var helpSectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(secondaryColor)

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Workload tracker"},
		{"2", "Race predictor"},
		{"3", "Race plan"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	}))

	sections = append(sections, m.renderSection("Workload", []keyHelp{
		{"j / k", "Move between weeks"},
		{"a", "Add a week of mileage"},
		{"e", "Edit selected week"},
		{"d", "Delete selected week"},
	}))

	sections = append(sections, m.renderSection("Predictor", []keyHelp{
		{"tab", "Next form field"},
		{"ctrl+u", "Toggle km/mi on a distance field"},
		{"enter", "Run prediction"},
		{"ctrl+x", "Clear history"},
	}))

	sections = append(sections, m.renderSection("Race Plan", []keyHelp{
		{"p", "Edit name, target, base pace"},
		{"s / b", "Add split / add break"},
		{"x / X", "Delete split / delete break"},
		{"u", "Switch plan between km and mi"},
	}))

	sections = append(sections, m.renderMetricsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, helpSectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+helpKeyStyle.Render(k.key)+statusStyle.Render(k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, helpSectionStyle.Render("Metrics Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"ACWR", "Acute:chronic workload ratio - this week's mileage vs the trailing 4-week average. 0.8-1.3 is the sweet spot."},
		{"Riegel prediction", "Extrapolates a race time from a known result. Doubling the distance costs slightly more than double the time."},
		{"Pace adjustment", "Seconds per km/mi added to (or subtracted from) base pace for one split."},
		{"Discrepancy", "Target race distance minus the distance your splits cover. Informational only."},
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	for _, metric := range metrics {
		lines = append(lines, "  "+nameStyle.Render(metric.name))
		lines = append(lines, "  "+statusStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
