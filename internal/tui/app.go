package tui

import (
	"traincalc/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenWorkload Screen = iota
	ScreenPredictor
	ScreenRacePlan
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	workload  WorkloadModel
	predictor PredictorModel
	racePlan  RacePlanModel
	help      HelpModel

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(workloadSvc *service.WorkloadService, predictionSvc *service.PredictionService, planSvc *service.PlanService, units Units) *App {
	return &App{
		screen:    ScreenWorkload,
		workload:  NewWorkloadModel(workloadSvc, units),
		predictor: NewPredictorModel(predictionSvc, units),
		racePlan:  NewRacePlanModel(planSvc, units),
		help:      NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.workload.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings, suppressed while a form has focus
		if !a.editing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenWorkload
				return a, a.workload.Init()
			case "2":
				a.screen = ScreenPredictor
				return a, a.predictor.Init()
			case "3":
				a.screen = ScreenRacePlan
				return a, a.racePlan.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenWorkload:
		var m tea.Model
		m, cmd = a.workload.Update(msg)
		a.workload = m.(WorkloadModel)
	case ScreenPredictor:
		var m tea.Model
		m, cmd = a.predictor.Update(msg)
		a.predictor = m.(PredictorModel)
	case ScreenRacePlan:
		var m tea.Model
		m, cmd = a.racePlan.Update(msg)
		a.racePlan = m.(RacePlanModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// editing reports whether the active screen currently owns the keyboard
func (a *App) editing() bool {
	switch a.screen {
	case ScreenWorkload:
		return a.workload.editing()
	case ScreenPredictor:
		return a.predictor.editing()
	case ScreenRacePlan:
		return a.racePlan.editing()
	default:
		return false
	}
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenWorkload:
		content = a.workload.View()
	case ScreenPredictor:
		content = a.predictor.View()
	case ScreenRacePlan:
		content = a.racePlan.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Runner's Training Calculators")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Workload", ScreenWorkload},
		{"2", "Predictor", ScreenPredictor},
		{"3", "Race Plan", ScreenRacePlan},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
