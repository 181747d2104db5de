package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"boxpick/internal/config"
	"boxpick/internal/domain"
	"boxpick/internal/eventbus"
	"boxpick/internal/selection"
	"boxpick/internal/ui/commands"
	"boxpick/internal/ui/handlers"
	"boxpick/internal/ui/input"
	inputtypes "boxpick/internal/ui/input/types"
	"boxpick/internal/ui/state"
	"boxpick/internal/ui/views"
)

// Options tweak model behaviour that does not come from the config file
type Options struct {
	// ShowReady prints the ready marker for the end-to-end harness
	ShowReady bool
	// HasConfigFile reports whether a config file existed at start
	HasConfigFile bool
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	state     *state.AppState
	selection *selection.Service
	opts      Options

	width  int
	height int
	help   help.Model

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around an existing selection service.
// configSvc may be nil, in which case the policy cannot be saved.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, svc *selection.Service, opts Options) *Model {
	appState := state.NewAppState()
	appState.ShowFullHelp = cfg.UISettings.ShowFullHelp

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		state:        appState,
		selection:    svc,
		opts:         opts,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}
	m.help.ShowAll = appState.ShowFullHelp

	m.eventHandler = handlers.NewEventHandler(appState)
	m.cmdExecutor = commands.NewExecutor(appState, svc)
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selection returns the current box flags
func (m *Model) Selection() domain.SelectionState {
	return m.selection.State()
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.bus != nil {
		m.bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: m.opts.HasConfigFile})
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions := m.inputHandler.HandleKey(msg, m)

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case configSavedMsg:
		if msg.err != nil {
			return m, m.reportError(fmt.Sprintf("save failed: %v", msg.err), msg.err)
		}
		m.config = msg.cfg
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			return m, m.reportError("help pager failed", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if handled, cmd := m.cmdExecutor.Execute(action); handled {
		return cmd
	}

	switch action.(type) {
	case inputtypes.ToggleHelpAction:
		m.state.ShowFullHelp = !m.state.ShowFullHelp
		m.help.ShowAll = m.state.ShowFullHelp

	case inputtypes.OpenHelpPagerAction:
		content := m.helpRenderer.RenderHelpContent()
		ops := m.helpOps
		return func() tea.Msg {
			return helpPagerMsg{err: ops.ShowHelpInPager(content)}
		}

	case inputtypes.SavePolicyAction:
		return m.savePolicy()

	case inputtypes.QuitAction:
		m.state.Quitting = true
		log.Info().
			Interface("selection", m.selection.State()).
			Msg("quitting")
		return tea.Quit

	default:
		log.Debug().Str("action", action.Type()).Msg("unhandled action")
	}

	return nil
}

// reportError logs err and raises an ErrorEvent. Without a bus the
// event goes straight to the status line.
func (m *Model) reportError(message string, err error) tea.Cmd {
	log.Error().Err(err).Msg(message)

	event := eventbus.ErrorEvent{Message: message, Err: err}
	if m.bus != nil {
		m.bus.Publish(event)
		return nil
	}
	return m.eventHandler.HandleEvent(event)
}

// savePolicy stores the active policy as the configured default
func (m *Model) savePolicy() tea.Cmd {
	if m.configSvc == nil {
		m.state.SetStatus(views.StatusWarning, "No config file to save to")
		return nil
	}

	cfg := *m.config
	cfg.Policy = m.selection.Policy()
	svc := m.configSvc
	return func() tea.Msg {
		err := svc.Save(&cfg)
		if err == nil {
			log.Info().Str("path", svc.Path()).Stringer("policy", cfg.Policy).Msg("config saved")
		}
		return configSavedMsg{cfg: &cfg, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Quitting {
		return ""
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Selection:     m.selection.State(),
		Cursor:        m.state.Cursor,
		Policy:        m.selection.Policy(),
		StatusMessage: m.state.StatusMessage,
		StatusKind:    m.state.StatusKind,
		Confirming:    m.inputHandler.CurrentMode() == inputtypes.ModeClearConfirm,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
		ShowReady:     m.opts.ShowReady,
	})
}

// CursorBox implements inputtypes.Context
func (m *Model) CursorBox() string {
	return m.state.Cursor.String()
}

// SelectedCount implements inputtypes.Context
func (m *Model) SelectedCount() int {
	return m.selection.GetCount()
}

// HasSelection implements inputtypes.Context
func (m *Model) HasSelection() bool {
	return m.selection.GetCount() > 0
}
