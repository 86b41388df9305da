package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lavaleap/internal/core"
	"lavaleap/internal/session"
	"lavaleap/internal/storage"
)

// Model is the Bubble Tea model driving a campaign session.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *KeyState
	tapped   core.InputFrame // single-tick actions, cleared after each tick
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(sess *session.Session, cfg core.RuntimeConfig) Model {
	return Model{
		sess:     sess,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		config:   cfg,
		keys:     NewKeyMapper(),
		held:     NewKeyState(),
		tapped:   core.NewInputFrame(),
	}
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Held actions refresh the hold
// tracker; everything else fires once on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionPause:
		m.paused = !m.paused
	case IsHeldAction(action):
		m.held.Press(action)
		// A direction press cancels the opposite hold so a quick turn
		// does not fight the previous key's hold window.
		switch action {
		case core.ActionLeft:
			m.held.Release(core.ActionRight)
		case core.ActionRight:
			m.held.Release(core.ActionLeft)
		}
	case action != core.ActionNone:
		m.tapped.Set(action)
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.tapped.Clone()
	m.held.Apply(&frame)

	dt := 1.0 / float64(m.config.TickRate)
	if err := m.sess.Tick(dt, frame); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.held.Decay()
	m.tapped.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.sess, m.paused)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a campaign session.
func Run(sess *session.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	if store != nil {
		sess.SetRecorder(store)
	}

	model := NewModel(sess, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
