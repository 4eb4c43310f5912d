package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lilyhop/internal/core"
	"github.com/vovakirdan/lilyhop/internal/game"
	"github.com/vovakirdan/lilyhop/internal/session"
)

// flashTicks is how long a HUD flash stays up, in ticks at 60 fps.
const flashTicks = 90

// Model is the Bubble Tea model for a LilyHop session. Until a nickname is
// registered it shows the nickname prompt, then the game.
type Model struct {
	ctrl   *session.Controller
	screen *core.Screen
	config core.RuntimeConfig
	keys   GameKeyMap
	mapper *KeyMapper
	help   help.Model

	prompt    textinput.Model
	prompting bool
	promptErr string

	board      Scoreboard
	showScores bool

	flash     string
	flashLeft int
	lastRun   uint64
	landings  int
	lastPhase game.Phase
	quitting  bool
}

// NewModel creates a model driving ctrl. The controller must be initialized.
func NewModel(ctrl *session.Controller, cfg core.RuntimeConfig) Model {
	keys := DefaultGameKeyMap()

	prompt := textinput.New()
	prompt.Placeholder = "nickname"
	prompt.CharLimit = session.MaxNicknameLen
	prompt.Width = session.MaxNicknameLen + 1
	prompt.Prompt = "> "

	m := Model{
		ctrl:      ctrl,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:    cfg,
		keys:      keys,
		mapper:    NewKeyMapper(keys),
		help:      help.New(),
		prompt:    prompt,
		prompting: ctrl.Nickname() == "",
		board:     NewScoreboard(cfg.ScreenW, cfg.ScreenH),
		lastRun:   ctrl.Simulation().Run(),
		lastPhase: ctrl.Simulation().Phase(),
	}
	if m.prompting {
		m.prompt.Focus()
	}
	return m
}

// Init starts the tick loop, and the cursor blink while prompting.
func (m Model) Init() tea.Cmd {
	if m.prompting {
		return tea.Batch(textinput.Blink, tickCmd(m.config.TickRate))
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.prompting && !m.showScores && m.mapper.MapMouse(msg) == core.ActionJump {
			m.ctrl.HandleInput()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePromptKey processes keys while the nickname prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		err := m.ctrl.Register(m.prompt.Value())
		switch {
		case errors.Is(err, session.ErrEmptyNickname):
			m.promptErr = "Please enter a nickname."
		case errors.Is(err, session.ErrNicknameTooLong):
			m.promptErr = fmt.Sprintf("At most %d characters.", session.MaxNicknameLen)
		case err != nil:
			m.promptErr = err.Error()
		default:
			m.prompting = false
			m.promptErr = ""
			m.prompt.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.mapper.MapKey(msg)

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		switch {
		case action == core.ActionScores, m.mapper.IsClose(msg):
			m.showScores = false
			return m, nil
		}
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}

	switch action {
	case core.ActionJump:
		m.ctrl.HandleInput()
	case core.ActionScores:
		m.board.SetPlayers(m.ctrl.Leaderboard(10), m.ctrl.Nickname())
		m.showScores = true
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	// Last row is the help bar
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one tick interval.
// The overlay does not pause the run.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	sim := m.ctrl.Simulation()
	sim.AdvanceTick(tickInterval(m.config.TickRate))

	snap := sim.Snapshot()
	cfg := sim.Config()

	if snap.Run != m.lastRun {
		m.lastRun = snap.Run
		m.landings = 0
	}
	if snap.Landings > m.landings && snap.Outcome == game.OutcomeGold {
		m.setFlash(fmt.Sprintf("GOLD +%d", cfg.Lily.GoldScore))
	}
	m.landings = snap.Landings
	if m.lastPhase == game.PhaseRunning && snap.Phase == game.PhaseGameOver && m.ctrl.LastRun().NewBest {
		m.setFlash("NEW BEST!")
	}
	m.lastPhase = snap.Phase

	if m.flashLeft > 0 {
		m.flashLeft--
		if m.flashLeft == 0 {
			m.flash = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashLeft = flashTicks * max(m.config.TickRate, 1) / 60
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.prompting {
		return m.promptView()
	}
	if m.showScores {
		return m.board.View()
	}

	sim := m.ctrl.Simulation()
	game.Render(m.screen, sim.Config(), sim.Snapshot(), game.HUD{
		Nickname:  m.ctrl.Nickname(),
		HighScore: m.ctrl.HighScore(),
		Flash:     m.flash,
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// promptView renders the nickname prompt.
func (m Model) promptView() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	top := max((m.config.ScreenH-7)/2, 0)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(titleStyle.Render("LILY HOP"), m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a nickname for the leaderboard", m.config.ScreenW))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.prompt.View(), m.config.ScreenW))
	b.WriteString("\n\n")
	if m.promptErr != "" {
		b.WriteString(centerText(errStyle.Render(m.promptErr), m.config.ScreenW))
	} else {
		b.WriteString(centerText(hintStyle.Render("enter to play, esc to quit"), m.config.ScreenW))
	}
	return b.String()
}

// Run starts the Bubble Tea program for ctrl.
func Run(ctrl *session.Controller, cfg core.RuntimeConfig) error {
	model := NewModel(ctrl, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks jump
	)

	_, err := p.Run()
	return err
}
