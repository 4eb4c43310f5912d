package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lilyhop/internal/session"
)

// Scoreboard layout constants
const (
	scoreboardRows = 10
	tableMinWidth  = 40
)

// Scoreboard is the leaderboard overlay shown over the game.
type Scoreboard struct {
	players  []session.Player
	nickname string
	table    table.Model
	width    int
	height   int
}

// NewScoreboard creates an empty scoreboard sized for the terminal.
func NewScoreboard(width, height int) Scoreboard {
	s := Scoreboard{width: width, height: height}
	s.table = s.createTable()
	return s
}

// createTable creates a new table with appropriate columns.
func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: session.MaxNicknameLen + 2},
		{Title: "Best", Width: 6},
		{Title: "Since", Width: 12},
	}

	height := scoreboardRows + 1
	if s.height > 0 && s.height-8 < height {
		height = max(s.height-8, 3)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// SetPlayers replaces the rows. The row of nickname, if present, is selected.
func (s *Scoreboard) SetPlayers(players []session.Player, nickname string) {
	s.players = players
	s.nickname = nickname
	s.updateTableRows()
}

// updateTableRows updates the table with current players.
func (s *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(s.players))
	cursor := 0
	for i, p := range s.players {
		name := p.Nickname
		if p.IsSeeded {
			name += " *"
		}
		if p.Nickname == s.nickname {
			cursor = i
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			name,
			fmt.Sprintf("%d", p.HighScore),
			p.CreatedAt.Format("Jan 02 2006"),
		}
	}
	s.table.SetRows(rows)
	s.table.SetCursor(cursor)
}

// Resize adapts the table to a new terminal size.
func (s *Scoreboard) Resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.updateTableRows()
}

// Update passes scrolling keys to the table.
func (s Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View renders the leaderboard.
func (s Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("LEADERBOARD"), s.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(s.players) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No players yet.\nPlay a run to set a highscore!")
	} else {
		content = s.table.View()
	}

	box := boxStyle.Width(max(lipgloss.Width(content), tableMinWidth)).Render(content)
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(centerText(line, s.width))
		b.WriteString("\n")
	}

	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(noteStyle.Render("* built-in player"), s.width))

	return b.String()
}
