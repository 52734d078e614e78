package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// LevelMenuModel lets the player pick the level a campaign starts at.
type LevelMenuModel struct {
	levels    []levels.Level
	stars     map[int]int // best stars per level ID
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a level picker. Best stars are read from the
// store when one is available.
func NewLevelMenuModel(lt levels.Table, store *storage.Store, gameID string, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels:    lt.Levels,
		stars:     make(map[int]int),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.BestLevelResults(gameID); err == nil {
			for id, b := range best {
				m.stars[id] = b.BestStars
			}
		}
	}
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].ID
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level list.
func (m LevelMenuModel) View() string {
	if m.quitting || m.back || m.selected > 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-16s %s  Target: %-6d Moves: %d",
			cursor, lvl.ID, lvl.Name, starsText(m.stars[lvl.ID]), lvl.Target, lvl.Moves)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen level ID, or 0 if none was chosen.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector shows the level picker and returns the chosen level,
// or 0 when the player backed out.
func RunLevelSelector(lt levels.Table, store *storage.Store, gameID string, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelMenuModel(lt, store, gameID, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return 0, nil
	}

	return m.Selected(), nil
}
