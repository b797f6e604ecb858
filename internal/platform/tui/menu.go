package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hang2323-brian/snake-game/internal/config"
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}

var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "slow start, speeds up as you eat",
	config.DifficultyNormal: "classic pace",
	config.DifficultyHard:   "fast from the first move",
	config.DifficultyFixed:  "constant speed, never speeds up",
}

// DifficultyMenuModel lets the player pick a difficulty before a local game.
type DifficultyMenuModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	best      map[config.DifficultyPreset]int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
}

// NewDifficultyMenuModel creates a menu with the cursor on initial.
// best maps presets to high scores and may be nil.
func NewDifficultyMenuModel(initial config.DifficultyPreset, best map[config.DifficultyPreset]int, width, height int) DifficultyMenuModel {
	m := DifficultyMenuModel{
		presets:   config.Presets,
		best:      best,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.presets {
		if p == initial {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the difficulty list.
func (m DifficultyMenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(title.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString("Select difficulty:\n\n")

	for i, p := range m.presets {
		cursor, name := "  ", fmt.Sprintf("%-7s", p)
		if i == m.cursor {
			cursor, name = "> ", selected.Render(name)
		}
		line := cursor + name + " " + dim.Render(presetBlurbs[p])
		if best := m.best[p]; best > 0 {
			line += dim.Render(fmt.Sprintf("  (best %d)", best))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("Enter: Select  |  Q: Quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen preset, or false if the player quit.
func (m DifficultyMenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return m.presets[m.cursor], true
}

// RunDifficultyMenu shows the picker and returns the chosen preset.
// ok is false when the player quit without choosing.
func RunDifficultyMenu(initial config.DifficultyPreset, best map[config.DifficultyPreset]int, width, height int) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewDifficultyMenuModel(initial, best, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := finalModel.(DifficultyMenuModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
