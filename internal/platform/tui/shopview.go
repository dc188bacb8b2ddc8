package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skipstone/internal/shop"
	"github.com/vovakirdan/skipstone/internal/storage"
)

// ShopKeyMap defines the key bindings for the upgrade shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Buy},
		{k.Back, k.Quit},
	}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShopModel is the Bubble Tea model for the upgrade shop.
type ShopModel struct {
	svc      *shop.Service
	store    *storage.Store
	items    []shop.Item
	coins    int
	status   string
	table    table.Model
	help     help.Model
	keys     ShopKeyMap
	width    int
	height   int
	quitting bool
}

// NewShopModel creates a new shop model.
func NewShopModel(store *storage.Store, width, height int) ShopModel {
	h := help.New()
	h.ShowAll = false

	m := ShopModel{
		svc:    shop.NewService(store),
		store:  store,
		keys:   DefaultShopKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.reload()

	return m
}

func (m *ShopModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Upgrade", Width: 14},
		{Title: "Level", Width: 7},
		{Title: "Cost", Width: 8},
		{Title: "Effect", Width: 38},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(len(shop.Tracks)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload refreshes the catalog and wallet from storage.
func (m *ShopModel) reload() {
	if items, err := m.svc.Items(); err == nil {
		m.items = items
	}
	if coins, err := m.store.Coins(); err == nil {
		m.coins = coins
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		cost := fmt.Sprintf("%d", it.NextCost)
		if it.Maxed {
			cost = "MAX"
		}
		rows[i] = table.Row{
			it.Name,
			fmt.Sprintf("%d/%d", it.Level, it.MaxLevel),
			cost,
			it.Desc,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Buy):
			m.buySelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// buySelected attempts to purchase the highlighted upgrade.
func (m *ShopModel) buySelected() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return
	}

	it, err := m.svc.Buy(m.items[idx].Stat)
	if err != nil {
		m.status = err.Error()
		return
	}

	m.status = fmt.Sprintf("%s upgraded to level %d", it.Name, it.Level)
	m.reload()
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("STONE SHOP", m.width)))
	b.WriteString("\n")

	walletStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	b.WriteString(centerText(walletStyle.Render(fmt.Sprintf("$ %d coins", m.coins)), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunShop shows the interactive upgrade shop.
func RunShop(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewShopModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
