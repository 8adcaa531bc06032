package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"shopadmin/admin"
)

// screen is one tab of the dashboard.
type screen interface {
	Title() string
	Capturing() bool
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(w, h int)
}

// Model is the root bubbletea model.
type Model struct {
	deps
	ids     []string
	screens map[string]screen
	active  int
	width   int
	height  int
}

// Options tune the dashboard.
type Options struct {
	// Debounce delays search filtering after the last keystroke.
	Debounce time.Duration
	// Start is the id of the first screen shown; empty means users.
	Start string
}

// New builds the dashboard over console. ctx bounds every request the
// dashboard issues.
func New(ctx context.Context, console *admin.Console, log *zap.Logger, opts Options) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 300 * time.Millisecond
	}
	d := deps{ctx: ctx, console: console, log: log, styles: DefaultStyles(), debounce: opts.Debounce}

	m := &Model{deps: d, screens: map[string]screen{}}
	m.add(ScreenUsers, newUsersScreen(d))
	m.add(ScreenRoles, newRolesScreen(d))
	m.add(ScreenCategories, newCategoriesScreen(d))
	m.add(ScreenSubCategories, newSubCategoriesScreen(d))
	m.add(ScreenProducts, newProductsScreen(d))
	m.add(ScreenRetailers, newRetailersScreen(d))
	m.add(ScreenCustomers, newCustomersScreen(d))

	for i, id := range m.ids {
		if id == opts.Start {
			m.active = i
		}
	}
	return m
}

func (m *Model) add(id string, s screen) {
	m.ids = append(m.ids, id)
	m.screens[id] = s
}

// ScreenIDs lists the tabs in display order.
func (m *Model) ScreenIDs() []string { return append([]string(nil), m.ids...) }

// Active returns the id of the visible screen.
func (m *Model) Active() string { return m.ids[m.active] }

func (m *Model) current() screen { return m.screens[m.ids[m.active]] }

func (m *Model) Init() tea.Cmd {
	return m.current().Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for _, s := range m.screens {
			s.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil

	case targeted:
		s, ok := m.screens[msg.target()]
		if !ok {
			m.log.Debug("message for unknown screen", zap.String("screen", msg.target()))
			return m, nil
		}
		return m, s.Update(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.current().Capturing() {
			switch {
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.NextScreen):
				return m, m.switchTo((m.active + 1) % len(m.ids))
			case key.Matches(msg, keys.PrevScreen):
				return m, m.switchTo((m.active - 1 + len(m.ids)) % len(m.ids))
			}
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if i := int(s[0] - '1'); i < len(m.ids) {
					return m, m.switchTo(i)
				}
			}
		}
	}
	return m, m.current().Update(msg)
}

func (m *Model) switchTo(i int) tea.Cmd {
	m.active = i
	m.log.Debug("screen", zap.String("id", m.ids[i]))
	return m.current().Init()
}

func (m *Model) View() string {
	tabs := make([]string, len(m.ids))
	for i, id := range m.ids {
		label := fmt.Sprintf("%d %s", i+1, m.screens[id].Title())
		if i == m.active {
			tabs[i] = m.styles.ActiveTab.Render(label)
		} else {
			tabs[i] = m.styles.Tab.Render(label)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return strings.Join([]string{bar, m.current().View()}, "\n\n")
}

// Run starts the dashboard on the terminal and blocks until it quits.
func Run(ctx context.Context, console *admin.Console, log *zap.Logger, opts Options) error {
	p := tea.NewProgram(New(ctx, console, log, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
