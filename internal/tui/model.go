package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"anchorpoint-it.com/infopanel/internal/network"
)

// AddressResolver performs one public IP lookup per call.
type AddressResolver interface {
	Resolve(ctx context.Context) network.Result
}

type sheet int

const (
	noSheet sheet = iota
	dateTimeSheet
	publicIPSheet
)

type button struct {
	title string
	opens sheet
}

var buttons = []button{
	{title: "Date and Time", opens: dateTimeSheet},
	{title: "My Public IP", opens: publicIPSheet},
}

// TickMsg refreshes the clock shown on the date and time sheet.
type TickMsg time.Time

// ResolvedMsg carries a finished lookup back onto the program loop.
type ResolvedMsg struct {
	Result network.Result
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Press    key.Binding
	DateTime key.Binding
	PublicIP key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Press, k.DateTime, k.PublicIP, k.Close, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Next}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Press:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		DateTime: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "date and time")),
		PublicIP: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "public ip")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the "Useful Information" screen.
type Model struct {
	ctx      context.Context
	resolver AddressResolver
	logger   *zap.Logger
	layout   string
	clock    func() time.Time

	now      time.Time
	cursor   int
	sheet    sheet
	publicIP string
	inflight int

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

// NewModel builds the screen. Lookups run with ctx; layout formats the
// date and time sheet.
func NewModel(ctx context.Context, resolver AddressResolver, logger *zap.Logger, layout string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("57"))

	return Model{
		ctx:      ctx,
		resolver: resolver,
		logger:   logger,
		layout:   layout,
		clock:    time.Now,
		now:      time.Now(),
		spinner:  s,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// lookupCmd runs off the program loop; its result comes back as a ResolvedMsg.
func lookupCmd(ctx context.Context, r AddressResolver) tea.Cmd {
	return func() tea.Msg {
		return ResolvedMsg{Result: r.Resolve(ctx)}
	}
}
