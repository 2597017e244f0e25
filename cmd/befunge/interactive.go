package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	befunge "github.com/PartyWumpus/befunge-editor"
	"github.com/PartyWumpus/befunge-editor/debug"
	"github.com/PartyWumpus/befunge-editor/engine"
	"github.com/PartyWumpus/befunge-editor/host"
)

const (
	batchTicks = 50_000
	gridWidth  = 64
	gridHeight = 18
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pointerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#98FB98"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#87CEEB"))

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B"))

	stackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type debuggerModel struct {
	err      error
	ctl      *debug.Controller
	ch       *host.Buffered
	filename string
	seed     string // input queued at load time

	running  bool
	awaiting bool
	outcome  string
	ticks    int

	cursor befunge.Coord
	input  textinput.Model
}

type loadedMsg struct {
	err error
	ctl *debug.Controller
	ch  *host.Buffered
}

type batchMsg struct {
	res debug.StepResult
	n   int
}

func newDebuggerModel(filename, seed string) *debuggerModel {
	ti := textinput.New()
	ti.Placeholder = "input value"
	ti.CharLimit = 32
	ti.Width = 20
	return &debuggerModel{
		filename: filename,
		seed:     seed,
		input:    ti,
	}
}

func (m *debuggerModel) Init() tea.Cmd {
	return m.loadProgram
}

func (m *debuggerModel) loadProgram() tea.Msg {
	src, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	mach := engine.New()
	mach.Load(string(src))
	ch := host.NewBuffered()
	ch.ProvideString(m.seed)
	ctl := debug.NewController(mach, ch)
	ctl.EnableHistory(100_000)
	return loadedMsg{ctl: ctl, ch: ch}
}

func (m *debuggerModel) runBatch() tea.Msg {
	res, n := m.ctl.RunUntil(batchTicks)
	return batchMsg{res: res, n: n}
}

func (m *debuggerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.err = msg.err
		m.ctl = msg.ctl
		m.ch = msg.ch
		m.running = false
		m.awaiting = false
		m.outcome = ""
		m.ticks = 0
		return m, nil

	case batchMsg:
		m.ticks += msg.n
		m.outcome = msg.res.Outcome.String()
		switch msg.res.Outcome {
		case debug.LimitReached:
			if m.running {
				return m, m.runBatch
			}
		case debug.AwaitingInput:
			m.running = false
			m.awaiting = true
			m.input.Focus()
			return m, textinput.Blink
		default:
			m.running = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.awaiting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *debuggerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.awaiting {
		switch msg.String() {
		case "enter":
			m.provideInput(m.input.Value())
			m.input.SetValue("")
			m.input.Blur()
			m.awaiting = false
			return m, m.runBatch
		case "esc":
			m.input.Blur()
			m.awaiting = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	if m.ctl == nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ", "s":
		m.running = false
		res := m.ctl.Step()
		if res.Outcome != debug.AwaitingInput {
			m.ticks++
		}
		m.outcome = res.Outcome.String()
		if res.Outcome == debug.AwaitingInput {
			m.awaiting = true
			m.input.Focus()
			return m, textinput.Blink
		}
	case "r":
		if !m.running && !m.ctl.Machine().Halted() {
			m.running = true
			return m, m.runBatch
		}
		m.running = false
	case "u":
		m.running = false
		if err := m.ctl.StepBack(); err != nil {
			m.outcome = err.Error()
		} else {
			m.ticks--
			m.outcome = "rewound"
		}
	case "R":
		return m, m.loadProgram
	case "b":
		m.toggleBreakpoint(false)
	case "w":
		m.toggleBreakpoint(true)
	case "up":
		m.cursor.Y--
	case "down":
		m.cursor.Y++
	case "left":
		m.cursor.X--
	case "right":
		m.cursor.X++
	}
	return m, nil
}

func (m *debuggerModel) toggleBreakpoint(onChange bool) {
	if m.ctl.HasBreakpoint(m.cursor) {
		m.ctl.RemoveBreakpoint(m.cursor)
		return
	}
	m.ctl.SetBreakpoint(m.cursor, onChange)
}

// provideInput parses the host's reply: a decimal integer, otherwise the
// first character's code point.
func (m *debuggerModel) provideInput(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		m.ch.Provide(befunge.Cell(v))
		return
	}
	m.ch.Provide(befunge.Cell([]rune(s)[0]))
}

func (m *debuggerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("befunge debugger — " + m.filename))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n" + helpStyle.Render("q: quit"))
		return b.String()
	}
	if m.ctl == nil {
		b.WriteString("loading...\n")
		return b.String()
	}

	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	if m.awaiting {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(helpStyle.Render("enter: provide input to the program"))
		b.WriteString("\n")
	}

	if out := m.ch.Output(); out != "" {
		b.WriteString("\n" + outputStyle.Render(tail(out, 4)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + helpStyle.Render(
		"space: step  r: run/stop  u: rewind  b: breakpoint  w: watch  arrows: cursor  R: reload  q: quit"))
	return b.String()
}

// renderGrid draws a window of fungespace that always contains the pointer.
func (m *debuggerModel) renderGrid() string {
	mach := m.ctl.Machine()
	pos := mach.Position()

	left := pos.X - int64(gridWidth)/2
	top := pos.Y - int64(gridHeight)/2
	if left > -int64(gridWidth)/4 && pos.X < int64(gridWidth)*3/4 {
		left = -int64(gridWidth) / 8 // keep the origin in view for small programs
	}
	if top > -int64(gridHeight)/4 && pos.Y < int64(gridHeight)*3/4 {
		top = -int64(gridHeight) / 8
	}

	var b strings.Builder
	for dy := int64(0); dy < gridHeight; dy++ {
		for dx := int64(0); dx < gridWidth; dx++ {
			at := befunge.Coord{X: left + dx, Y: top + dy}
			cell := mach.Space().Get(at)
			s := renderCell(cell)
			switch {
			case at == pos:
				s = pointerStyle.Render(s)
			case at == m.cursor:
				s = cursorStyle.Render(s)
			case m.ctl.HasBreakpoint(at):
				s = breakStyle.Render(s)
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(c befunge.Cell) string {
	if c >= 33 && c < 127 {
		return string(rune(c))
	}
	if c == befunge.Blank {
		return " "
	}
	return "·"
}

func (m *debuggerModel) renderStatus() string {
	mach := m.ctl.Machine()
	mode := "normal"
	if mach.StringMode() {
		mode = "string"
	}
	status := fmt.Sprintf("pos %v  dir %v  mode %s  ticks %d  history %d",
		mach.Position(), mach.Heading(), mode, m.ticks, m.ctl.HistoryDepth())
	if m.outcome != "" {
		status += "  [" + m.outcome + "]"
	}
	if mach.Halted() {
		status += "  HALTED"
	}

	stack := mach.Stack().Snapshot()
	const show = 12
	if len(stack) > show {
		stack = stack[len(stack)-show:]
	}
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[len(stack)-1-i] = strconv.FormatInt(int64(v), 10)
	}
	stackLine := "stack: (empty)"
	if len(parts) > 0 {
		stackLine = "stack: " + strings.Join(parts, " ")
	}

	return status + "\n" + stackStyle.Render(stackLine) + "\n"
}

func tail(s string, lines int) string {
	all := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(all) > lines {
		all = all[len(all)-lines:]
	}
	return strings.Join(all, "\n")
}

func runInteractive(filename, seed string) error {
	p := tea.NewProgram(newDebuggerModel(filename, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
