// Package preview animates a progress chart in the terminal.
//
// The bubbletea runtime is the frame source: every frame message ticks the
// renderer's animation driver, and the view is rebuilt from the label state
// and the stroke reveal.
package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/gogpu/progress"
)

// FrameInterval is the preview refresh rate.
const FrameInterval = time.Second / 60

const (
	barFilled = '█'
	barEmpty  = '░'
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type (
	frameMsg  time.Time
	replayMsg struct{}
)

// DrawFunc performs one animated draw on the renderer.
type DrawFunc func(r *progress.Renderer) error

// Model is the bubbletea model of the preview.
type Model struct {
	renderer *progress.Renderer
	draw     DrawFunc
	title    string

	maxValue float64
	stops    []gg.RGBA
	width    int

	animating bool
	err       error
	quitting  bool
}

// New creates a preview of the chart drawn by draw. maxValue scales the bar;
// stops color it, and an empty list uses a flat color.
func New(r *progress.Renderer, title string, maxValue float64, stops []gg.RGBA, draw DrawFunc) Model {
	return Model{
		renderer: r,
		draw:     draw,
		title:    title,
		maxValue: maxValue,
		stops:    stops,
		width:    40,
	}
}

// Init starts the first animated draw.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return replayMsg{} }
}

// Update handles key presses, window resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r", " ":
			return m.replay()
		}

	case tea.WindowSizeMsg:
		m.width = clampInt(msg.Width-20, 10, 120)

	case replayMsg:
		return m.replay()

	case frameMsg:
		running := m.renderer.Tick(time.Time(msg))
		m.animating = running || m.renderer.Animating()
		if m.animating {
			return m, frameCmd()
		}
	}
	return m, nil
}

// replay redraws with animation. A frame chain that is already running
// keeps ticking the new animation; only an idle model starts one.
func (m Model) replay() (tea.Model, tea.Cmd) {
	ticking := m.animating
	if err := m.draw(m.renderer); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.animating = m.renderer.Animating()
	if !m.animating || ticking {
		return m, nil
	}
	return m, frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// View renders the bar, the label text and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
	} else {
		number, _, ok := m.renderer.Label().Current()
		if !ok {
			number = 0
		}
		b.WriteString(m.bar(number / m.maxValue))
		if s, ok := m.renderer.Label().Text(); ok && !m.renderer.Label().Hidden {
			b.WriteString("  ")
			b.WriteString(s)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "r replay • q quit"
	if m.animating {
		help = "animating… • " + help
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// bar renders ratio as a row of cells colored along the gradient stops.
func (m Model) bar(ratio float64) string {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	filled := int(math.Round(math.Max(0, math.Min(1, ratio)) * float64(m.width)))

	brush := gg.NewLinearGradientBrush(0, 0, float64(m.width), 0)
	switch len(m.stops) {
	case 0:
		brush.AddColorStop(0, gg.Blue).AddColorStop(1, gg.Blue)
	case 1:
		brush.AddColorStop(0, m.stops[0]).AddColorStop(1, m.stops[0])
	default:
		for i, c := range m.stops {
			brush.AddColorStop(float64(i)/float64(len(m.stops)-1), c)
		}
	}

	var b strings.Builder
	for i := 0; i < filled; i++ {
		c := brush.ColorAt(float64(i)+0.5, 0)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex(c))).Render(string(barFilled)))
	}
	b.WriteString(helpStyle.Render(strings.Repeat(string(barEmpty), m.width-filled)))
	return b.String()
}

func hex(c gg.RGBA) string {
	to8 := func(v float64) int { return int(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
