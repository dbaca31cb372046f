package cli

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/reveal"
)

const previewFPS = 30

func newPreviewCmd() *cobra.Command {
	var (
		of    optionFlags
		width float64
	)

	cmd := &cobra.Command{
		Use:   "preview [text...]",
		Short: "Play the reveal in the terminal",
		Long: `Play the reveal in the terminal, measured in cells.

Keys: space toggles visibility, t switches between line and word units,
r replays, q quits. The text re-wraps when the terminal is resized.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := of.resolve(cmd, args)
			if err != nil {
				return err
			}
			a, err := reveal.NewAnimatedText(opts, reveal.NewFlowSurface(reveal.CellFont{}, width), nil)
			if err != nil {
				return err
			}
			defer a.Dispose()

			m := newPreviewModel(a, !cmd.Flags().Changed("width"))
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
	of.register(cmd)
	cmd.Flags().Float64VarP(&width, "width", "w", 60, "wrap width in cells; follows the terminal unless set")
	return cmd
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/previewFPS, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// previewModel drives an AnimatedText from bubbletea ticks and draws its
// units on a cell grid.
type previewModel struct {
	text      *reveal.AnimatedText
	fitWidth  bool
	visible   bool
	last      time.Time
	frameTime float64
}

func newPreviewModel(a *reveal.AnimatedText, fitWidth bool) previewModel {
	a.SetVisible(true)
	return previewModel{text: a, fitWidth: fitWidth, visible: true, frameTime: 1.0 / previewFPS}
}

func (m previewModel) Init() tea.Cmd {
	return tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.toggleVisible()
		case "t":
			if m.text.Options().TargetedElement == reveal.TargetWord {
				m.text.SetTarget(reveal.TargetLine)
			} else {
				m.text.SetTarget(reveal.TargetWord)
			}
		case "r":
			m.text.Replay()
		}
	case tea.WindowSizeMsg:
		if m.fitWidth {
			m.text.SetWrapWidth(float64(max(msg.Width-4, 1)))
		}
	case tickMsg:
		now := time.Time(msg)
		dt := m.frameTime
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.text.Update(dt)
		return m, tick()
	}
	return m, nil
}

func (m *previewModel) toggleVisible() {
	m.visible = !m.visible
	m.text.SetVisible(m.visible)
}

func (m previewModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("reveal preview"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.status()))
	b.WriteString("\n\n")
	b.WriteString(renderCells(m.text.Partition()))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("space visibility  t target  r replay  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m previewModel) status() string {
	s := m.text.State().String() + " · " + m.text.Options().TargetedElement.String()
	if !m.visible {
		s += " · hidden"
	}
	return s
}

// renderCells rasterises a partition measured in cells. A unit is drawn once
// it has risen past the middle of its row, dimmed until it comes to rest.
func renderCells(p *reveal.Partition) string {
	if p.Empty() {
		return ""
	}
	rows := make([][]string, len(p.Lines))
	for _, u := range p.Units {
		if u.Line >= len(rows) || u.Node.OffsetY >= 0.5 {
			continue
		}
		style := StyleValue
		if math.Abs(u.Node.OffsetY) > 0.05 {
			style = styleMoving
		}
		col := int(math.Round(u.Node.X))
		row := rows[u.Line]
		if pad := col - lipgloss.Width(strings.Join(row, "")); pad > 0 {
			row = append(row, strings.Repeat(" ", pad))
		}
		rows[u.Line] = append(row, style.Render(strings.ReplaceAll(u.Text, "\u00a0", " ")))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.Join(r, "")
	}
	return strings.Join(lines, "\n")
}
