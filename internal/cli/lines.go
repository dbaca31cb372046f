package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/reveal"
)

// layoutFlags select the measurement font and wrap width.
type layoutFlags struct {
	width    float64
	cells    bool
	fontPath string
	size     float64
}

func (f *layoutFlags) register(cmd *cobra.Command, defWidth float64) {
	fl := cmd.Flags()
	fl.Float64VarP(&f.width, "width", "w", defWidth, "wrap width (millimetres, or cells with --cells); 0 disables wrapping")
	fl.BoolVar(&f.cells, "cells", false, "measure in terminal cells instead of a font face")
	fl.StringVar(&f.fontPath, "font", "", "TTF/OTF font file (default Go Regular)")
	fl.Float64Var(&f.size, "size", 12, "font size in points")
}

// font returns the measurement font: terminal cells, or a canvas face over
// the given font file or the bundled Go Regular.
func (f *layoutFlags) font() (reveal.Font, error) {
	if f.cells {
		return reveal.CellFont{}, nil
	}
	data, err := readFont(f.fontPath)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = goregular.TTF
	}
	return reveal.LoadCanvasFont(data, f.size)
}

func newLinesCmd() *cobra.Command {
	var (
		of    optionFlags
		lf    layoutFlags
		units bool
	)

	cmd := &cobra.Command{
		Use:   "lines [text...]",
		Short: "Print the visual lines a text wraps to",
		Long: `Measure the text headlessly and print the lines it wraps to at the given width.

With --units, also print every animated unit with its start time.`,
		Example: `  reveal lines --width 80 "The quick brown fox jumps over the lazy dog"
  reveal lines --cells -w 20 -t word --units "Hello there, world"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := of.resolve(cmd, args)
			if err != nil {
				return err
			}
			font, err := lf.font()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("measuring", "words", len(reveal.Tokenize(opts.Text)), "width", lf.width, "target", opts.TargetedElement)

			a, err := reveal.NewAnimatedText(opts, reveal.NewFlowSurface(font, lf.width), nil)
			if err != nil {
				return err
			}
			defer a.Dispose()

			printLines(cmd.OutOrStdout(), a.Lines())
			if units {
				printUnits(cmd.OutOrStdout(), a.Partition(), reveal.NewScheduler(opts))
			}
			return nil
		},
	}
	of.register(cmd)
	lf.register(cmd, 100)
	cmd.Flags().BoolVar(&units, "units", false, "print the animated units and their start times")
	return cmd
}

func printLines(w io.Writer, lines reveal.LineSet) {
	noun := "lines"
	if len(lines) == 1 {
		noun = "line"
	}
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d %s", len(lines), noun)))
	for i, l := range lines {
		fmt.Fprintf(w, "%s  %s\n", StyleNumber.Render(fmt.Sprintf("%3d", i+1)), StyleValue.Render(l.String()))
	}
}

func printUnits(w io.Writer, p *reveal.Partition, s *reveal.Scheduler) {
	if p.Empty() {
		printWarning(w, "nothing to animate")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d %s units", len(p.Units), p.Target)))
	for k, u := range p.Units {
		label := fmt.Sprintf("%d.%d", u.Line+1, u.Index+1)
		start := fmt.Sprintf("start %.3fs", s.StartTime(k))
		printDetail(w, label, start+"  "+strings.Join(u.Words, " "))
	}
}
