package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/reveal"
)

// optionFlags mirrors reveal.Options as command-line flags. Flags only
// override the config file when they are set explicitly.
type optionFlags struct {
	config string

	delay         float64
	once          bool
	opacity       float64
	duration      float64
	stagger       float64
	target        string
	ease          []float64
	unitDuration  float64
	lineCascade   float64
	hiddenOffset  float64
	lineTolerance float64
	readyTimeout  float64
	animateExit   bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	def := reveal.DefaultOptions()
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "options file (.toml, .yaml or .yml)")
	fl.Float64Var(&f.delay, "delay", def.Delay, "seconds before the first unit starts")
	fl.BoolVar(&f.once, "once", def.Once, "reveal only on the first entry into view")
	fl.Float64Var(&f.opacity, "opacity", def.Opacity, "opacity of the whole text")
	fl.Float64Var(&f.duration, "duration", def.Duration, "slide duration of each unit in seconds")
	fl.Float64Var(&f.stagger, "stagger", def.StaggerDuration, "seconds between consecutive unit starts")
	fl.StringVarP(&f.target, "target", "t", def.TargetedElement.String(), "animated unit: line or word")
	fl.Float64SliceVar(&f.ease, "ease", def.Ease[:], "cubic-bezier control points x1,y1,x2,y2")
	fl.Float64Var(&f.unitDuration, "unit-duration", def.UnitDuration, "per-unit exit transition duration")
	fl.Float64Var(&f.lineCascade, "line-cascade", def.LineCascade, "per-line delay step of line units")
	fl.Float64Var(&f.hiddenOffset, "hidden-offset", def.HiddenOffset, "hidden slide offset as a fraction of unit height")
	fl.Float64Var(&f.lineTolerance, "line-tolerance", def.LineTolerance, "max top difference for words on one line")
	fl.Float64Var(&f.readyTimeout, "ready-timeout", def.ReadyTimeout, "seconds to wait for readiness before measuring anyway")
	fl.BoolVar(&f.animateExit, "animate-exit", def.AnimateExit, "slide units back out when leaving view")
}

// resolve loads the config file (if any), applies explicitly set flags and
// the positional text, and validates the result.
func (f *optionFlags) resolve(cmd *cobra.Command, args []string) (reveal.Options, error) {
	opts := reveal.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = reveal.LoadOptions(f.config); err != nil {
			return opts, err
		}
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("delay", func() { opts.Delay = f.delay })
	set("once", func() { opts.Once = f.once })
	set("opacity", func() { opts.Opacity = f.opacity })
	set("duration", func() { opts.Duration = f.duration })
	set("stagger", func() { opts.StaggerDuration = f.stagger })
	set("unit-duration", func() { opts.UnitDuration = f.unitDuration })
	set("line-cascade", func() { opts.LineCascade = f.lineCascade })
	set("hidden-offset", func() { opts.HiddenOffset = f.hiddenOffset })
	set("line-tolerance", func() { opts.LineTolerance = f.lineTolerance })
	set("ready-timeout", func() { opts.ReadyTimeout = f.readyTimeout })
	set("animate-exit", func() { opts.AnimateExit = f.animateExit })

	if fl.Changed("target") {
		t, err := reveal.ParseTarget(f.target)
		if err != nil {
			return opts, err
		}
		opts.TargetedElement = t
	}
	if fl.Changed("ease") {
		if len(f.ease) != 4 {
			return opts, fmt.Errorf("%w: --ease needs 4 values, got %d", reveal.ErrInvalidOptions, len(f.ease))
		}
		copy(opts.Ease[:], f.ease)
	}

	if len(args) > 0 {
		opts.Text = strings.Join(args, " ")
	}
	if strings.TrimSpace(opts.Text) == "" {
		return opts, fmt.Errorf("no text: pass it as arguments or set text in --config")
	}
	return opts, opts.Validate()
}
