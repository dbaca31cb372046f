package cli

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/reveal"
)

type playFlags struct {
	fontPath string
	size     float64
	width    int
	height   int
	margin   float64
	pages    int
	showFPS  bool
	captures string
}

func newPlayCmd() *cobra.Command {
	var (
		of optionFlags
		pf playFlags
	)

	cmd := &cobra.Command{
		Use:   "play [text...]",
		Short: "Play the reveal in a window",
		Long: `Open a window and reveal the text as it scrolls into view.

With --pages N the text is repeated once per screen; Down and Up scroll a page
at a time. Space replays every text in view and S captures the frame as a
PNG. Resizing the window re-wraps.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := of.resolve(cmd, args)
			if err != nil {
				return err
			}
			data, err := readFont(pf.fontPath)
			if err != nil {
				return err
			}
			if data == nil {
				data = goregular.TTF
			}
			return runPlay(cmd.Context(), opts, data, pf)
		},
	}
	of.register(cmd)
	fl := cmd.Flags()
	fl.StringVar(&pf.fontPath, "font", "", "TTF/OTF font file (default Go Regular)")
	fl.Float64Var(&pf.size, "size", 32, "font size in pixels")
	fl.IntVar(&pf.width, "window-width", 960, "window width")
	fl.IntVar(&pf.height, "window-height", 540, "window height")
	fl.Float64Var(&pf.margin, "margin", 48, "left and top margin")
	fl.IntVar(&pf.pages, "pages", 1, "number of screens, each holding a copy of the text")
	fl.BoolVar(&pf.showFPS, "fps", false, "show FPS and TPS")
	fl.StringVar(&pf.captures, "capture-dir", reveal.DefaultCaptureDir, "directory for frames captured with S")
	return cmd
}

func runPlay(ctx context.Context, opts reveal.Options, fontData []byte, pf playFlags) error {
	logger := loggerFromContext(ctx)
	w, h := float64(pf.width), float64(pf.height)

	// Parsing runs off the game loop; texts measure once the face is ready.
	loader := reveal.LoadFontAsync(ctx, func(context.Context) (reveal.Font, error) {
		return reveal.LoadTTFFont(fontData, pf.size)
	})

	scene := reveal.NewScene(w, h)
	scene.CaptureDir = pf.captures
	scene.ClearColor = reveal.Color{R: 0.07, G: 0.07, B: 0.09, A: 1}
	for i := range max(pf.pages, 1) {
		a, err := reveal.NewAnimatedText(opts, reveal.NewFlowSurface(nil, w-2*pf.margin), loader)
		if err != nil {
			return err
		}
		a.Root().SetPosition(pf.margin, pf.margin+float64(i)*h)
		scene.Add(a)
	}
	scene.Viewport().SetBounds(reveal.Rect{Width: w, Height: h * float64(max(pf.pages, 1))})

	page := 0
	scene.SetUpdateFunc(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		vp := scene.Viewport()
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyDown) && page < pf.pages-1:
			page++
		case inpututil.IsKeyJustPressed(ebiten.KeyUp) && page > 0:
			page--
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			scene.Capture("play")
			return nil
		case inpututil.IsKeyJustPressed(ebiten.KeySpace):
			for _, t := range scene.Texts() {
				t.Replay()
			}
			return nil
		default:
			return nil
		}
		logger.Debug("scroll", "page", page)
		vp.ScrollTo(0, float64(page)*vp.Height, float32(opts.Duration), reveal.DefaultEase.Func())
		return nil
	})

	logger.Info("opening window", "width", pf.width, "height", pf.height, "target", opts.TargetedElement)
	return reveal.Run(scene, reveal.RunConfig{
		Title:   "reveal",
		Width:   pf.width,
		Height:  pf.height,
		ShowFPS: pf.showFPS,
	})
}
