// Package reveal measures text into visual lines and slides the lines (or
// words) into view when the text scrolls on screen, drawn with [Ebitengine].
//
// # Quick start
//
// Create an [AnimatedText] over a measurement [Surface], add it to a [Scene]
// and run it:
//
//	font, _ := reveal.LoadTTFFont(goregular.TTF, 32)
//	surface := reveal.NewFlowSurface(font, 600)
//
//	opts := reveal.DefaultOptions()
//	opts.Text = "Slide every line into place"
//	headline, err := reveal.NewAnimatedText(opts, surface, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	scene := reveal.NewScene(640, 480)
//	scene.Add(headline)
//	reveal.Run(scene, reveal.RunConfig{Title: "Reveal", Width: 640, Height: 480})
//
// # Pipeline
//
// Text is split on single spaces by [Tokenize]. A [Probe] lays the words out
// on the surface, one inline unit per word, and reads back each unit's top
// offset. [InferLines] groups words sharing a top into a [LineSet]; a
// [ChangeDetector] drops line sets equal to the one already rendered, so
// resize notifications that do not move a line break cost nothing.
// [RenderPartition] turns the accepted lines into a clipped node tree and a
// [Scheduler] plays the staggered slide when the text becomes visible.
//
// Measurement waits for a [ReadySignal] (typically a [FontLoader]) because
// measuring with fallback metrics produces the wrong line breaks.
//
// # Fonts
//
// Any [Font] can drive a surface: [TTFFont] and [BitmapFont] for drawing with
// ebiten, [CanvasFont] for headless measurement with tdewolff/canvas, and
// [CellFont] for terminal cells.
//
// # Configuration
//
// [Options] can be built in code from [DefaultOptions] or loaded from TOML or
// YAML with [LoadOptions].
//
// # Scenes
//
// A [Scene] updates its texts at the game's tick rate, samples visibility
// against its [Viewport] and draws each line clipped to its wrapper. Window
// resizes re-wrap every text. [Scene.Capture] writes the next frame to a PNG,
// and a [TestRunner] script can drive a scene frame by frame.
//
// The reveal command (cmd/reveal) prints inferred lines headlessly, previews
// the reveal in a terminal and plays it in a window.
//
// [Ebitengine]: https://ebitengine.org
package reveal
