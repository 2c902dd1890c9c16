// voltbench runs the teaching widgets standalone: an interactive window,
// a terminal control panel, or batch PNG export.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/voltbench/widgets"
	"github.com/voltbench/widgets/anim"
	"github.com/voltbench/widgets/params"
	"github.com/voltbench/widgets/render/ebitencanvas"
	"github.com/voltbench/widgets/render/ggcanvas"
)

func main() {
	mode := flag.String("mode", "play", "play, panel or export")
	kind := flag.String("widget", "ohm", "ohm, transformer, windings or motor")
	preset := flag.String("preset", "", "optional preset file; its first matching entry wins")
	out := flag.String("out", "frames", "output directory for export mode")
	frames := flag.Int("frames", 120, "frame count for export mode")
	width := flag.Int("width", 800, "surface width for panel and export modes")
	height := flag.Int("height", 600, "surface height for panel and export modes")
	flag.Parse()

	cfg, err := configFor(*kind, *preset)
	if err != nil {
		log.Fatal(err)
	}

	switch *mode {
	case "play":
		err = runPlay(cfg)
	case "panel":
		err = runPanel(cfg, *width, *height)
	case "export":
		err = runExport(cfg, *width, *height, *frames, *out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// configFor resolves the widget configuration: the preset file's first entry
// of the requested kind, or defaults.
func configFor(kind, presetPath string) (widgets.WidgetConfig, error) {
	var cfg widgets.WidgetConfig
	switch kind {
	case "ohm":
		cfg = &widgets.OhmConfig{Ohm: params.NewOhm()}
	case "transformer":
		cfg = &widgets.TransformerConfig{Variant: "flux", Transformer: params.NewTransformer()}
	case "windings":
		cfg = &widgets.TransformerConfig{Variant: "windings", Transformer: params.NewTransformer()}
	case "motor":
		cfg = &widgets.MotorConfig{Motor: params.NewMotor()}
	default:
		return nil, fmt.Errorf("unknown widget %q", kind)
	}

	if presetPath == "" {
		return cfg, nil
	}
	preset, err := widgets.LoadPreset(presetPath)
	if err != nil {
		return nil, err
	}
	want := cfg.TypeAsString()
	for _, entry := range preset {
		if entry.TypeAsString() != want {
			continue
		}
		if tc, ok := entry.(*widgets.TransformerConfig); ok {
			if kind == "windings" && tc.Variant != "windings" {
				continue
			}
			if kind == "transformer" && tc.Variant == "windings" {
				continue
			}
		}
		return entry, nil
	}
	return cfg, nil
}

// runPlay opens an interactive ebiten window around one widget.
func runPlay(cfg widgets.WidgetConfig) error {
	game, surface := ebitencanvas.NewGame()
	w := cfg.Build(game, surface)
	game.HandleInput = func() { handleKeys(w) }

	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle("voltbench - " + w.Kind())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

// handleKeys polls the keyboard and adjusts the widget's first two scalars,
// mirroring the slider panel: left/right for the primary scalar, up/down for
// the secondary, space toggles the widget's flag.
func handleKeys(w widgets.Widget) {
	step := func(neg, pos ebiten.Key) float64 {
		switch {
		case ebiten.IsKeyPressed(pos):
			return 0.05
		case ebiten.IsKeyPressed(neg):
			return -0.05
		}
		return 0
	}
	dx := step(ebiten.KeyArrowLeft, ebiten.KeyArrowRight)
	dy := step(ebiten.KeyArrowDown, ebiten.KeyArrowUp)
	toggle := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	switch w := w.(type) {
	case *widgets.OhmWidget:
		m := w.Params()
		if dx != 0 {
			w.SetScalar("voltage", m.Voltage+dx*10)
		}
		if dy != 0 {
			w.SetScalar("current", m.Current+dy*4)
		}
	case *widgets.TransformerWidget:
		m := w.Params()
		if dx != 0 {
			w.SetScalar("turnsRatio", m.TurnsRatio+dx*10)
		}
		if dy != 0 {
			w.SetScalar("primaryCurrent", m.PrimaryCurrent+dy*2)
		}
		if toggle {
			w.SetConnected(!m.Connected)
		}
	case *widgets.MotorWidget:
		m := w.Params()
		if dx != 0 {
			w.SetScalar("voltage", m.Voltage+dx*10)
		}
		if dy != 0 {
			w.SetScalar("magneticField", m.MagneticField+dy)
		}
		if toggle {
			w.SetRunning(!m.Running)
		}
	}
}

// runExport renders frames at a fixed 60 Hz timestep into numbered PNGs.
func runExport(cfg widgets.WidgetConfig, width, height, frames int, outDir string) error {
	surface, err := ggcanvas.New(width, height)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	source := &stepSource{}
	w := cfg.Build(source, surface)
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	const dt = 1.0 / 60.0
	for i := 0; i < frames; i++ {
		source.Step(float64(i) * dt)
		name := filepath.Join(outDir, fmt.Sprintf("%s_%04d.png", w.Kind(), i))
		if err := surface.SavePNG(name); err != nil {
			return err
		}
	}
	return nil
}

var _ anim.FrameSource = (*stepSource)(nil)
