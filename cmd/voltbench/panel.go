package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltbench/widgets"
	"github.com/voltbench/widgets/render/ggcanvas"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	derivedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

// slider is one adjustable scalar row in the panel.
type slider struct {
	name  string  // SetScalar name
	label string
	step  float64
	get   func() float64
}

// scalarWidget is the part of the widget API the panel drives: whole-scalar
// replacements in, derived values re-read after each mutation.
type scalarWidget interface {
	widgets.Widget
	SetScalar(name string, value float64) error
}

type panelModel struct {
	widget   scalarWidget
	sliders  []slider
	readout  func() string
	toggle   func()
	selected int
	status   string

	surface *ggcanvas.Surface
	source  *stepSource
	clock   float64
	shots   int
}

func runPanel(cfg widgets.WidgetConfig, width, height int) error {
	surface, err := ggcanvas.New(width, height)
	if err != nil {
		return err
	}
	source := &stepSource{}
	w := cfg.Build(source, surface)
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	m := newPanelModel(w, surface, source)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newPanelModel(w widgets.Widget, surface *ggcanvas.Surface, source *stepSource) *panelModel {
	m := &panelModel{
		surface: surface,
		source:  source,
	}

	switch w := w.(type) {
	case *widgets.OhmWidget:
		m.widget = w
		m.sliders = []slider{
			{"voltage", "Voltage V", 0.5, func() float64 { return w.Params().Voltage }},
			{"current", "Current I", 0.1, func() float64 { return w.Params().Current }},
			{"resistance", "Resistance R", 0.5, func() float64 { return w.Params().Resistance }},
		}
		m.readout = func() string {
			d := w.Params().Derive()
			return fmt.Sprintf("P = %.1f W   V-IR mismatch = %.2f V", d.Power, d.Mismatch)
		}
	case *widgets.TransformerWidget:
		m.widget = w
		m.sliders = []slider{
			{"primaryVoltage", "Primary V1", 5, func() float64 { return w.Params().PrimaryVoltage }},
			{"primaryCurrent", "Primary I1", 0.1, func() float64 { return w.Params().PrimaryCurrent }},
			{"turnsRatio", "Turns ratio k", 0.5, func() float64 { return w.Params().TurnsRatio }},
			{"efficiency", "Efficiency %", 1, func() float64 { return float64(w.Params().EfficiencyPct) }},
		}
		m.readout = func() string {
			d := w.Params().Derive()
			return fmt.Sprintf("V2 = %.2f V   I2 = %.2f A", d.SecondaryVoltage, d.SecondaryCurrent)
		}
		m.toggle = func() { w.SetConnected(!w.Params().Connected) }
	case *widgets.MotorWidget:
		m.widget = w
		m.sliders = []slider{
			{"magneticField", "Field B", 0.1, func() float64 { return w.Params().MagneticField }},
			{"voltage", "Voltage V", 0.5, func() float64 { return w.Params().Voltage }},
			{"loops", "Coil loops", 1, func() float64 { return float64(w.Params().Loops) }},
		}
		m.readout = func() string {
			return fmt.Sprintf("speed = %.0f", w.Params().Speed())
		}
		m.toggle = func() { w.SetRunning(!w.Params().Running) }
	}

	return m
}

func (m *panelModel) Init() tea.Cmd {
	return nil
}

func (m *panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.sliders)-1 {
			m.selected++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case " ":
		if m.toggle != nil {
			m.toggle()
			m.status = "toggled"
		}
	case "c":
		if err := clipboard.WriteAll(m.readout()); err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "readout copied"
		}
	case "s":
		m.status = m.snapshot()
	}
	return m, nil
}

// adjust nudges the selected slider by dir steps through the widget's
// whole-record scalar replacement.
func (m *panelModel) adjust(dir float64) {
	s := m.sliders[m.selected]
	if err := m.widget.SetScalar(s.name, s.get()+dir*s.step); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

// snapshot advances the widget one frame and writes it to a PNG.
func (m *panelModel) snapshot() string {
	m.clock += 1.0 / 60.0
	m.source.Step(m.clock)
	name := fmt.Sprintf("%s_shot_%03d.png", m.widget.Kind(), m.shots)
	if err := m.surface.SavePNG(name); err != nil {
		return err.Error()
	}
	m.shots++
	return "wrote " + name
}

func (m *panelModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("voltbench - "+m.widget.Kind()) + "\n\n")

	for i, s := range m.sliders {
		line := fmt.Sprintf("  %-14s %8.2f", s.label, s.get())
		if i == m.selected {
			line = selectedStyle.Render("> " + line[2:])
		} else {
			line = dimStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + derivedStyle.Render("  "+m.readout()) + "\n")
	b.WriteString(dimStyle.Render("\n  arrows adjust - space toggle - c copy - s snapshot - q quit") + "\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render("  "+m.status) + "\n")
	}
	return b.String()
}
