package widgets

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/voltbench/widgets/anim"
	"github.com/voltbench/widgets/scene"
)

// nullSource hands out frame callbacks that are fired manually.
type nullSource struct {
	cb func(now float64)
}

func (s *nullSource) Request(cb func(now float64)) (func(), error) {
	s.cb = cb
	return func() { s.cb = nil }, nil
}

func (s *nullSource) fire(now float64) {
	cb := s.cb
	s.cb = nil
	if cb != nil {
		cb(now)
	}
}

// nullCanvas discards every drawing command.
type nullCanvas struct{}

func (nullCanvas) Size() (float64, float64)                                      { return 600, 600 }
func (nullCanvas) Clear(c color.Color)                                           {}
func (nullCanvas) FillRect(r scene.Rect, c color.Color)                          {}
func (nullCanvas) StrokeRect(r scene.Rect, sw float64, c color.Color)            {}
func (nullCanvas) FillCircle(p scene.Point, radius float64, c color.Color)       {}
func (nullCanvas) StrokeCircle(p scene.Point, radius, sw float64, c color.Color) {}
func (nullCanvas) StrokeLine(a, b scene.Point, sw float64, c color.Color)        {}
func (nullCanvas) StrokePolyline(pts []scene.Point, sw float64, c color.Color)   {}
func (nullCanvas) Text(s string, at scene.Point, c color.Color)                  {}

func TestOhmWidgetSetScalarClamps(t *testing.T) {
	w := NewOhmWidget(&nullSource{}, nullCanvas{})

	require.NoError(t, w.SetScalar("voltage", 99))
	assert.Equal(t, 24.0, w.Params().Voltage)

	require.NoError(t, w.SetScalar("current", 0.01))
	assert.Equal(t, 0.1, w.Params().Current)

	require.NoError(t, w.SetScalar("resistance", 12))
	assert.Equal(t, 12.0, w.Params().Resistance)

	assert.Error(t, w.SetScalar("frequency", 50))
}

func TestTransformerWidgetSetScalar(t *testing.T) {
	w := NewTransformerWidget(&nullSource{}, nullCanvas{}, anim.VariantFlux)

	require.NoError(t, w.SetScalar("efficiency", 150))
	assert.Equal(t, 99, w.Params().EfficiencyPct)

	require.NoError(t, w.SetScalar("turnsRatio", 0))
	assert.Equal(t, 1.0, w.Params().TurnsRatio)

	w.SetConnected(false)
	assert.False(t, w.Params().Connected)

	assert.Error(t, w.SetScalar("phase", 3))
}

func TestWidgetKinds(t *testing.T) {
	src := &nullSource{}
	assert.Equal(t, "ohm", NewOhmWidget(src, nullCanvas{}).Kind())
	assert.Equal(t, "transformer", NewTransformerWidget(src, nullCanvas{}, anim.VariantFlux).Kind())
	assert.Equal(t, "transformer-windings", NewTransformerWidget(src, nullCanvas{}, anim.VariantWindings).Kind())
	assert.Equal(t, "motor", NewMotorWidget(src, nullCanvas{}, nil).Kind())
}

func TestWidgetIDsAreUnique(t *testing.T) {
	src := &nullSource{}
	a := NewOhmWidget(src, nullCanvas{})
	b := NewOhmWidget(src, nullCanvas{})
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestWidgetLifecycle(t *testing.T) {
	src := &nullSource{}
	w := NewOhmWidget(src, nullCanvas{})

	require.NoError(t, w.Start())
	src.fire(0)
	assert.Equal(t, anim.StateRunning, w.Driver().State())

	w.SetVisible(false)
	assert.Equal(t, anim.StatePaused, w.Driver().State())

	w.Stop()
	assert.Equal(t, anim.StateIdle, w.Driver().State())
	assert.Nil(t, src.cb)
}

func TestMotorWidgetPostsUpdateMessage(t *testing.T) {
	bus := make(chan MotorMessage, 4)
	w := NewMotorWidget(&nullSource{}, nullCanvas{}, bus)

	require.NoError(t, w.SetScalar("voltage", 6))

	msg := <-bus
	assert.Equal(t, MotorMessageType, msg.Type)
	assert.Equal(t, w.ID(), msg.Widget)
	assert.Equal(t, 6.0, msg.Voltage)
	assert.Equal(t, 60.0, msg.Speed) // 1 T * 6 V * 5 loops * 2

	w.SetRunning(false)
	msg = <-bus
	assert.False(t, msg.Running)
	assert.Equal(t, 0.0, msg.Speed)
}

func TestPostLatestDropsStale(t *testing.T) {
	ch := make(chan MotorMessage, 1)
	id := uuid.New()

	PostLatest(ch, MotorMessage{Type: MotorMessageType, Widget: id, Voltage: 1})
	PostLatest(ch, MotorMessage{Type: MotorMessageType, Widget: id, Voltage: 2})
	PostLatest(ch, MotorMessage{Type: MotorMessageType, Widget: id, Voltage: 3})

	msg := <-ch
	assert.Equal(t, 3.0, msg.Voltage) // only the newest survives

	select {
	case <-ch:
		t.Fatal("stale message left in the channel")
	default:
	}
}

func TestCardsVisibility(t *testing.T) {
	c := NewCards()
	assert.False(t, c.Visible(0))

	var got []bool
	c.Subscribe(0, func(v bool) { got = append(got, v) })

	c.Observe(0, true)
	c.Observe(0, true) // no change, no notification
	c.Observe(0, false)
	assert.Equal(t, []bool{true, false}, got)

	c.Observe(-1, true) // ignored
	assert.False(t, c.Visible(-1))
}

func TestCardsBindPausesWidget(t *testing.T) {
	src := &nullSource{}
	w := NewOhmWidget(src, nullCanvas{})
	require.NoError(t, w.Start())
	src.fire(0)
	require.Equal(t, anim.StateRunning, w.Driver().State())

	c := NewCards()
	c.Observe(2, true)
	c.Bind(2, w) // card already visible, widget keeps running
	assert.Equal(t, anim.StateRunning, w.Driver().State())

	c.Observe(2, false)
	assert.Equal(t, anim.StatePaused, w.Driver().State())
	c.Observe(2, true)
	assert.Equal(t, anim.StateRunning, w.Driver().State())
}

const presetYaml = `
- type: ohm
  Name: intro circuit
  Card: 0
  Voltage: 9
  Current: 1.5
  Resistance: 6
- type: transformer
  Card: 1
  Variant: windings
  PrimaryVoltage: 120
  PrimaryCurrent: 1
  TurnsRatio: 10
  EfficiencyPct: 90
- type: motor
  Card: 2
  MagneticField: 0.5
  Voltage: 6
  Loops: 10
  Running: true
`

func TestPresetUnmarshal(t *testing.T) {
	var preset Preset
	require.NoError(t, yaml.Unmarshal([]byte(presetYaml), &preset))
	require.Len(t, preset, 3)

	assert.Equal(t, "ohm", preset[0].TypeAsString())
	assert.Equal(t, "transformer", preset[1].TypeAsString())
	assert.Equal(t, "motor", preset[2].TypeAsString())

	ohm, ok := preset[0].(*OhmConfig)
	require.True(t, ok)
	assert.Equal(t, "intro circuit", ohm.Name)
	assert.Equal(t, 9.0, ohm.Voltage)
	assert.Equal(t, 1.5, ohm.Current)

	tr, ok := preset[1].(*TransformerConfig)
	require.True(t, ok)
	assert.Equal(t, "windings", tr.Variant)
	assert.Equal(t, 10.0, tr.TurnsRatio)
	assert.Equal(t, 90, tr.EfficiencyPct)

	m, ok := preset[2].(*MotorConfig)
	require.True(t, ok)
	assert.Equal(t, 10, m.Loops)
	assert.True(t, m.Running)
}

func TestPresetBuildClampsParams(t *testing.T) {
	var preset Preset
	require.NoError(t, yaml.Unmarshal([]byte(`
- type: ohm
  Voltage: 500
  Current: 2
  Resistance: 6
`), &preset))
	require.Len(t, preset, 1)

	w := preset[0].Build(&nullSource{}, nullCanvas{})
	ohm, ok := w.(*OhmWidget)
	require.True(t, ok)
	assert.Equal(t, 24.0, ohm.Params().Voltage)
}

func TestPresetUnknownType(t *testing.T) {
	var preset Preset
	err := yaml.Unmarshal([]byte("- type: oscilloscope\n"), &preset)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown widget type")
}

func TestPresetUnknownVariant(t *testing.T) {
	var preset Preset
	err := yaml.Unmarshal([]byte("- type: transformer\n  Variant: tesla\n"), &preset)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transformer variant")
}

func TestPresetMissingType(t *testing.T) {
	var preset Preset
	err := yaml.Unmarshal([]byte("- Name: anonymous\n"), &preset)
	require.Error(t, err)
}

func TestLoadPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetYaml), 0o644))

	preset, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Len(t, preset, 3)

	_, err = LoadPreset(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
