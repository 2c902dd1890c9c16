package widgets

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"

	"github.com/voltbench/widgets/anim"
	"github.com/voltbench/widgets/params"
)

// WidgetConfig is one entry of a preset file: a widget kind plus its initial
// parameter record.
type WidgetConfig interface {
	TypeAsString() string                                     // Returns the widget kind as a string
	Build(source anim.FrameSource, canvas anim.Canvas) Widget // Builds a widget initialized from this entry
	Validate() error                                          // Checks fields that clamping cannot repair
}

// Preset is an ordered collection of widget configurations.
type Preset []WidgetConfig

// OhmConfig configures an Ohm's-law widget.
type OhmConfig struct {
	Name       string `yaml:"Name"` // display name, optional
	Card       int    `yaml:"Card"` // scroll-reveal card index
	params.Ohm `yaml:",inline" mapstructure:",squash"`
}

func (c *OhmConfig) TypeAsString() string { return "ohm" }

func (c *OhmConfig) Build(source anim.FrameSource, canvas anim.Canvas) Widget {
	w := NewOhmWidget(source, canvas)
	w.Update(c.Ohm)
	return w
}

func (c *OhmConfig) Validate() error { return nil }

// TransformerConfig configures a transformer widget in either variant.
type TransformerConfig struct {
	Name               string `yaml:"Name"`
	Card               int    `yaml:"Card"`
	Variant            string `yaml:"Variant"` // "flux" (default) or "windings"
	params.Transformer `yaml:",inline" mapstructure:",squash"`
}

func (c *TransformerConfig) TypeAsString() string { return "transformer" }

func (c *TransformerConfig) Build(source anim.FrameSource, canvas anim.Canvas) Widget {
	variant := anim.VariantFlux
	if c.Variant == "windings" {
		variant = anim.VariantWindings
	}
	w := NewTransformerWidget(source, canvas, variant)
	w.Update(c.Transformer)
	return w
}

func (c *TransformerConfig) Validate() error {
	switch c.Variant {
	case "", "flux", "windings":
		return nil
	default:
		return fmt.Errorf("widgets: unknown transformer variant %q", c.Variant)
	}
}

// MotorConfig configures a DC motor widget.
type MotorConfig struct {
	Name         string `yaml:"Name"`
	Card         int    `yaml:"Card"`
	params.Motor `yaml:",inline" mapstructure:",squash"`
}

func (c *MotorConfig) TypeAsString() string { return "motor" }

func (c *MotorConfig) Build(source anim.FrameSource, canvas anim.Canvas) Widget {
	w := NewMotorWidget(source, canvas, nil)
	w.Update(c.Motor)
	return w
}

func (c *MotorConfig) Validate() error { return nil }

// UnmarshalYAML unmarshals a preset file, a list of widget entries switched
// on their "type" field.
func (p *Preset) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var unmarshaledYaml []map[string]interface{}
	if err := unmarshal(&unmarshaledYaml); err != nil {
		return err
	}

	for _, yamlEntry := range unmarshaledYaml {
		cfg, err := createConfigFromYamlEntry(yamlEntry)
		if err != nil {
			return err
		}
		*p = append(*p, cfg)
	}

	return nil
}

// LoadPreset reads and decodes a preset file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("widgets: read preset: %w", err)
	}
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("widgets: decode preset: %w", err)
	}
	return preset, nil
}

// GetDecodeHook returns a decodeHook function that can be used to unmarshal
// widget configurations with mapstructure-based configuration solutions.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*WidgetConfig)(nil)).Elem() {
			return createConfigFromYamlEntry(yamlEntry)
		}
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a widget configuration from a yaml entry based on its "type"
// (or "Type") field.
func createConfigFromYamlEntry(yamlEntry interface{}) (WidgetConfig, error) {
	m, ok := yamlEntry.(map[string]interface{})
	if !ok {
		mi, ok := yamlEntry.(map[interface{}]interface{})
		if !ok {
			return nil, fmt.Errorf("widgets: preset entry cannot be parsed to a map: %v", yamlEntry)
		}
		m = make(map[string]interface{}, len(mi))
		for k, v := range mi {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("widgets: preset entry has non-string key: %v", k)
			}
			m[key] = v
		}
	}

	// Both spellings, because some yaml parsers lower-case keys.
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("widgets: preset entry type field is missing or not a string")
		}
	}

	var cfg WidgetConfig
	switch typeStr {
	case "ohm":
		cfg = &OhmConfig{}
	case "transformer":
		cfg = &TransformerConfig{}
	case "motor":
		cfg = &MotorConfig{}
	default:
		return nil, fmt.Errorf("widgets: unknown widget type: %s", typeStr)
	}

	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     cfg,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
