// Package waveform provides the named periodic functions used to modulate
// decorative scene elements (glow pulsing, core shimmer).
package waveform

import (
	"errors"
	"math"

	"github.com/teknico/sigourney/fast"
)

// A periodic function y=f(t,A,T). Takes amplitude, A, and period, T, as
// inputs and returns the value of the function at time, t.
type PulseFunction func(t, A, T float64) float64

// A map between string name and pulse function pairs.
var pulseFunctions = map[string]PulseFunction{
	"sine":     Sine,
	"cosine":   cosineWave,
	"triangle": triangleWave,
	"sawtooth": sawtoothWave,
	"square":   squareWave,
	"breathe":  breathe,
	"flat":     flat,
}

// Names returns the names of all registered pulse functions.
func Names() []string {
	names := make([]string, 0, len(pulseFunctions))
	for name := range pulseFunctions {
		names = append(names, name)
	}
	return names
}

// FromName returns the named pulse function. Defaults to sine if name is empty.
func FromName(name string) (PulseFunction, error) {
	if name == "" {
		name = "sine"
	}
	pulseFunc, ok := pulseFunctions[name]
	if !ok {
		return nil, errors.New("pulse function not found")
	}
	return pulseFunc, nil
}

// Returns a sine wave y=A*sin(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func Sine(t, A, T float64) float64 {
	return A * math.Sin(2*math.Pi*t/T)
}

// Returns a cosine wave y=A*cos(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func cosineWave(t, A, T float64) float64 {
	return A * math.Cos(2*math.Pi*t/T)
}

// Returns a triangle wave of amplitude A and period T, starting at zero and
// rising first.
func triangleWave(t, A, T float64) float64 {
	u := math.Mod(t/T+0.75, 1)
	return A * (4*math.Abs(u-0.5) - 1)
}

// Returns a sawtooth wave y=(2*A/pi)*atan(tan(pi*t/T)),
// where A is the amplitude, T is the period, and t is elapsed time.
func sawtoothWave(t, A, T float64) float64 {
	return (2 * A / math.Pi) * math.Atan(math.Tan(math.Pi*t/T))
}

// Returns a square wave y=A if sin(2*pi*t/T) >= 0, else -A,
// where A is the amplitude, T is the period, and t is elapsed time.
func squareWave(t, A, T float64) float64 {
	if fast.Sin(2*math.Pi*t/T) >= 0 {
		return A
	}
	return -A
}

// Returns a slow ease-in-out oscillation between A/2 and A, used for glow
// breathing. Never negative.
func breathe(t, A, T float64) float64 {
	s := math.Sin(2 * math.Pi * t / T)
	return A * (0.5 + 0.5*s*s)
}

// Returns a constant zero, switching modulation off.
func flat(t, A, T float64) float64 {
	return 0
}
