package dtmf

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/easydtmf/easydtmf/internal/wav"
)

// Amplitude is the per-component peak. The two-tone sum peaks at twice
// this value, which still fits int16, so the conversion never wraps.
const Amplitude = 16382

// Tone duration bounds in seconds, both inclusive.
const (
	MinToneSeconds = 0.1
	MaxToneSeconds = 1.0
)

// Invalid-input kinds. Both are detected before any file I/O.
var (
	ErrInvalidDigits   = errors.New("digit string contains a symbol outside 0-9 # * -")
	ErrInvalidDuration = errors.New("tone duration outside [0.1, 1.0] seconds")
)

// ValidateDigits checks every symbol of the dial string against the
// keypad alphabet. The empty string is valid and synthesizes to an
// empty sample buffer.
func ValidateDigits(digits string) error {
	for i := 0; i < len(digits); i++ {
		if !validSymbol(digits[i]) {
			return fmt.Errorf("symbol %q at position %d: %w", digits[i], i, ErrInvalidDigits)
		}
	}
	return nil
}

// ValidateDuration checks the per-tone duration bounds.
func ValidateDuration(durationSec float64) error {
	if durationSec < MinToneSeconds || durationSec > MaxToneSeconds {
		return fmt.Errorf("%g: %w", durationSec, ErrInvalidDuration)
	}
	return nil
}

// SamplesPerTone is the number of samples each symbol contributes at
// the given duration. Buffer sizing and the synthesis loop both use
// this single value, so the declared data size always matches the
// samples actually written.
func SamplesPerTone(durationSec float64) int {
	return int(wav.SampleRate * durationSec)
}

// RenderSamples validates the inputs and synthesizes the full sample
// buffer: for each symbol in order, SamplesPerTone samples of the
// summed component sines, appended back to back with no gaps.
func RenderSamples(digits string, durationSec float64) ([]int16, error) {
	if err := ValidateDigits(digits); err != nil {
		return nil, err
	}
	if err := ValidateDuration(durationSec); err != nil {
		return nil, err
	}

	perTone := SamplesPerTone(durationSec)
	samples := make([]int16, 0, perTone*len(digits))

	for i := 0; i < len(digits); i++ {
		pair := Frequencies(digits[i])
		for n := 0; n < perTone; n++ {
			phase := 2 * math.Pi * float64(n) / wav.SampleRate
			v := Amplitude * (math.Sin(phase*pair.Upper) + math.Sin(phase*pair.Lower))
			samples = append(samples, int16(v))
		}
	}
	return samples, nil
}

// Encode renders the dial string and serializes it into a complete
// WAV container.
func Encode(digits string, durationSec float64) ([]byte, error) {
	samples, err := RenderSamples(digits, durationSec)
	if err != nil {
		return nil, err
	}
	return wav.Encode(samples), nil
}

// Synthesize writes the DTMF rendition of digits to path, creating or
// truncating the file. Invalid input fails before the file is touched;
// a write error may leave a partial file behind.
func Synthesize(path string, durationSec float64, digits string) error {
	data, err := Encode(digits, durationSec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}
