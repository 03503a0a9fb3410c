package dtmf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/easydtmf/easydtmf/internal/wav"
)

func TestValidateDigits(t *testing.T) {
	for _, digits := range []string{"", "0123456789#*-", "555-0123", "*69"} {
		if err := ValidateDigits(digits); err != nil {
			t.Errorf("%q: expected valid, got %v", digits, err)
		}
	}
	for _, digits := range []string{"12a", "555 0123", "+34600111222", "1.2"} {
		err := ValidateDigits(digits)
		if !errors.Is(err, ErrInvalidDigits) {
			t.Errorf("%q: expected ErrInvalidDigits, got %v", digits, err)
		}
	}
}

func TestValidateDuration(t *testing.T) {
	for _, d := range []float64{0.1, 0.3, 1.0} {
		if err := ValidateDuration(d); err != nil {
			t.Errorf("%g: expected valid, got %v", d, err)
		}
	}
	for _, d := range []float64{0.05, 0.0999, 1.0001, 1.5, -0.3, 0} {
		err := ValidateDuration(d)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("%g: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestRenderSamplesLength(t *testing.T) {
	samples, err := RenderSamples("123", 0.3)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := 3 * int(44100*0.3)
	if len(samples) != want {
		t.Errorf("expected %d samples, got %d", want, len(samples))
	}
}

func TestRenderSamplesToneShape(t *testing.T) {
	samples, err := RenderSamples("5", 0.1)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// sin(0) + sin(0)
	if samples[0] != 0 {
		t.Errorf("expected first sample 0, got %d", samples[0])
	}

	// Two components of amplitude 16382 can sum to at most 32764.
	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
		if s < -2*Amplitude || s > 2*Amplitude {
			t.Fatalf("sample %d outside summed amplitude bound", s)
		}
	}
	if peak < Amplitude {
		t.Errorf("tone peak %d suspiciously low for a two-component tone", peak)
	}
}

func TestRenderSamplesPauseIsSilent(t *testing.T) {
	samples, err := RenderSamples("-", 0.2)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(samples) != int(44100*0.2) {
		t.Fatalf("expected %d samples, got %d", int(44100*0.2), len(samples))
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, s)
		}
	}
}

func TestRenderSamplesEachSymbolStartsAtZero(t *testing.T) {
	samples, err := RenderSamples("19", 0.1)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	perTone := SamplesPerTone(0.1)
	if samples[0] != 0 || samples[perTone] != 0 {
		t.Errorf("expected both tones to start at 0, got %d and %d", samples[0], samples[perTone])
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("555-0123", 0.25)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	b, err := Encode("555-0123", 0.25)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical inputs produced different output bytes")
	}
}

func TestEncodeHeaderMatchesData(t *testing.T) {
	data, err := Encode("123", 0.3)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	h, samples, err := wav.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	wantBytes := 3 * int(44100*0.3) * 2
	if h.DataSize != uint32(wantBytes) {
		t.Errorf("expected data size %d, got %d", wantBytes, h.DataSize)
	}
	if h.ChunkSize != uint32(36+wantBytes) {
		t.Errorf("expected chunk size %d, got %d", 36+wantBytes, h.ChunkSize)
	}
	if h.SampleRate != 44100 || h.NumChannels != 1 || h.BitsPerSample != 16 {
		t.Errorf("unexpected format fields: %+v", h)
	}
	if len(samples)*2 != wantBytes {
		t.Errorf("expected %d sample bytes, got %d", wantBytes, len(samples)*2)
	}
}

func TestEncodeEmptyDigits(t *testing.T) {
	data, err := Encode("", 0.5)
	if err != nil {
		t.Fatalf("expected empty dial string to be accepted, got %v", err)
	}
	h, samples, err := wav.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if h.DataSize != 0 || len(samples) != 0 {
		t.Errorf("expected zero-data container, got %d declared / %d samples", h.DataSize, len(samples))
	}
}

func TestSynthesizeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	if err := Synthesize(path, 0.3, "123"); err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	inMem, err := Encode("123", 0.3)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !bytes.Equal(onDisk, inMem) {
		t.Error("file bytes differ from in-memory encoding")
	}
}

func TestSynthesizeInvalidInputCreatesNoFile(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name     string
		duration float64
		digits   string
		kind     error
	}{
		{"bad digit", 0.3, "12a", ErrInvalidDigits},
		{"duration too short", 0.05, "123", ErrInvalidDuration},
		{"duration too long", 1.5, "123", ErrInvalidDuration},
		{"both invalid", 1.5, "12a", ErrInvalidDigits},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".wav")
			err := Synthesize(path, tc.duration, tc.digits)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Error("expected no file on invalid input")
			}
		})
	}
}

func TestSynthesizeBadPath(t *testing.T) {
	err := Synthesize(filepath.Join(t.TempDir(), "missing", "out.wav"), 0.3, "123")
	if err == nil {
		t.Error("expected I/O error for nonexistent directory")
	}
}
