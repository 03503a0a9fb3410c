// Package wav serializes mono 16-bit PCM audio into the canonical
// 44-byte RIFF/WAVE container and parses such containers back into
// samples. Every header field is written at its documented byte offset
// with an explicit width, so the layout never depends on struct packing.
package wav

import (
	"encoding/binary"
	"fmt"
)

// Fixed output format: PCM s16le, 44.1kHz, mono.
const (
	SampleRate     = 44100
	NumChannels    = 1
	BitsPerSample  = 16
	BytesPerSample = 2
	ByteRate       = SampleRate * NumChannels * BytesPerSample
	BlockAlign     = NumChannels * BytesPerSample

	// HeaderSize is the byte length of the RIFF descriptor plus the
	// "fmt " and "data" sub-chunk headers.
	HeaderSize = 44

	formatPCM    = 1
	fmtChunkSize = 16
	riffOverhead = 4 + (8 + fmtChunkSize) + 8 // ChunkSize minus the data bytes
)

// Header describes one RIFF/WAVE container. The three magic tags and
// the fmt sub-chunk size are implied and not stored.
type Header struct {
	ChunkSize     uint32 // riffOverhead + DataSize
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32 // bytes of PCM following the header
}

// NewHeader builds the header for dataSize bytes of PCM in the fixed
// output format. dataSize must be the true serialized buffer length.
func NewHeader(dataSize int) Header {
	return Header{
		ChunkSize:     riffOverhead + uint32(dataSize),
		AudioFormat:   formatPCM,
		NumChannels:   NumChannels,
		SampleRate:    SampleRate,
		ByteRate:      ByteRate,
		BlockAlign:    BlockAlign,
		BitsPerSample: BitsPerSample,
		DataSize:      uint32(dataSize),
	}
}

// AppendBinary appends the 44-byte serialized header to b.
func (h Header) AppendBinary(b []byte) []byte {
	out := make([]byte, HeaderSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], h.ChunkSize)
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(out[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(out[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(out[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(out[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(out[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(out[34:36], h.BitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], h.DataSize)

	return append(b, out...)
}

// ParseHeader reads a header from the first 44 bytes of b, checking the
// magic tags and the fmt sub-chunk size.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("wav: header truncated: %d bytes", len(b))
	}
	if string(b[0:4]) != "RIFF" {
		return Header{}, fmt.Errorf("wav: bad RIFF tag %q", b[0:4])
	}
	if string(b[8:12]) != "WAVE" {
		return Header{}, fmt.Errorf("wav: bad WAVE tag %q", b[8:12])
	}
	if string(b[12:16]) != "fmt " {
		return Header{}, fmt.Errorf("wav: bad fmt tag %q", b[12:16])
	}
	if size := binary.LittleEndian.Uint32(b[16:20]); size != fmtChunkSize {
		return Header{}, fmt.Errorf("wav: unsupported fmt chunk size %d", size)
	}
	if string(b[36:40]) != "data" {
		return Header{}, fmt.Errorf("wav: bad data tag %q", b[36:40])
	}

	h := Header{
		ChunkSize:     binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}
	if h.AudioFormat != formatPCM {
		return Header{}, fmt.Errorf("wav: unsupported audio format %d", h.AudioFormat)
	}
	if h.ChunkSize != riffOverhead+h.DataSize {
		return Header{}, fmt.Errorf("wav: chunk size %d does not match data size %d", h.ChunkSize, h.DataSize)
	}
	return h, nil
}

// Encode serializes samples into a complete container: header first,
// then each sample as little-endian int16.
func Encode(samples []int16) []byte {
	dataSize := len(samples) * BytesPerSample
	out := make([]byte, 0, HeaderSize+dataSize)
	out = NewHeader(dataSize).AppendBinary(out)
	return appendSamples(out, samples)
}

// Decode parses a complete container produced by Encode or any
// compliant writer of the fixed format. The declared data size must
// match the bytes actually present.
func Decode(b []byte) (Header, []int16, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return Header{}, nil, err
	}
	data := b[HeaderSize:]
	if uint32(len(data)) != h.DataSize {
		return Header{}, nil, fmt.Errorf("wav: header declares %d data bytes, found %d", h.DataSize, len(data))
	}
	return h, BytesToInt16(data), nil
}

func appendSamples(b []byte, samples []int16) []byte {
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint16(b, uint16(s))
	}
	return b
}

// BytesToInt16 converts s16le bytes to int16 samples.
func BytesToInt16(data []byte) []int16 {
	samples := make([]int16, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}
