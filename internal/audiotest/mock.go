// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds sources and buffers shared by the audio tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio from a waveform function. It implements
// audio.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int
	waveform     func(sample int, channel int) float32

	// Closed counts Close calls.
	Closed int
}

// NewMockSource creates a source of totalSamples frames; waveform gives the
// value of each frame and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewRampSource counts frames: frame i holds i*step on every channel.
func NewRampSource(sampleRate, channels, totalSamples int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		return float32(sample) * step
	})
}

// NewSliceSource plays back interleaved values.
func NewSliceSource(sampleRate, channels int, values []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(values)/channels, func(sample int, channel int) float32 {
		return values[sample*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.Closed++
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// Reader is the reading half of audio.Source.
type Reader interface {
	Channels() int
	ReadSamples(dst []float32) (int, error)
}

// ReadAll drains src with reads of bufFrames frames.
func ReadAll(src Reader, bufFrames int) ([]float32, error) {
	buf := make([]float32, bufFrames*src.Channels())
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, io.ErrNoProgress
		}
	}
}
