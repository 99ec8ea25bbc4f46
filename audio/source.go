// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// Source is a streaming PCM input, implemented by every format decoder.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g., "wav", "mp3") to decoders so callers can
// resolve a decoder from a file extension at run time.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// ReadAll drains a Source into a Buffer.  This is the bridge between the
// streaming decode layer and the buffer-oriented processing stages, which
// need the whole track in memory for looping and length matching.
func ReadAll(src Source) (*Buffer, error) {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	buf := &Buffer{
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
	}

	tmp := make([]float32, size)
	for {
		n, err := src.ReadSamples(tmp)
		if n > 0 {
			buf.Data = append(buf.Data, tmp[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if err := buf.Validate(); err != nil {
		return nil, err
	}
	return buf, nil
}
