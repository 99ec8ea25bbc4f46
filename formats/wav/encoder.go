// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/dadantech/sublimix/audio"
	"github.com/dadantech/sublimix/utils"
)

// Encode serializes buf as an uncompressed PCM WAV container at the
// buffer's native sample rate.  bitDepth must be 16 or 24; 24-bit keeps
// quantization noise below audibility when the content extends past 18 kHz.
//
// Encode is purely a serializer: no resampling, dithering or recompression
// happens here.  The result is fully materialized in memory, so the caller
// either receives a complete container or an error and nothing else.
func Encode(buf *audio.Buffer, bitDepth int) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	}

	ws := &writeSeeker{}
	enc := gowav.NewEncoder(ws, buf.SampleRate, bitDepth, buf.Channels, 1)

	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.SampleRate,
		},
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: bitDepth,
	}

	switch bitDepth {
	case 16:
		for i, s := range buf.Data {
			intBuf.Data[i] = int(utils.Float32ToInt16(s))
		}
	case 24:
		for i, s := range buf.Data {
			intBuf.Data[i] = int(utils.Float32ToInt24(s))
		}
	}

	if err := enc.Write(intBuf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}

	return ws.data, nil
}

// writeSeeker implements io.WriteSeeker for in-memory data.  The go-audio
// encoder seeks back over the RIFF header to patch chunk sizes on Close.
type writeSeeker struct {
	data   []byte
	offset int64
}

func (ws *writeSeeker) Write(p []byte) (int, error) {
	if need := ws.offset + int64(len(p)); need > int64(len(ws.data)) {
		grown := make([]byte, need)
		copy(grown, ws.data)
		ws.data = grown
	}
	n := copy(ws.data[ws.offset:], p)
	ws.offset += int64(n)
	return n, nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}
