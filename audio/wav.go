package audio

import (
	"io"

	wav "github.com/youpy/go-wav"
)

// WriteWAV encodes samples as a 16-bit mono WAV file at the engine sample
// rate. Samples are expected in [-1, 1]; values outside are clipped.
func WriteWAV(w io.Writer, samples []float64) error {
	const scale = 1<<15 - 1

	writer := wav.NewWriter(w, uint32(len(samples)), 1, SampleRate, 16)
	buf := make([]wav.Sample, 0, bufferSize)
	for _, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		buf = append(buf, wav.Sample{Values: [2]int{int(s * scale), 0}})
		if len(buf) == cap(buf) {
			if err := writer.WriteSamples(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		return writer.WriteSamples(buf)
	}
	return nil
}
