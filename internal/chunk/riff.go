package chunk

import "encoding/binary"

// RIFFWriter assembles a minimal RIFF container: the "RIFF" header with a
// four-character form type, followed by tagged sub-chunks. Chunk data is
// padded to even length per the RIFF rules.
type RIFFWriter struct {
	form   [4]byte
	chunks []riffChunk
}

type riffChunk struct {
	id   [4]byte
	data []byte
}

// NewRIFFWriter creates a writer for the given form type, e.g. "ANIM".
func NewRIFFWriter(form string) *RIFFWriter {
	w := &RIFFWriter{}
	copy(w.form[:], form)
	return w
}

// AddChunk appends a sub-chunk under the given four-character id.
func (w *RIFFWriter) AddChunk(id string, data []byte) {
	var c riffChunk
	copy(c.id[:], id)
	c.data = data
	w.chunks = append(w.chunks, c)
}

// Bytes serializes the container.
func (w *RIFFWriter) Bytes() []byte {
	size := 4 // form type
	for _, c := range w.chunks {
		size += 8 + len(c.data) + len(c.data)%2
	}

	out := make([]byte, 0, 8+size)
	out = append(out, 'R', 'I', 'F', 'F')
	out = appendU32(out, uint32(size))
	out = append(out, w.form[:]...)

	for _, c := range w.chunks {
		out = append(out, c.id[:]...)
		out = appendU32(out, uint32(len(c.data)))
		out = append(out, c.data...)
		if len(c.data)%2 == 1 {
			out = append(out, 0)
		}
	}

	return out
}

func appendU32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}
