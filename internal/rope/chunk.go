package rope

// Chunk size constants control the granularity of byte storage. Binary
// leaves don't need UTF-8 boundary slack, so these are larger than a
// text-rope's chunk bounds.
const (
	// MinChunkSize is the minimum bytes per chunk (except the last chunk).
	MinChunkSize = 512

	// MaxChunkSize is the maximum bytes per chunk before splitting.
	MaxChunkSize = 4096

	// TargetChunkSize is the preferred chunk size when building.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk is a bounded, immutable byte slice stored in a leaf node.
type Chunk struct {
	data []byte
}

// NewChunk creates a chunk from a byte slice. The slice is copied so the
// chunk is safe to retain independent of the caller's buffer.
func NewChunk(b []byte) Chunk {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Chunk{data: cp}
}

// Bytes returns the chunk's underlying bytes. Callers must not mutate the
// returned slice.
func (c Chunk) Bytes() []byte {
	return c.data
}

// Len returns the byte length of the chunk.
func (c Chunk) Len() int {
	return len(c.data)
}

// IsEmpty returns true if the chunk holds no bytes.
func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// Split splits a chunk at the given byte offset, returning two chunks.
func (c Chunk) Split(offset int) (Chunk, Chunk) {
	if offset <= 0 {
		return Chunk{}, c
	}
	if offset >= len(c.data) {
		return c, Chunk{}
	}
	return NewChunk(c.data[:offset]), NewChunk(c.data[offset:])
}

// splitIntoChunks splits a byte slice into a sequence of bounded chunks.
func splitIntoChunks(b []byte) []Chunk {
	if len(b) == 0 {
		return nil
	}

	var chunks []Chunk
	for len(b) > 0 {
		size := TargetChunkSize
		if size > len(b) {
			size = len(b)
		}
		// Avoid leaving a tiny trailing chunk below MinChunkSize.
		if len(b)-size > 0 && len(b)-size < MinChunkSize {
			size = len(b)
		}
		chunks = append(chunks, NewChunk(b[:size]))
		b = b[size:]
	}
	return chunks
}
