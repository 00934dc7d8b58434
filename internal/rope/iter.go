package rope

// chunkIterFrame is a stack frame during tree traversal for chunk iteration.
type chunkIterFrame struct {
	node     *Node
	childIdx int
	chunkIdx int
	offset   int
}

// ChunkIterator lazily yields the byte chunks covering a rope's range, in
// order, each entirely within a leaf, each non-empty, together covering the
// range exactly once.
type ChunkIterator struct {
	rope       Rope
	start, end int
	stack      []chunkIterFrame
	started    bool
	chunk      []byte
}

// Chunks returns an iterator over the chunks covering [start, end).
func (r Rope) Chunks(start, end int) *ChunkIterator {
	if end > r.Len() {
		end = r.Len()
	}
	if start < 0 {
		start = 0
	}
	return &ChunkIterator{rope: r, start: start, end: end}
}

// Next advances to the next chunk. Returns false when iteration is done.
func (it *ChunkIterator) Next() bool {
	if it.start >= it.end {
		return false
	}
	if !it.started {
		it.started = true
		if it.rope.root == nil {
			return false
		}
		it.stack = append(it.stack, chunkIterFrame{node: it.rope.root})
	} else if len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.node.IsLeaf() {
			top.chunkIdx++
		}
	}
	return it.advance()
}

func (it *ChunkIterator) advance() bool {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		node := frame.node

		if node.IsLeaf() {
			if frame.chunkIdx >= len(node.chunks) {
				it.stack = it.stack[:len(it.stack)-1]
				if len(it.stack) > 0 {
					it.stack[len(it.stack)-1].childIdx++
				}
				continue
			}

			chunkOffset := frame.offset
			for i := 0; i < frame.chunkIdx; i++ {
				chunkOffset += node.chunks[i].Len()
			}
			c := node.chunks[frame.chunkIdx]
			chunkEnd := chunkOffset + c.Len()

			if chunkEnd <= it.start || chunkOffset >= it.end {
				frame.chunkIdx++
				continue
			}

			sliceStart := 0
			if it.start > chunkOffset {
				sliceStart = it.start - chunkOffset
			}
			sliceEnd := c.Len()
			if it.end < chunkEnd {
				sliceEnd = it.end - chunkOffset
			}

			it.chunk = c.Bytes()[sliceStart:sliceEnd]
			return true
		}

		if frame.childIdx >= len(node.children) {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.stack) > 0 {
				it.stack[len(it.stack)-1].childIdx++
			}
			continue
		}

		childOffset := frame.offset
		for i := 0; i < frame.childIdx; i++ {
			childOffset += node.childLengths[i]
		}
		child := node.children[frame.childIdx]
		childEnd := childOffset + child.Len()

		if childEnd <= it.start || childOffset >= it.end {
			frame.childIdx++
			continue
		}

		it.stack = append(it.stack, chunkIterFrame{node: child, offset: childOffset})
	}
	return false
}

// Chunk returns the current chunk. Valid only after Next returns true.
func (it *ChunkIterator) Chunk() []byte {
	return it.chunk
}
