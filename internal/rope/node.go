package rope

// Tree structure constants.
const (
	// MinChildren is the minimum children per internal node (except root).
	MinChildren = 4

	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope's B-tree. Leaf nodes (height == 0) hold byte
// chunks directly; internal nodes hold child references plus a per-child
// byte-length summary for O(log n) offset seeking.
type Node struct {
	height uint8
	length int

	children       []*Node
	childLengths   []int

	chunks []Chunk
}

func newLeafNode() *Node {
	return &Node{height: 0, chunks: make([]Chunk, 0, MaxChunksPerLeaf)}
}

func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{height: 0, chunks: chunks}
	n.recomputeLength()
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	height := children[0].height + 1
	lengths := make([]int, len(children))
	total := 0
	for i, child := range children {
		lengths[i] = child.length
		total += child.length
	}

	return &Node{
		height:       height,
		length:       total,
		children:     children,
		childLengths: lengths,
	}
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of this subtree.
func (n *Node) Len() int {
	return n.length
}

func (n *Node) recomputeLength() {
	if n.IsLeaf() {
		total := 0
		for _, c := range n.chunks {
			total += c.Len()
		}
		n.length = total
		return
	}
	n.childLengths = make([]int, len(n.children))
	total := 0
	for i, c := range n.children {
		n.childLengths[i] = c.length
		total += c.length
	}
	n.length = total
}

func (n *Node) clone() *Node {
	if n.IsLeaf() {
		chunks := make([]Chunk, len(n.chunks))
		copy(chunks, n.chunks)
		return &Node{height: 0, length: n.length, chunks: chunks}
	}

	children := make([]*Node, len(n.children))
	copy(children, n.children)
	lengths := make([]int, len(n.childLengths))
	copy(lengths, n.childLengths)

	return &Node{
		height:       n.height,
		length:       n.length,
		children:     children,
		childLengths: lengths,
	}
}

// appendTo appends every byte in this subtree, in order, to dst.
func (n *Node) appendTo(dst []byte) []byte {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			dst = append(dst, c.Bytes()...)
		}
		return dst
	}
	for _, child := range n.children {
		dst = child.appendTo(dst)
	}
	return dst
}

// bytesInRange extracts the bytes in [start, end).
func (n *Node) bytesInRange(start, end int) []byte {
	if start >= end || start >= n.Len() {
		return nil
	}
	if end > n.Len() {
		end = n.Len()
	}

	out := make([]byte, 0, end-start)
	return n.appendRange(out, start, end)
}

func (n *Node) appendRange(dst []byte, start, end int) []byte {
	if start >= end {
		return dst
	}

	if n.IsLeaf() {
		offset := 0
		for _, c := range n.chunks {
			chunkLen := c.Len()
			chunkEnd := offset + chunkLen

			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = start - offset
			}
			sliceEnd := chunkLen
			if end < chunkEnd {
				sliceEnd = end - offset
			}

			dst = append(dst, c.Bytes()[sliceStart:sliceEnd]...)
			offset = chunkEnd
		}
		return dst
	}

	offset := 0
	for i, child := range n.children {
		childLen := n.childLengths[i]
		childEnd := offset + childLen

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := 0
		if start > offset {
			childStart = start - offset
		}
		childEndAdj := childLen
		if end < childEnd {
			childEndAdj = end - offset
		}

		dst = child.appendRange(dst, childStart, childEndAdj)
		offset = childEnd
	}
	return dst
}

// byteAt returns the byte at offset and true, or 0 and false if out of range.
func (n *Node) byteAt(offset int) (byte, bool) {
	node := n
	for !node.IsLeaf() {
		idx, childOffset := node.findChildByOffset(offset)
		if idx < 0 {
			return 0, false
		}
		node = node.children[idx]
		offset = childOffset
	}
	for _, c := range node.chunks {
		if offset < c.Len() {
			return c.Bytes()[offset], true
		}
		offset -= c.Len()
	}
	return 0, false
}

// split splits the node at offset into [0, offset) and [offset, end).
func (n *Node) split(offset int) (*Node, *Node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.Len() {
		return n.clone(), newLeafNode()
	}

	if n.IsLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *Node) splitLeaf(offset int) (*Node, *Node) {
	var leftChunks, rightChunks []Chunk
	current := 0

	for _, c := range n.chunks {
		chunkLen := c.Len()

		switch {
		case current+chunkLen <= offset:
			leftChunks = append(leftChunks, c)
		case current >= offset:
			rightChunks = append(rightChunks, c)
		default:
			splitPoint := offset - current
			left, right := c.Split(splitPoint)
			if !left.IsEmpty() {
				leftChunks = append(leftChunks, left)
			}
			if !right.IsEmpty() {
				rightChunks = append(rightChunks, right)
			}
		}
		current += chunkLen
	}

	return newLeafNodeWithChunks(leftChunks), newLeafNodeWithChunks(rightChunks)
}

func (n *Node) splitInternal(offset int) (*Node, *Node) {
	var leftChildren, rightChildren []*Node
	current := 0

	for i, child := range n.children {
		childLen := n.childLengths[i]

		switch {
		case current+childLen <= offset:
			leftChildren = append(leftChildren, child)
		case current >= offset:
			rightChildren = append(rightChildren, child)
		default:
			left, right := child.split(offset - current)
			if left.Len() > 0 {
				leftChildren = append(leftChildren, left)
			}
			if right.Len() > 0 {
				rightChildren = append(rightChildren, right)
			}
		}
		current += childLen
	}

	return buildNodeFromChildren(leftChildren), buildNodeFromChildren(rightChildren)
}

func buildNodeFromChildren(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}
	if len(children) == 1 {
		return children[0]
	}
	if len(children) <= MaxChildren {
		return newInternalNode(children)
	}

	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := i + MaxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternalNode(children[i:end]))
	}
	return buildNodeFromChildren(parents)
}

func concatNodes(left, right *Node) *Node {
	if left == nil || left.Len() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.Len() == 0 {
		return left
	}

	if left.IsLeaf() && right.IsLeaf() {
		return concatLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternalNode([]*Node{left})
	}
	for right.height < left.height {
		right = newInternalNode([]*Node{right})
	}

	return mergeNodes(left, right)
}

func concatLeaves(left, right *Node) *Node {
	total := len(left.chunks) + len(right.chunks)

	if total <= MaxChunksPerLeaf {
		chunks := make([]Chunk, 0, total)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeafNodeWithChunks(chunks)
	}

	return newInternalNode([]*Node{left.clone(), right.clone()})
}

func mergeNodes(left, right *Node) *Node {
	if left.IsLeaf() {
		return concatLeaves(left, right)
	}

	allChildren := make([]*Node, 0, len(left.children)+len(right.children))
	allChildren = append(allChildren, left.children...)
	allChildren = append(allChildren, right.children...)

	if len(allChildren) <= MaxChildren {
		return newInternalNode(allChildren)
	}
	return buildNodeFromChildren(allChildren)
}

// findChildByOffset returns the index of the child containing offset and
// the offset translated into that child's local coordinates.
func (n *Node) findChildByOffset(offset int) (int, int) {
	if n.IsLeaf() || len(n.children) == 0 {
		return -1, 0
	}

	current := 0
	for i, length := range n.childLengths {
		if current+length > offset {
			return i, offset - current
		}
		current += length
	}

	lastIdx := len(n.children) - 1
	return lastIdx, offset - (n.length - n.childLengths[lastIdx])
}

func countChunks(n *Node) int {
	if n.IsLeaf() {
		return len(n.chunks)
	}
	count := 0
	for _, child := range n.children {
		count += countChunks(child)
	}
	return count
}
