package buffer

import "path/filepath"

// Collection holds the set of open buffers and tracks which is current.
// Mirrors the single-document-at-a-time model of the CLI: most commands
// operate on Current(); :edit and buffer-switching commands change it.
type Collection struct {
	list    []*Buffer
	current int
}

// NewCollection returns a collection seeded with a single scratch buffer.
func NewCollection() *Collection {
	return &Collection{list: []*Buffer{NewScratch()}}
}

// NewCollectionFromPath returns a collection whose sole buffer is a window
// over path.
func NewCollectionFromPath(path string) (*Collection, error) {
	b, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &Collection{list: []*Buffer{b}}, nil
}

// Current returns the active buffer.
func (c *Collection) Current() *Buffer {
	return c.list[c.current]
}

// All returns every open buffer, in open order.
func (c *Collection) All() []*Buffer {
	return c.list
}

// SwitchCurrentBuffer makes the buffer backed by path current, opening it
// if no open buffer already has that path.
func (c *Collection) SwitchCurrentBuffer(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for i, b := range c.list {
		if b.Path() == "" {
			continue
		}
		existing, err := filepath.Abs(b.Path())
		if err != nil {
			return err
		}
		if existing == abs {
			c.current = i
			return nil
		}
	}

	b, err := Open(path)
	if err != nil {
		return err
	}
	c.list = append(c.list, b)
	c.current = len(c.list) - 1
	return nil
}

// DeleteCurrent closes the current buffer. If it was the last open buffer,
// a fresh empty scratch buffer replaces it so the collection is never
// empty.
func (c *Collection) DeleteCurrent() {
	c.list = append(c.list[:c.current], c.list[c.current+1:]...)
	if c.current > 0 {
		c.current--
	}
	if len(c.list) == 0 {
		c.list = []*Buffer{NewScratch()}
		c.current = 0
	}
}

// AnyDirtyWithPath reports whether any open buffer with a path has unsaved
// changes — used by :q to refuse closing.
func (c *Collection) AnyDirtyWithPath() bool {
	for _, b := range c.list {
		if b.Path() != "" && b.IsDirty() {
			return true
		}
	}
	return false
}

// WriteAll writes every open buffer with a path to its path.
func (c *Collection) WriteAll() error {
	for _, b := range c.list {
		if b.Path() == "" {
			continue
		}
		if err := b.Write(""); err != nil {
			return err
		}
	}
	return nil
}
