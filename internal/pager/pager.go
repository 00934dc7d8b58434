package pager

import (
	"io"
	"os"

	"github.com/dshills/tofu/internal/rope"
)

// Pager slides a bounded window over an on-disk file. It owns no rope of
// its own: callers pass the current rope in and get the windowed rope back,
// while the pager tracks only the absolute file offset the rope's byte 0
// corresponds to.
type Pager struct {
	path            string
	dataStartOffset int
}

// New returns a pager over path. An empty path means there is no backing
// file (a scratch buffer); all window operations then become no-ops.
func New(path string) *Pager {
	return &Pager{path: path}
}

// DataStartOffset returns the absolute file offset corresponding to the
// windowed rope's byte 0.
func (p *Pager) DataStartOffset() int {
	return p.dataStartOffset
}

// HasFile reports whether this pager has a backing file to page from.
func (p *Pager) HasFile() bool {
	return p.path != ""
}

// SetDataStartOffset is used when seeding a freshly opened window, before
// any add/trim calls have run.
func (p *Pager) SetDataStartOffset(offset int) {
	p.dataStartOffset = offset
}

func (p *Pager) readAt(offset int, n int) ([]byte, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return buf[:read], nil
}

// AddChunkBottom reads up to n bytes following the current window and
// appends them to r. A no-op at EOF or when there is no backing file.
func (p *Pager) AddChunkBottom(r rope.Rope, n int) (rope.Rope, error) {
	if !p.HasFile() || n <= 0 {
		return r, nil
	}

	readOffset := p.dataStartOffset + r.Len()
	chunk, err := p.readAt(readOffset, n)
	if err != nil {
		return r, err
	}
	if len(chunk) == 0 {
		return r, nil
	}
	return r.Insert(r.Len(), chunk), nil
}

// AddChunkTop reads up to n bytes preceding the current window and prepends
// them to r, decrementing DataStartOffset by the number of bytes read.
func (p *Pager) AddChunkTop(r rope.Rope, n int) (rope.Rope, error) {
	if !p.HasFile() || n <= 0 || p.dataStartOffset == 0 {
		return r, nil
	}

	s := p.dataStartOffset - n
	if s < 0 {
		s = 0
	}
	readLen := p.dataStartOffset - s
	chunk, err := p.readAt(s, readLen)
	if err != nil {
		return r, err
	}
	if len(chunk) == 0 {
		return r, nil
	}
	p.dataStartOffset -= len(chunk)
	return r.Insert(0, chunk), nil
}

// TrimBottom drops the final n bytes of r, provided r is more than twice n
// bytes long. Otherwise returns r unchanged.
func (p *Pager) TrimBottom(r rope.Rope, n int) rope.Rope {
	if n <= 0 || r.Len() <= 2*n {
		return r
	}
	keep, _ := r.Split(r.Len() - n)
	return keep
}

// TrimTop drops the first n bytes of r and advances DataStartOffset by n,
// provided r is more than twice n bytes long. Otherwise returns r unchanged.
func (p *Pager) TrimTop(r rope.Rope, n int) rope.Rope {
	if n <= 0 || r.Len() <= 2*n {
		return r
	}
	_, kept := r.Split(n)
	p.dataStartOffset += n
	return kept
}

// nearBottom reports whether viewEnd sits within the final 10% of r.
func nearBottom(r rope.Rope, viewEnd int) bool {
	total := r.Len()
	if total == 0 {
		return false
	}
	return total-viewEnd < total/10
}

// nearTop reports whether viewStart sits within the first 10% of r.
func nearTop(r rope.Rope, viewStart int) bool {
	total := r.Len()
	if total == 0 {
		return false
	}
	return viewStart < total/10
}

// liveOffsetsWithin reports whether every offset in offsets lies in
// [lo, hi).
func liveOffsetsWithin(offsets []int, lo, hi int) bool {
	for _, o := range offsets {
		if o < lo || o >= hi {
			return false
		}
	}
	return true
}

// Maintain runs one window-maintenance step: it grows the window toward
// whichever edge the view is approaching, then trims the opposite edge if
// the window has grown past 3x chunkSize and no live selection offset
// would fall outside the retained region. liveOffsets should list every
// selection tail/caret currently in the buffer; scrolling never relocates
// them, so a trim that would strand one is skipped.
func (p *Pager) Maintain(r rope.Rope, viewStart, viewEnd, chunkSize int, liveOffsets []int) (rope.Rope, error) {
	if !p.HasFile() || chunkSize <= 0 {
		return r, nil
	}

	out := r
	var err error

	if nearBottom(out, viewEnd) {
		out, err = p.AddChunkBottom(out, chunkSize)
		if err != nil {
			return out, err
		}
	}
	if nearTop(out, viewStart) && p.dataStartOffset > 0 {
		out, err = p.AddChunkTop(out, chunkSize)
		if err != nil {
			return out, err
		}
	}

	if out.Len() > 3*chunkSize {
		if nearBottom(r, viewEnd) {
			// Grew at the bottom; trim the top, provided nothing still
			// lives in the region about to fall out of the window.
			if liveOffsetsWithin(liveOffsets, chunkSize, out.Len()) {
				out = p.TrimTop(out, chunkSize)
			}
		} else if nearTop(r, viewStart) {
			if liveOffsetsWithin(liveOffsets, 0, out.Len()-chunkSize) {
				out = p.TrimBottom(out, chunkSize)
			}
		}
	}

	return out, nil
}
