package regblock

import "sync/atomic"

// Mem is an in-memory register file. Words are accessed atomically so a
// simulator goroutine may update it while readers sample it.
type Mem struct {
	w []uint32
}

// NewMem allocates a zeroed block of size bytes (rounded up to a word).
func NewMem(size uint32) *Mem {
	return &Mem{w: make([]uint32, (size+3)/4)}
}

// Size returns the block size in bytes.
func (m *Mem) Size() uint32 { return uint32(len(m.w)) * 4 }

func (m *Mem) word(off uint32) *uint32 {
	checkAligned(off)
	i := off / 4
	if int(i) >= len(m.w) {
		panic("regblock: offset outside block")
	}
	return &m.w[i]
}

func (m *Mem) Read32(off uint32) uint32 { return atomic.LoadUint32(m.word(off)) }

func (m *Mem) Read64(off uint32) uint64 {
	lo := m.Read32(off)
	hi := m.Read32(off + 4)
	return compose64(lo, hi)
}

func (m *Mem) Write32(off, v uint32) { atomic.StoreUint32(m.word(off), v) }

// Write64 stores v low word first.
func (m *Mem) Write64(off uint32, v uint64) {
	m.Write32(off, uint32(v))
	m.Write32(off+4, uint32(v>>32))
}
