// Package regblock provides read access to memory-mapped 32-bit register files.
//
// A Block is addressed by byte offset from its base. Offsets must be 4-byte
// aligned; Read64 composes two 32-bit reads (low word first) and is therefore
// not atomic against concurrent hardware updates.
package regblock

// Block is a window onto a register file.
type Block interface {
	Read32(off uint32) uint32
	Read64(off uint32) uint64
}

func compose64(lo, hi uint32) uint64 { return uint64(hi)<<32 | uint64(lo) }

func checkAligned(off uint32) {
	if off&3 != 0 {
		panic("regblock: unaligned register offset")
	}
}
