package regblock

import (
	"encoding/binary"

	"junoadc-go/errcode"

	"tinygo.org/x/drivers"
)

// SnapshotI2C copies size bytes starting at register offset base from a board
// controller that mirrors the system-register file over I2C. Each word is
// fetched with a 16-bit big-endian offset write followed by a 4-byte
// little-endian read. The copy is not atomic across words.
func SnapshotI2C(bus drivers.I2C, addr uint16, base, size uint32) (*Mem, error) {
	checkAligned(base)
	m := NewMem(base + size)
	var w [2]byte
	var r [4]byte
	for off := base; off < base+size; off += 4 {
		binary.BigEndian.PutUint16(w[:], uint16(off))
		if err := bus.Tx(addr, w[:], r[:]); err != nil {
			return nil, &errcode.E{C: errcode.Error, Op: "regblock.SnapshotI2C", Err: err}
		}
		m.Write32(off, binary.LittleEndian.Uint32(r[:]))
	}
	return m, nil
}
