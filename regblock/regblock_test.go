package regblock

import (
	"errors"
	"testing"
)

func TestMemReadWrite(t *testing.T) {
	m := NewMem(0x20)
	m.Write32(0x04, 0xDEADBEEF)
	m.Write64(0x10, 0x0000_0001_0000_0002)

	if got := m.Read32(0x04); got != 0xDEADBEEF {
		t.Fatalf("Read32 = %#x", got)
	}
	if got := m.Read32(0x10); got != 2 {
		t.Fatalf("low word = %#x, want 2", got)
	}
	if got := m.Read64(0x10); got != 0x1_0000_0002 {
		t.Fatalf("Read64 = %#x", got)
	}
}

func TestMemPanicsOnBadOffset(t *testing.T) {
	m := NewMem(8)
	for _, off := range []uint32{2, 8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for offset %#x", off)
				}
			}()
			_ = m.Read32(off)
		}()
	}
}

func TestSpyRecords(t *testing.T) {
	m := NewMem(0x10)
	s := NewSpy(m)
	_ = s.Read32(0)
	_ = s.Read64(8)
	if len(s.Log) != 2 || s.Log[0] != (Access{0, 32}) || s.Log[1] != (Access{8, 64}) {
		t.Fatalf("unexpected log: %+v", s.Log)
	}
	s.Reset()
	if len(s.Log) != 0 {
		t.Fatal("Reset did not clear log")
	}
}

// fakeI2C serves a little-endian register image keyed by 16-bit offset.
type fakeI2C struct {
	words map[uint16]uint32
	fail  uint16
	addrs []uint16
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.addrs = append(f.addrs, addr)
	off := uint16(w[0])<<8 | uint16(w[1])
	if f.fail != 0 && off == f.fail {
		return errors.New("nack")
	}
	v := f.words[off]
	r[0], r[1], r[2], r[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	return nil
}

func TestSnapshotI2C(t *testing.T) {
	bus := &fakeI2C{words: map[uint16]uint32{0x100: 0x064, 0x104: 0xABC, 0x10C: 0x12345678}}
	m, err := SnapshotI2C(bus, 0x50, 0x100, 0x10)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if m.Read32(0x100) != 0x064 || m.Read32(0x104) != 0xABC || m.Read32(0x10C) != 0x12345678 {
		t.Fatal("snapshot contents mismatch")
	}
	if len(bus.addrs) != 4 || bus.addrs[0] != 0x50 {
		t.Fatalf("unexpected transactions: %v", bus.addrs)
	}
}

func TestSnapshotI2CError(t *testing.T) {
	bus := &fakeI2C{fail: 0x108}
	if _, err := SnapshotI2C(bus, 0x50, 0x100, 0x10); err == nil {
		t.Fatal("expected error")
	}
}
