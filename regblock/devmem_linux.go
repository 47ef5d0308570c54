//go:build linux

package regblock

import (
	"sync/atomic"
	"unsafe"

	"junoadc-go/errcode"

	"golang.org/x/sys/unix"
)

// DevMem maps a physical register window through /dev/mem.
type DevMem struct {
	mem  []byte
	skew uint32 // base offset inside the first mapped page
	size uint32
}

// OpenDevMem maps size bytes at physical address base read-only.
func OpenDevMem(base uint64, size uint32) (*DevMem, error) {
	fd, err := unix.Open("/dev/mem", unix.O_RDONLY|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "regblock.OpenDevMem", Msg: "open /dev/mem", Err: err}
	}
	defer unix.Close(fd)

	page := uint64(unix.Getpagesize())
	aligned := base &^ (page - 1)
	skew := uint32(base - aligned)
	mem, err := unix.Mmap(fd, int64(aligned), int(skew+size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "regblock.OpenDevMem", Msg: "mmap", Err: err}
	}
	return &DevMem{mem: mem, skew: skew, size: size}, nil
}

func (d *DevMem) Read32(off uint32) uint32 {
	checkAligned(off)
	if off+4 > d.size {
		panic("regblock: offset outside block")
	}
	p := (*uint32)(unsafe.Pointer(&d.mem[d.skew+off]))
	return atomic.LoadUint32(p)
}

func (d *DevMem) Read64(off uint32) uint64 {
	lo := d.Read32(off)
	hi := d.Read32(off + 4)
	return compose64(lo, hi)
}

// Close unmaps the window.
func (d *DevMem) Close() error {
	if d.mem == nil {
		return nil
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	return err
}
