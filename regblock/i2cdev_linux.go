//go:build linux

package regblock

import (
	"junoadc-go/errcode"

	"golang.org/x/sys/unix"
	"tinygo.org/x/drivers"
)

const i2cSlave = 0x0703 // I2C_SLAVE, <linux/i2c-dev.h>

var _ drivers.I2C = (*I2CDev)(nil)

// I2CDev is a Linux i2c-dev adapter (/dev/i2c-N) usable as a drivers.I2C.
// Each Tx selects the target address, then writes w and reads r as two
// separate messages.
type I2CDev struct {
	fd int
}

func OpenI2CDev(path string) (*I2CDev, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: "regblock.OpenI2CDev", Msg: path, Err: err}
	}
	return &I2CDev{fd: fd}, nil
}

func (d *I2CDev) Tx(addr uint16, w, r []byte) error {
	if err := unix.IoctlSetInt(d.fd, i2cSlave, int(addr)); err != nil {
		return err
	}
	if len(w) > 0 {
		if _, err := unix.Write(d.fd, w); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		n, err := unix.Read(d.fd, r)
		if err != nil {
			return err
		}
		if n != len(r) {
			return errcode.NoData
		}
	}
	return nil
}

func (d *I2CDev) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}
