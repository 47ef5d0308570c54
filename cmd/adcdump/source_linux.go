//go:build linux

package main

import (
	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/regblock"
)

func openDevMem(base uint64) (regblock.Block, func() error, error) {
	dm, err := regblock.OpenDevMem(base, adc.SysRegsSize)
	if err != nil {
		return nil, nil, err
	}
	return dm, dm.Close, nil
}

// openI2C copies the ADC window from the board controller once; later reads
// come from the copy.
func openI2C(path string, addr uint16) (regblock.Block, func() error, error) {
	dev, err := regblock.OpenI2CDev(path)
	if err != nil {
		return nil, nil, err
	}
	defer dev.Close()
	mem, err := regblock.SnapshotI2C(dev, addr, adc.ADCWindowBase, adc.ADCWindowSize)
	if err != nil {
		return nil, nil, err
	}
	return mem, func() error { return nil }, nil
}
