//go:build !linux

package main

import (
	"errors"

	"junoadc-go/regblock"
)

func openDevMem(uint64) (regblock.Block, func() error, error) {
	return nil, nil, errors.New("devmem source requires linux")
}

func openI2C(string, uint16) (regblock.Block, func() error, error) {
	return nil, nil, errors.New("i2c source requires linux")
}
