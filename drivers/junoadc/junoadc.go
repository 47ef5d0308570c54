// Package junoadc decodes the Juno board ADC registers held in the V2M
// system-register block.
//
// The board samples four rails (Channel) and exposes four register arrays
// (Measurement). Conversion is integer-only:
//
//	quantity = (raw & mask) * multiplier / divisor
//
// where the divisor depends on the rail's shunt class for current, power and
// energy. Results are produced fresh on every call and never cached.
package junoadc

import "junoadc-go/regblock"

// Measurement selects a register array and its formula.
type Measurement uint8

const (
	Current Measurement = iota // mA
	Voltage                    // mV
	Power                      // uW
	Energy                     // uJ

	MeasurementCount = 4
)

func (m Measurement) Valid() bool { return m < MeasurementCount }

func (m Measurement) String() string {
	switch m {
	case Current:
		return "current"
	case Voltage:
		return "voltage"
	case Power:
		return "power"
	case Energy:
		return "energy"
	}
	return "unknown"
}

// Unit returns the unit symbol of values produced for m.
func (m Measurement) Unit() string {
	switch m {
	case Current:
		return "mA"
	case Voltage:
		return "mV"
	case Power:
		return "uW"
	case Energy:
		return "uJ"
	}
	return ""
}

// Channel is one sampled power rail, in hardware register order.
type Channel uint8

const (
	ChannelSys Channel = iota
	ChannelBig
	ChannelLittle
	ChannelGPU

	ChannelCount = 4
)

func (c Channel) Valid() bool { return c < ChannelCount }

func (c Channel) String() string {
	switch c {
	case ChannelSys:
		return "sys"
	case ChannelBig:
		return "big"
	case ChannelLittle:
		return "little"
	case ChannelGPU:
		return "gpu"
	}
	return "unknown"
}

// Class is the calibration class of a rail's shunt.
type Class uint8

const (
	Class1 Class = iota + 1 // Big, GPU
	Class2                  // everything else
)

func (c Channel) Class() Class {
	if c == ChannelBig || c == ChannelGPU {
		return Class1
	}
	return Class2
}

// Device reads and converts ADC values from a register block.
type Device struct {
	regs regblock.Block
}

func New(regs regblock.Block) *Device {
	return &Device{regs: regs}
}
