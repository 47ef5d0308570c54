package junoadc

import "junoadc-go/x/mathx"

// Read returns the calibrated value of m on ch. An unknown m returns
// ErrUnknownMeasurement without touching the registers.
func (d *Device) Read(m Measurement, ch Channel) (uint64, error) {
	switch m {
	case Current:
		return d.Current_mA(ch), nil
	case Voltage:
		return d.Voltage_mV(ch), nil
	case Power:
		return d.Power_uW(ch), nil
	case Energy:
		return d.Energy_uJ(ch), nil
	}
	return 0, ErrUnknownMeasurement
}

// Raw returns the masked register field behind m on ch.
func (d *Device) Raw(m Measurement, ch Channel) (uint64, error) {
	if !m.Valid() {
		return 0, ErrUnknownMeasurement
	}
	mustChannel(ch)
	off := RegisterOffset(m, ch)
	switch m {
	case Current:
		return uint64(d.regs.Read32(off) & maskAmps), nil
	case Voltage:
		return uint64(d.regs.Read32(off) & maskVolt), nil
	case Power:
		return uint64(d.regs.Read32(off) & maskPower), nil
	}
	return d.regs.Read64(off), nil
}

// Current_mA: 12-bit field, divisor by shunt class.
func (d *Device) Current_mA(ch Channel) uint64 {
	mustChannel(ch)
	raw := d.regs.Read32(RegisterOffset(Current, ch)) & maskAmps
	div := uint32(currentConst2)
	if ch.Class() == Class1 {
		div = currentConst1
	}
	return mathx.MulDiv(raw, ampsMultiplier, div)
}

// Voltage_mV: 12-bit field, single divisor for every rail.
func (d *Device) Voltage_mV(ch Channel) uint64 {
	mustChannel(ch)
	raw := d.regs.Read32(RegisterOffset(Voltage, ch)) & maskVolt
	return mathx.MulDiv(raw, voltMultiplier, voltConst)
}

// Power_uW: 12-bit field, divisor by shunt class.
func (d *Device) Power_uW(ch Channel) uint64 {
	mustChannel(ch)
	raw := d.regs.Read32(RegisterOffset(Power, ch)) & maskPower
	div := uint32(powerConst2)
	if ch.Class() == Class1 {
		div = powerConst1
	}
	return mathx.MulDiv(raw, wattsMultiplier, div)
}

// Energy_uJ: unmasked 64-bit accumulator, divisor by shunt class.
// Saturates at MaxUint64 once raw exceeds ~1.5e17.
func (d *Device) Energy_uJ(ch Channel) uint64 {
	mustChannel(ch)
	raw := d.regs.Read64(RegisterOffset(Energy, ch))
	div := uint64(energyConst2)
	if ch.Class() == Class1 {
		div = energyConst1
	}
	return mathx.MulDiv(raw, jouleMultiplier, div)
}
