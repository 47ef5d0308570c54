package junoadc

const (
	// V2M system-register block on Juno.
	SysRegsBase = 0x1C01_0000
	SysRegsSize = 0x1000

	// --- ADC register arrays (one entry per Channel) ---
	regCurrent = 0x100 // 4 x u32, R
	regVolt    = 0x110 // 4 x u32, R
	regPower   = 0x120 // 4 x u32, R
	regEnergy  = 0x130 // 4 x u64 (lo, hi), R, free-running accumulator

	// Start/size of the ADC window, for partial snapshots.
	ADCWindowBase = regCurrent
	ADCWindowSize = regEnergy + 8*ChannelCount - regCurrent

	// --- Field masks ---
	maskAmps  = 0x0000_0FFF
	maskVolt  = 0x0000_0FFF
	maskPower = 0x0000_0FFF

	// --- Scale to target unit ---
	ampsMultiplier  = 1000      // -> mA
	voltMultiplier  = 1000      // -> mV
	wattsMultiplier = 1_000_000 // -> uW
	jouleMultiplier = 1_000_000 // -> uJ

	// --- Board calibration divisors (shunt dependent) ---
	currentConst1 = 377 // Big, GPU
	currentConst2 = 814
	voltConst     = 1622
	powerConst1   = 82 // Big, GPU
	powerConst2   = 177
	energyConst1  = powerConst1 * 100
	energyConst2  = powerConst2 * 100
)

// RegisterOffset returns the byte offset of the register behind (m, ch).
func RegisterOffset(m Measurement, ch Channel) uint32 {
	switch m {
	case Current:
		return regCurrent + 4*uint32(ch)
	case Voltage:
		return regVolt + 4*uint32(ch)
	case Power:
		return regPower + 4*uint32(ch)
	default:
		return regEnergy + 8*uint32(ch)
	}
}
