package main

import (
	"fmt"
	"strconv"
	"strings"

	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/regblock"
)

// rawSeed is one --set entry: <measurement>.<rail>=<raw>.
type rawSeed struct {
	m   adc.Measurement
	ch  adc.Channel
	raw uint64
}

func parseMeasurement(s string) (adc.Measurement, bool) {
	for m := adc.Measurement(0); m < adc.MeasurementCount; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

func parseChannel(s string) (adc.Channel, bool) {
	for c := adc.Channel(0); c < adc.ChannelCount; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

func parseSeed(s string) (rawSeed, error) {
	key, val, ok := strings.Cut(s, "=")
	if !ok {
		return rawSeed{}, fmt.Errorf("seed %q: want <measurement>.<rail>=<raw>", s)
	}
	ms, cs, ok := strings.Cut(key, ".")
	if !ok {
		return rawSeed{}, fmt.Errorf("seed %q: want <measurement>.<rail>", key)
	}
	m, ok := parseMeasurement(ms)
	if !ok {
		return rawSeed{}, fmt.Errorf("seed %q: unknown measurement %q", s, ms)
	}
	ch, ok := parseChannel(cs)
	if !ok {
		return rawSeed{}, fmt.Errorf("seed %q: unknown rail %q", s, cs)
	}
	raw, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return rawSeed{}, fmt.Errorf("seed %q: %w", s, err)
	}
	if m != adc.Energy && raw > 0xFFFF_FFFF {
		return rawSeed{}, fmt.Errorf("seed %q: %s registers are 32-bit", s, m)
	}
	return rawSeed{m: m, ch: ch, raw: raw}, nil
}

// simBlock builds a sysreg image holding the seeded ADC registers.
func simBlock(seeds []string) (*regblock.Mem, error) {
	mem := regblock.NewMem(adc.SysRegsSize)
	for _, s := range seeds {
		sd, err := parseSeed(s)
		if err != nil {
			return nil, err
		}
		off := adc.RegisterOffset(sd.m, sd.ch)
		if sd.m == adc.Energy {
			mem.Write64(off, sd.raw)
		} else {
			mem.Write32(off, uint32(sd.raw))
		}
	}
	return mem, nil
}
