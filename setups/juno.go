// Package setups holds the static board configuration tables.
package setups

import (
	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/services/junoadc"
	"junoadc-go/services/sensor"
	"junoadc-go/types"
)

// Sensor metadata per measurement. Every rail of a measurement shares it.
var (
	infoCurrent = types.SensorInfo{Type: types.SensorTypeAmps, UnitMultiplier: -3, Max: 1000 * 0xFFF / 377}
	infoVoltage = types.SensorInfo{Type: types.SensorTypeVolts, UnitMultiplier: -3, Max: 1000 * 0xFFF / 1622}
	infoPower   = types.SensorInfo{Type: types.SensorTypeWatts, UnitMultiplier: -6, Max: 1_000_000 * 0xFFF / 82}
	infoEnergy  = types.SensorInfo{Type: types.SensorTypeJoules, UnitMultiplier: -6}
)

var kinds = [adc.MeasurementCount]types.Kind{
	adc.Current: types.KindCurrent,
	adc.Voltage: types.KindVoltage,
	adc.Power:   types.KindPower,
	adc.Energy:  types.KindEnergy,
}

var infos = [adc.MeasurementCount]*types.SensorInfo{
	adc.Current: &infoCurrent,
	adc.Voltage: &infoVoltage,
	adc.Power:   &infoPower,
	adc.Energy:  &infoEnergy,
}

// JunoADC is the driver table: four measurement elements, four rails each.
var JunoADC = junoadc.Config{Elements: juno()}

func juno() []junoadc.Element {
	out := make([]junoadc.Element, 0, adc.MeasurementCount)
	for m := adc.Measurement(0); m < adc.MeasurementCount; m++ {
		el := junoadc.Element{Name: m.String(), Type: m}
		for ch := adc.Channel(0); ch < adc.ChannelCount; ch++ {
			el.SubElements = append(el.SubElements, junoadc.SubElement{Name: ch.String(), Info: infos[m]})
		}
		out = append(out, el)
	}
	return out
}

// JunoSensors exposes every ADC rail as a sensor, ordered measurement-major.
func JunoSensors() []sensor.Element {
	out := make([]sensor.Element, 0, adc.MeasurementCount*adc.ChannelCount)
	for _, el := range JunoADC.Elements {
		for ch, se := range el.SubElements {
			out = append(out, sensor.Element{
				Addr:   types.CapabilityAddress{Domain: "power", Kind: kinds[el.Type], Name: se.Name},
				Driver: junoadc.APIDriver,
				Target: junoadc.CallID{Type: el.Type, Channel: adc.Channel(ch)},
				Unit:   el.Type.Unit(),
			})
		}
	}
	return out
}
