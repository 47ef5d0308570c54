package setups

import (
	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/regblock"
	"junoadc-go/services/junoadc"
	"junoadc-go/services/logger"
	"junoadc-go/services/registry"
	"junoadc-go/services/sensor"
)

// StartJuno registers the log, ADC and sensor modules over regs and runs the
// init and bind passes. The returned sensor module is ready to read.
func StartJuno(regs regblock.Block, log logger.API) (*sensor.Module, error) {
	r := registry.New()
	r.Add(logger.ModuleID, logger.New(log))
	r.Add(junoadc.ModuleID, junoadc.New(adc.New(regs), JunoADC))
	sens := sensor.New(JunoSensors())
	r.Add(sensor.ModuleID, sens)
	if err := r.Start(); err != nil {
		return nil, err
	}
	return sens, nil
}
