// Package junoadc is the Juno ADC sensor-driver module. It validates calls,
// delegates conversion to drivers/junoadc and hands its driver API to the
// sensor module during discovery.
package junoadc

import (
	"fmt"

	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/errcode"
	"junoadc-go/services/logger"
	"junoadc-go/services/registry"
	"junoadc-go/services/sensor"
	"junoadc-go/types"
)

const ModuleID registry.ModuleID = "juno_adc"

// APIDriver is the sensor-driver API id.
var APIDriver = registry.APIID{Module: ModuleID, Name: "driver"}

// CallID addresses one (measurement, rail) pair.
type CallID struct {
	Type    adc.Measurement
	Channel adc.Channel
}

func (c CallID) Valid() bool { return c.Type.Valid() && c.Channel.Valid() }

func (c CallID) String() string { return c.Type.String() + "/" + c.Channel.String() }

var logLabel = [adc.MeasurementCount]string{
	adc.Current: "Current",
	adc.Voltage: "Voltage",
	adc.Power:   "Power",
	adc.Energy:  "Energy",
}

type Module struct {
	dev *adc.Device
	cfg Config
	log logger.API
}

func New(dev *adc.Device, cfg Config) *Module {
	return &Module{dev: dev, cfg: cfg}
}

func (m *Module) ElementCount() int { return len(m.cfg.Elements) }

func (m *Module) Init() error {
	if len(m.cfg.Elements) == 0 {
		return errcode.NoData
	}
	return m.cfg.validate()
}

// Bind resolves the log API in round 0 at module scope. Element scope and
// later rounds have nothing to do; a repeated round 0 keeps the first binding.
func (m *Module) Bind(r *registry.Registry, id registry.ID, round uint) error {
	if round > 0 || !id.IsModule() || m.log != nil {
		return nil
	}
	api, err := registry.BindAs[logger.API](r, ModuleID, logger.APIID, nil)
	if err != nil {
		return err
	}
	m.log = api
	return nil
}

// ProcessBindRequest hands out the driver API to the sensor module only.
func (m *Module) ProcessBindRequest(req registry.Request) (any, error) {
	target, ok := req.Target.(CallID)
	if !ok {
		return nil, errcode.AccessDenied
	}
	if _, ok := m.cfg.subElement(target); !ok {
		return nil, errcode.AccessDenied
	}
	if req.Source != sensor.ModuleID {
		return nil, errcode.AccessDenied
	}
	if req.API != APIDriver {
		return nil, errcode.AccessDenied
	}
	return sensor.DriverAPI(m), nil
}

// callID accepts only targets issued for this driver.
func callID(t sensor.Target) (CallID, bool) {
	id, ok := t.(CallID)
	return id, ok
}

// GetValue returns the calibrated value for t and logs it.
func (m *Module) GetValue(t sensor.Target) (uint64, error) {
	id, ok := callID(t)
	if !ok {
		return 0, errcode.InvalidParams
	}
	if _, ok := m.cfg.subElement(id); !ok {
		return 0, errcode.InvalidParams
	}
	v, err := m.dev.Read(id.Type, id.Channel)
	if err != nil {
		return 0, errcode.InvalidParams
	}
	if m.log != nil {
		m.log.Log(logger.Info, fmt.Sprintf("[ADC] %s 0x%x %s\n", logLabel[id.Type], v, id.Type.Unit()))
	}
	return v, nil
}

// GetInfo returns a copy of the configured metadata for t.
func (m *Module) GetInfo(t sensor.Target) (types.SensorInfo, error) {
	id, ok := callID(t)
	if !ok {
		return types.SensorInfo{}, errcode.InvalidParams
	}
	se, ok := m.cfg.subElement(id)
	if !ok {
		return types.SensorInfo{}, errcode.InvalidParams
	}
	if se.Info == nil {
		return types.SensorInfo{}, errcode.NoData
	}
	return *se.Info, nil
}
