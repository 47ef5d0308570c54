// Package sensor is a minimal generic sensor module. Each element binds one
// driver API for one target during discovery and then reads through it.
package sensor

import (
	"junoadc-go/errcode"
	"junoadc-go/services/registry"
	"junoadc-go/types"
)

const ModuleID registry.ModuleID = "sensor"

// Target is a driver-defined address of one measurement point. Drivers reject
// target types they do not own.
type Target interface {
	String() string
}

// DriverAPI is implemented by sensor drivers and discovered per element.
type DriverAPI interface {
	GetValue(t Target) (uint64, error)
	GetInfo(t Target) (types.SensorInfo, error)
}

// Element is the static record of one sensor.
type Element struct {
	Addr   types.CapabilityAddress
	Driver registry.APIID
	Target Target
	Unit   string
}

type Module struct {
	elems []Element
	apis  []DriverAPI
}

func New(elems []Element) *Module {
	return &Module{elems: elems, apis: make([]DriverAPI, len(elems))}
}

func (m *Module) ElementCount() int { return len(m.elems) }

func (m *Module) Init() error { return nil }

// Bind discovers each element's driver in round 0.
func (m *Module) Bind(r *registry.Registry, id registry.ID, round uint) error {
	if round > 0 || id.IsModule() || m.apis[id.Element] != nil {
		return nil
	}
	el := m.elems[id.Element]
	api, err := registry.BindAs[DriverAPI](r, ModuleID, el.Driver, el.Target)
	if err != nil {
		return err
	}
	m.apis[id.Element] = api
	return nil
}

func (m *Module) ProcessBindRequest(registry.Request) (any, error) {
	return nil, errcode.AccessDenied
}

// Elements returns the configured sensors.
func (m *Module) Elements() []Element { return m.elems }

func (m *Module) api(idx int) (DriverAPI, error) {
	if idx < 0 || idx >= len(m.elems) {
		return nil, errcode.InvalidParams
	}
	if m.apis[idx] == nil {
		return nil, errcode.NotReady
	}
	return m.apis[idx], nil
}

// Read returns the current value of sensor idx.
func (m *Module) Read(idx int) (uint64, error) {
	api, err := m.api(idx)
	if err != nil {
		return 0, err
	}
	return api.GetValue(m.elems[idx].Target)
}

// Info returns the static metadata of sensor idx.
func (m *Module) Info(idx int) (types.SensorInfo, error) {
	api, err := m.api(idx)
	if err != nil {
		return types.SensorInfo{}, err
	}
	return api.GetInfo(m.elems[idx].Target)
}
