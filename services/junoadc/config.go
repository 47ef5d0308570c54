package junoadc

import (
	adc "junoadc-go/drivers/junoadc"
	"junoadc-go/errcode"
	"junoadc-go/types"
)

// SubElement is the static record of one rail within a measurement element.
type SubElement struct {
	Name string
	Info *types.SensorInfo // nil: no metadata attached
}

// Element groups the rails of one measurement type. Sub-element i is
// Channel(i).
type Element struct {
	Name        string
	Type        adc.Measurement
	SubElements []SubElement
}

// Config is the module's static configuration table. Element i must have
// Type == Measurement(i).
type Config struct {
	Elements []Element
}

func (c *Config) subElement(id CallID) (*SubElement, bool) {
	if !id.Valid() || int(id.Type) >= len(c.Elements) {
		return nil, false
	}
	el := &c.Elements[id.Type]
	if int(id.Channel) >= len(el.SubElements) {
		return nil, false
	}
	return &el.SubElements[id.Channel], true
}

// validate enforces the table shape subElement relies on: element i carries
// measurement i and holds at most one record per rail.
func (c *Config) validate() error {
	if len(c.Elements) > adc.MeasurementCount {
		return errcode.InvalidParams
	}
	for i, el := range c.Elements {
		if el.Type != adc.Measurement(i) || len(el.SubElements) > adc.ChannelCount {
			return errcode.InvalidParams
		}
	}
	return nil
}
