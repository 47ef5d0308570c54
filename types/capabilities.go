package types

// ------------------------
// Capability addressing & kinds
// ------------------------

type Kind string

const (
	KindCurrent Kind = "current"
	KindVoltage Kind = "voltage"
	KindPower   Kind = "power"
	KindEnergy  Kind = "energy"
)

// CapabilityAddress identifies a public capability on the bus.
type CapabilityAddress struct {
	Domain string `json:"domain"` // e.g. "power"
	Kind   Kind   `json:"kind"`
	Name   string `json:"name"`
}
