package types

// ------------------------
// Sensor metadata
// ------------------------

// SensorType is the physical quantity a sensor reports.
type SensorType uint8

const (
	SensorTypeNone SensorType = iota
	SensorTypeAmps
	SensorTypeVolts
	SensorTypeWatts
	SensorTypeJoules
)

func (t SensorType) String() string {
	switch t {
	case SensorTypeAmps:
		return "amps"
	case SensorTypeVolts:
		return "volts"
	case SensorTypeWatts:
		return "watts"
	case SensorTypeJoules:
		return "joules"
	}
	return "none"
}

// SensorInfo is static metadata attached to a sensor by configuration.
// Drivers return it verbatim; nothing here is measured.
type SensorInfo struct {
	Type SensorType `json:"type"`

	// Sampling cadence: UpdateInterval * 10^UpdateIntervalMultiplier seconds.
	UpdateInterval           uint32 `json:"update_interval"`
	UpdateIntervalMultiplier int32  `json:"update_interval_multiplier"`

	// Values are in units of 10^UnitMultiplier of the base unit (e.g. -3 for mA).
	UnitMultiplier int32 `json:"unit_multiplier"`

	// Expected range in reported units; Max == 0 means unbounded.
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

// Retained value: hal/cap/power/<kind>/<name>/value
type SensorValue struct {
	Value uint64 `json:"value"`
	Unit  string `json:"unit"`
	TsMs  int64  `json:"ts_ms"`
}
