package sensor

import (
	"context"
	"time"

	"junoadc-go/bus"
	"junoadc-go/types"
	"junoadc-go/x/mathx"
)

const (
	minEvery = 10 * time.Millisecond
	maxEvery = time.Hour
)

// hal/cap/<domain>/<kind>/<name>/value
func valueTopic(a types.CapabilityAddress) bus.Topic {
	return bus.T("hal", "cap", a.Domain, string(a.Kind), a.Name, "value")
}

// PublishAll reads every sensor once and publishes a retained value for each
// success. It returns the number published.
func (m *Module) PublishAll(conn *bus.Connection, now time.Time) int {
	n := 0
	for i, el := range m.elems {
		v, err := m.Read(i)
		if err != nil {
			continue
		}
		conn.Publish(conn.NewMessage(valueTopic(el.Addr), types.SensorValue{
			Value: v,
			Unit:  el.Unit,
			TsMs:  now.UnixMilli(),
		}, true))
		n++
	}
	return n
}

// Run publishes all sensors every interval until ctx is done.
func (m *Module) Run(ctx context.Context, conn *bus.Connection, every time.Duration) {
	every = mathx.Clamp(every, minEvery, maxEvery)
	tick := time.NewTicker(every)
	defer tick.Stop()

	m.PublishAll(conn, time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-tick.C:
			m.PublishAll(conn, t)
		}
	}
}
