package logger

import (
	"context"
	"io"

	"junoadc-go/bus"
)

// Service drains log lines from the bus into w until ctx is done.
type Service struct {
	W io.Writer
}

// The service owns conn and disconnects it on exit.
func (s *Service) serviceLoop(ctx context.Context, sub *bus.Subscription, conn *bus.Connection) {
	defer conn.Disconnect()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			if ln, ok := msg.Payload.(Line); ok {
				_, _ = io.WriteString(s.W, ln.Text)
			}
		}
	}
}

// Start subscribes before returning, so lines published afterwards are not lost.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(bus.T("log", "#"))
	go s.serviceLoop(ctx, sub, conn)
}
