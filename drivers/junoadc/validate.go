package junoadc

import "errors"

var ErrUnknownMeasurement = errors.New("unknown measurement type")

// mustChannel enforces the register-array bound. An invalid channel is a
// caller bug, not a recoverable outcome.
func mustChannel(ch Channel) {
	if !ch.Valid() {
		panic("junoadc: channel out of range")
	}
}
