package regblock

// Access is one recorded register read.
type Access struct {
	Off   uint32
	Width uint8 // 32 or 64
}

// Spy wraps a Block and records every read. Not safe for concurrent use.
type Spy struct {
	B   Block
	Log []Access
}

func NewSpy(b Block) *Spy { return &Spy{B: b} }

func (s *Spy) Read32(off uint32) uint32 {
	s.Log = append(s.Log, Access{Off: off, Width: 32})
	return s.B.Read32(off)
}

func (s *Spy) Read64(off uint32) uint64 {
	s.Log = append(s.Log, Access{Off: off, Width: 64})
	return s.B.Read64(off)
}

// Reset clears the access log.
func (s *Spy) Reset() { s.Log = s.Log[:0] }
