package memory

import (
	"math"
	"sync/atomic"
)

// Sequence es el asignador de ids de una entidad: empieza en 1, nunca repite
// y satura en math.MaxInt64 en vez de dar la vuelta.
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() int64 {
	for {
		cur := s.last.Load()
		if cur == math.MaxInt64 {
			return math.MaxInt64
		}
		if s.last.CompareAndSwap(cur, cur+1) {
			return cur + 1
		}
	}
}
