package model

// Subscription mirrors the coordinator contract's subscription record as far
// as the agent needs it: interval arithmetic and container routing.
type Subscription struct {
	ID          uint64
	Owner       string
	ContainerID string
	// Frequency is the total number of intervals; 0 means unbounded.
	Frequency uint32
	// Period is the seconds between intervals; 0 means a one-shot
	// subscription whose single interval is 1.
	Period uint32
	// ActiveAt is the unix time the first interval opens.
	ActiveAt   uint64
	Redundancy uint16
}

// IntervalAt returns the interval open at unix time now, or 0 if the
// subscription is not yet active.
func (s Subscription) IntervalAt(now uint64) uint32 {
	if now < s.ActiveAt {
		return 0
	}
	if s.Period == 0 {
		return 1
	}
	return uint32((now-s.ActiveAt)/uint64(s.Period)) + 1
}

// Exhausted reports whether interval is past the subscription's last one.
func (s Subscription) Exhausted(interval uint32) bool {
	return s.Frequency > 0 && interval > s.Frequency
}
