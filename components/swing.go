package components

// SwingData records the most recent impulse applied to a fist. It is owned
// by the fist that produced the impulse; collision resolution only reads it
// through Active and TryConsumeToken. The token allows exactly one damage
// application per swing, no matter how many contact callbacks the swing
// generates; a new impulse re-arms it.
type SwingData struct {
	Swung         bool    // false until the first impulse
	LastImpulseAt float64 // unscaled clock reading of the last impulse
	Magnitude     float64 // recorded impulse speed, authoritative for damage
	TokenConsumed bool
}

// Record overwrites the swing with a fresh impulse and re-arms the hit token.
func (s *SwingData) Record(now, magnitude float64) {
	s.Swung = true
	s.LastImpulseAt = now
	s.Magnitude = magnitude
	s.TokenConsumed = false
}

// Active reports whether the fist is currently dangerous: an impulse was
// applied less than window seconds ago on the unscaled clock.
func (s *SwingData) Active(now, window float64) bool {
	return s.Swung && now-s.LastImpulseAt < window
}

// TryConsumeToken burns the single-use hit token. It returns false if the
// swing is no longer active or the token was already consumed.
func (s *SwingData) TryConsumeToken(now, window float64) bool {
	if !s.Active(now, window) || s.TokenConsumed {
		return false
	}
	s.TokenConsumed = true
	return true
}
