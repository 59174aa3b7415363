package blocks

// MoveHorizontal shifts the active piece one column in the sign of dir.
// It reports whether the piece moved.
func (s *Session) MoveHorizontal(dir int) bool {
	if s.phase != PhaseRunning {
		return false
	}
	switch {
	case dir < 0:
		dir = -1
	case dir > 0:
		dir = 1
	default:
		return false
	}
	if s.board.Collides(s.active, dir, 0) {
		return false
	}
	s.active.X += dir
	return true
}

// Rotate turns the active piece clockwise, trying the current position and
// then each kick offset in order. The first placement that fits wins; if
// none does the piece is left untouched.
func (s *Session) Rotate() bool {
	if s.phase != PhaseRunning {
		return false
	}

	candidate := s.active.Clone()
	candidate.Shape = s.active.Shape.Rotate()

	if !s.board.Collides(candidate, 0, 0) {
		s.active.Shape = candidate.Shape
		return true
	}
	for _, dx := range s.cfg.KickOffsets {
		if dx == 0 {
			continue
		}
		if !s.board.Collides(candidate, dx, 0) {
			s.active.Shape = candidate.Shape
			s.active.X += dx
			return true
		}
	}
	return false
}

// SoftDrop moves the active piece down one row for a small bonus. When the
// piece cannot move it locks, exactly as a gravity drop would.
func (s *Session) SoftDrop() bool {
	if s.phase != PhaseRunning {
		return false
	}
	if s.dropOrLock() {
		s.score += s.scoring.OnSoftDrop()
		return true
	}
	return false
}

// HardDrop drops the active piece as far as it goes, locks it and returns
// the number of rows travelled.
func (s *Session) HardDrop() int {
	if s.phase != PhaseRunning {
		return 0
	}
	dist := 0
	for !s.board.Collides(s.active, 0, 1) {
		s.active.Y++
		dist++
	}
	s.score += s.scoring.OnHardDrop(dist)
	s.lock()
	return dist
}
