package runner

// integrate advances the jump arc by one tick using semi-implicit Euler.
// The step is per invoked tick and is not scaled by elapsed time.
// Returns true when the player touched down this tick while still running.
func integrate(st *GameState, s Settings) (landed bool) {
	if st.Grounded() {
		return false
	}

	st.PlayerHeight += st.Velocity
	st.Velocity -= s.Gravity

	if st.PlayerHeight <= 0 {
		st.PlayerHeight = 0
		st.Velocity = 0
		st.Jumping = false
		return st.Running
	}
	return false
}

// jump starts a jump arc. A second call while airborne is a no-op.
func jump(st *GameState, s Settings) bool {
	if st.Jumping {
		return false
	}
	st.Jumping = true
	st.Velocity = s.JumpImpulse
	return true
}

// scrollWorld moves the background texture.
func scrollWorld(st *GameState, s Settings) {
	st.BackgroundX -= s.WorldScrollSpeed
}
