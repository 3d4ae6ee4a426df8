package logging

import "testing"

func TestSetupLevels(t *testing.T) {
	// Setup must accept any verbosity without panicking.
	for _, v := range []int{0, 1, 2, 3, 99} {
		Setup(v)
	}
}

func TestComponent(t *testing.T) {
	Setup(0)
	log := Component("renderer")
	// Must be usable immediately; output level gating is zerolog's.
	log.Debug().Msg("component logger smoke test")
}
