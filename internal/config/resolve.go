package config

// Resolve returns override() when overridden is set and inherited()
// otherwise. Only the selected side is evaluated, so the result never mixes
// values from both layers.
func Resolve[T any](overridden bool, override, inherited func() T) T {
	if overridden {
		return override()
	}
	return inherited()
}
