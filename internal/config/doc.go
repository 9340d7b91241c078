// Package config defines the format-agnostic Gradle settings model: the
// workspace defaults, the per-project build configuration, and the per-run
// override properties, along with the Loader interface implemented by the
// file format packages.
//
// Every model type is an immutable snapshot. Constructors copy their inputs
// and accessors copy slices out, so a value can be shared between goroutines
// without locking. A ProjectConfiguration swaps its BuildConfiguration
// wholesale when settings change; it never mutates one in place.
package config
