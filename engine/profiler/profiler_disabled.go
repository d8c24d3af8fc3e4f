//go:build !profile

package profiler

// No-op versions when the "profile" build tag is not set.

const Enabled = false

func Reset() {}

func Start(name string) func() { return func() {} }

func Snapshot() []Scope { return nil }

func WriteJSON(path string) error { return nil }
