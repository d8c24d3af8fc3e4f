//go:build profile

package profiler

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	scopes = map[string]*Scope{}
)

// Enabled reports whether the binary was built with the profile tag.
const Enabled = true

// Reset forgets every recorded scope.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(scopes)
}

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		defer mu.Unlock()
		s, ok := scopes[name]
		if !ok {
			s = &Scope{Name: name, Min: d}
			scopes[name] = s
		}
		s.Calls++
		s.Total += d
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
	}
}

// Snapshot returns the scopes sorted by total time, largest first.
func Snapshot() []Scope {
	mu.Lock()
	out := make([]Scope, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, *s)
	}
	mu.Unlock()
	slices.SortFunc(out, func(a, b Scope) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// WriteJSON dumps the snapshot to path.
func WriteJSON(path string) error {
	snap := Snapshot()
	if len(snap) == 0 {
		return fmt.Errorf("profiler: no scopes recorded")
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
