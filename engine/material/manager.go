package material

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hubastard/grove3d/engine/gfx"
	"go.uber.org/zap"
)

// State is the lifecycle of a Manager.
type State int

const (
	Uninitialized State = iota
	Ready
)

// Manager is the name-keyed cache of shared materials for one graphics
// context. It is created by the engine and passed to setup code; the
// built-in materials are constructed on first use.
//
// The registry is only a cache: removing or overwriting a name never
// invalidates handles obtained earlier. The default material is captured
// at bootstrap and keeps being returned by Default even if "object" is
// later overwritten or removed.
type Manager struct {
	dev gfx.Device
	log *zap.Logger

	once sync.Once
	err  error

	mu        sync.Mutex
	state     State
	def       *Handle
	materials map[string]*Handle
	owned     map[*Handle]struct{} // every handle ever registered, released on shutdown
}

// ManagerOption configures a Manager at construction.
type ManagerOption func(*Manager)

// WithLogger sets the manager's logger; nil keeps the no-op default.
func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager returns an uninitialized registry for materials built on dev.
func NewManager(dev gfx.Device, opts ...ManagerOption) *Manager {
	m := &Manager{
		dev:       dev,
		log:       zap.NewNop(),
		materials: map[string]*Handle{},
		owned:     map[*Handle]struct{}{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.Named("materials")
	return m
}

// Init builds the built-in materials if that has not happened yet and
// returns the construction error, if any. Calling it at startup surfaces
// shader problems before the first frame; otherwise the first registry
// operation performs the bootstrap.
func (m *Manager) Init() error {
	m.once.Do(m.bootstrap)
	return m.err
}

func (m *Manager) bootstrap() {
	object, err := NewObjectMaterial(m.dev)
	if err != nil {
		m.err = fmt.Errorf("bootstrap materials: %w", err)
		return
	}
	normals, err := NewNormalsMaterial(m.dev)
	if err != nil {
		object.Release()
		m.err = fmt.Errorf("bootstrap materials: %w", err)
		return
	}
	uvs, err := NewUVsMaterial(m.dev)
	if err != nil {
		object.Release()
		normals.Release()
		m.err = fmt.Errorf("bootstrap materials: %w", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.def = Share(object)
	m.put(ObjectName, m.def)
	m.put(NormalsName, Share(normals))
	m.put(UVsName, Share(uvs))
	m.state = Ready
	m.log.Info("built-in materials ready", zap.Strings("names", []string{ObjectName, NormalsName, UVsName}))
}

// ensure bootstraps the registry; a failed bootstrap is fatal because no
// object can be drawn without a default material.
func (m *Manager) ensure() {
	if err := m.Init(); err != nil {
		panic(err)
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Default returns the default material, "object" as it was at bootstrap.
func (m *Manager) Default() *Handle {
	m.ensure()
	return m.def
}

// Get looks a material up by exact name. It never constructs on a miss.
func (m *Manager) Get(name string) (*Handle, bool) {
	m.ensure()
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.materials[name]
	return h, ok
}

// Add registers h under name, replacing any previous entry. The default
// material is not affected, even when name is "object".
func (m *Manager) Add(h *Handle, name string) {
	if h == nil {
		m.log.Warn("ignoring nil material", zap.String("name", name))
		return
	}
	m.ensure()
	m.mu.Lock()
	defer m.mu.Unlock()
	_, replaced := m.materials[name]
	m.put(name, h)
	m.log.Debug("material added", zap.String("name", name), zap.Bool("replaced", replaced))
}

// AddMaterial shares mat and registers it under name. A nil material is
// ignored and nil is returned.
func (m *Manager) AddMaterial(mat Material, name string) *Handle {
	if mat == nil {
		m.log.Warn("ignoring nil material", zap.String("name", name))
		return nil
	}
	h := Share(mat)
	m.Add(h, name)
	return h
}

// Remove drops the entry for name. Unknown names are ignored. Holders of
// the handle keep a usable material.
func (m *Manager) Remove(name string) {
	m.ensure()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.materials[name]; !ok {
		return
	}
	delete(m.materials, name)
	m.log.Debug("material removed", zap.String("name", name))
}

// Names returns the registered names in sorted order.
func (m *Manager) Names() []string {
	m.ensure()
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.materials))
	for name := range m.materials {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Release frees the GPU resources of every material ever registered,
// including the default. It is meant for graphics context teardown; the
// manager and all handles must not be used afterwards.
func (m *Manager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for h := range m.owned {
		h.Release()
	}
	m.log.Debug("materials released", zap.Int("count", len(m.owned)))
	clear(m.owned)
	clear(m.materials)
}

func (m *Manager) put(name string, h *Handle) {
	m.materials[name] = h
	m.owned[h] = struct{}{}
}
