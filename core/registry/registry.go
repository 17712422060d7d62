package registry

import (
	"sync"
	"time"
)

// Registry is a string-keyed bag of values. A key can be locked, after which
// the owning extension registry refuses new registrations.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry holds process-wide extension lists.
var GlobalRegistry = New()

func New() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting reopens key for registration.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
}

// RequestRegistry carries per-request values such as KeyRequestStart.
type RequestRegistry struct {
	mu     sync.Mutex
	values map[string]interface{}
}

func NewRequestRegistry() *RequestRegistry {
	return &RequestRegistry{values: map[string]interface{}{KeyRequestStart: time.Now()}}
}

func (r *RequestRegistry) Get(key string) (interface{}, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	return v, ok
}

func (r *RequestRegistry) Set(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Elapsed reports the time since the request registry was created.
func (r *RequestRegistry) Elapsed() time.Duration {
	v, _ := r.Get(KeyRequestStart)
	start, ok := v.(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start)
}
