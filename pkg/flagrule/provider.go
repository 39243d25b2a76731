package flagrule

import "sync"

// ConditionValueProvider supplies the runtime facts an engine evaluates
// against. Snapshot must return a fact set that will not change under
// the caller; the engine takes exactly one snapshot per Evaluate call
// so that all condition lookups within one evaluation are atomic.
//
// Implementations must be safe for concurrent use.
type ConditionValueProvider interface {
	Snapshot() Facts
}

// StaticProvider is a fixed fact set. Useful for tests and for hosts
// whose facts never change after startup. The map must not be mutated
// after being handed to an engine.
type StaticProvider Facts

// Snapshot implements ConditionValueProvider.
func (p StaticProvider) Snapshot() Facts { return Facts(p) }

// MapProvider is a mutable, mutex-guarded fact set. Hosts update it as
// device or app state changes; each Snapshot returns an independent
// copy, so in-flight evaluations never observe a torn update.
type MapProvider struct {
	mu    sync.RWMutex
	facts Facts
}

// NewMapProvider returns an empty MapProvider.
func NewMapProvider() *MapProvider {
	return &MapProvider{facts: make(Facts)}
}

// Set stores a value for a condition, replacing any previous value.
func (p *MapProvider) Set(c Condition, v Value) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.facts[c] = v
}

// SetFloat stores a float-domain value for c.
func (p *MapProvider) SetFloat(c Condition, f float64) { p.Set(c, FloatValue(f)) }

// SetInt stores an int-domain value for c.
func (p *MapProvider) SetInt(c Condition, i int64) { p.Set(c, IntValue(i)) }

// SetString stores a string-domain value for c.
func (p *MapProvider) SetString(c Condition, s string) { p.Set(c, StringValue(s)) }

// Delete removes the value for a condition. Evaluations referencing a
// deleted condition resolve fail-closed.
func (p *MapProvider) Delete(c Condition) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.facts, c)
}

// Snapshot implements ConditionValueProvider.
func (p *MapProvider) Snapshot() Facts {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(Facts, len(p.facts))
	for k, v := range p.facts {
		out[k] = v
	}
	return out
}
