package extension

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry resolves extension names and aliases to extensions
type Registry struct {
	mutex      sync.RWMutex
	names      mapset.Set[string]
	byName     map[string]Extension
	extensions []Extension
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		names:  mapset.NewThreadUnsafeSet[string](),
		byName: make(map[string]Extension),
	}
}

// Default returns the process-wide registry holding the built-in extensions
var Default = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, ext := range []Extension{TranscriptDirective{}, AnnotationRole{}} {
		if err := r.Register(ext); err != nil {
			panic(err)
		}
	}
	return r
})

// Register adds ext under its name and aliases.
// A name already claimed by another extension is an error.
func (r *Registry) Register(ext Extension) error {
	spec := ext.Spec()
	if spec.Name == "" {
		return errors.New("extension has no name")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	names := mapset.NewThreadUnsafeSet(spec.Names()...)
	if names.Cardinality() != len(spec.Names()) {
		return errors.Errorf("extension %q repeats a name in its aliases", spec.Name)
	}
	if clash := r.names.Intersect(names); clash.Cardinality() > 0 {
		return errors.Errorf("extension %q: name already registered: %v", spec.Name, clash.ToSlice())
	}

	r.names = r.names.Union(names)
	for _, n := range spec.Names() {
		r.byName[n] = ext
	}
	r.extensions = append(r.extensions, ext)
	return nil
}

// Lookup finds an extension by name or alias
func (r *Registry) Lookup(name string) (Extension, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	ext, ok := r.byName[name]
	return ext, ok
}

// Specs lists the specs of all extensions in registration order
func (r *Registry) Specs() []Spec {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	specs := make([]Spec, 0, len(r.extensions))
	for _, ext := range r.extensions {
		specs = append(specs, ext.Spec())
	}
	return specs
}

// Invoke validates inv and runs the extension it names.
// Schema problems are returned as *SchemaError.
func (r *Registry) Invoke(ctx context.Context, inv Invocation) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	ext, ok := r.Lookup(inv.Name)
	if !ok {
		InvocationsTotal.WithLabelValues("unknown", "invalid").Inc()
		return Result{}, schemaErrorf(inv.Name, "name", "is not a registered extension")
	}
	name := ext.Spec().Name

	if err := Validate(ext.Spec(), inv); err != nil {
		InvocationsTotal.WithLabelValues(name, "invalid").Inc()
		return Result{}, err
	}

	timer := prometheus.NewTimer(InvocationDuration.WithLabelValues(name))
	result := ext.Run(inv)
	timer.ObserveDuration()

	InvocationsTotal.WithLabelValues(name, "ok").Inc()
	for counter, n := range result.Counters {
		TransformCounts.WithLabelValues(name, counter).Add(float64(n))
	}
	return result, nil
}
