package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/types"
)

// Registry is a thread-safe mapping from canonical operation type name to constructor
type Registry struct {
	mu    sync.RWMutex
	items map[string]types.Constructor
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		items: make(map[string]types.Constructor),
	}
}

// Normalize returns the canonical form of an operation type name
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a constructor under the canonical form of name
func (r *Registry) Register(name string, ctor types.Constructor) error {
	key := Normalize(name)
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "operation type name cannot be empty")
	}
	if ctor == nil {
		return errors.Newf(errors.ErrInvalidInput, "constructor for '%s' cannot be nil", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "operation '%s' is already registered", key)
	}

	r.items[key] = ctor
	return nil
}

// MustRegister registers a constructor and panics if registration fails
// This is useful at process start where registration errors are programming errors
func (r *Registry) MustRegister(name string, ctor types.Constructor) {
	if err := r.Register(name, ctor); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// Lookup returns the constructor registered for name, if any
func (r *Registry) Lookup(name string) (types.Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.items[Normalize(name)]
	return ctor, ok
}

// Has checks if an operation type is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered operation type names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Count returns the number of registered operation types
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// New resolves name and builds the operation at index from config.
//
// It fails with ErrUnknownOperation when name is not registered,
// ErrOperationConfig when the constructor rejects config, and
// ErrInvalidOperationType when the product does not implement
// types.Operation.
func (r *Registry) New(name string, config map[string]interface{}, index int) (types.Operation, error) {
	key := Normalize(name)

	ctor, ok := r.Lookup(key)
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownOperation,
			"invalid up configuration for operation %d: unknown operation %s", index, name).
			WithDetail("index", index).
			WithDetail("type", name)
	}

	product, err := ctor(config, index)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOperationConfig,
			"invalid up configuration for operation %d: %s", index, key).
			WithDetail("index", index).
			WithDetail("type", key)
	}

	op, ok := product.(types.Operation)
	if !ok || op == nil {
		return nil, errors.Newf(errors.ErrInvalidOperationType,
			"invalid up configuration for operation %d: invalid operation %s", index, name).
			WithDetail("index", index).
			WithDetail("type", name)
	}

	return op, nil
}
