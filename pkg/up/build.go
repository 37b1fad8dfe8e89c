package up

import (
	"github.com/arthur-debert/omni/pkg/registry"
	"github.com/arthur-debert/omni/pkg/types"
)

// Build instantiates every descriptor through reg, in order.
// Nothing is returned unless all descriptors resolve.
func Build(reg *registry.Registry, descriptors []types.Descriptor) ([]types.Operation, error) {
	ops := make([]types.Operation, 0, len(descriptors))
	for _, desc := range descriptors {
		op, err := reg.New(desc.Type, desc.Config, desc.Index)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Prepare validates the raw up configuration and builds all operations.
// It is the validation phase that must complete before anything runs.
func Prepare(reg *registry.Registry, raw interface{}) ([]types.Operation, error) {
	descriptors, err := ParseDescriptors(raw)
	if err != nil {
		return nil, err
	}
	return Build(reg, descriptors)
}
