package types

import "fmt"

// Descriptor is one validated entry of the repository's up configuration
type Descriptor struct {
	// Type is the case-normalized operation type name
	Type string

	// Config is the operation configuration; never nil
	Config map[string]interface{}

	// Index is the position of the entry in the up list
	Index int
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s#%d", d.Type, d.Index)
}
