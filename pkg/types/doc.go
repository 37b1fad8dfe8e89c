// Package types defines the core types shared by the omni up pipeline.
// This includes the Operation contract implemented by every operation
// type, the tri-state Result returned by operation actions, the Direction
// the pipeline runs in, and the Descriptor produced by validating the
// repository's up configuration.
package types
