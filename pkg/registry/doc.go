// Package registry maps operation type names to the constructors that
// build them. A Registry is constructed explicitly at process start and
// passed to the code that resolves descriptors; there is no global
// instance.
package registry
