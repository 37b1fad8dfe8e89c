// Package up validates a repository's up configuration and runs the
// resulting operations in the requested direction.
//
// The work happens in two strictly separated phases:
//
//  1. Prepare parses every descriptor and builds every operation through
//     the registry. Any malformed entry or unknown type fails the whole
//     list, so no operation runs when any descriptor is invalid.
//
//  2. Executor.Run changes into the repository root and invokes each
//     operation's Up (declaration order) or Down (reverse order) one at a
//     time, stopping early when an operation returns types.Stop.
package up
