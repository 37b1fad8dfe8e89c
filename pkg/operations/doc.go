// Package operations provides the built-in operation types that can be
// listed in a repository's up configuration:
//
//   - custom:   arbitrary shell commands (meet / met? / unmeet)
//   - homebrew: taps and formulae or casks
//   - go:       module dependencies
//   - bundler:  Ruby gems through Bundler
//   - ruby:     a Ruby version through rbenv
//
// Each operation reports the cause of a failure itself and returns
// types.Stop; none of them retries.
package operations
