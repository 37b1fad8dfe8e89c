// Package userconfig reads and rewrites the user configuration file.
//
// The file is a free-form document: omni only owns the keys it updates
// (currently "path") and preserves everything else. YAML is the default
// format; a file with a .toml extension is read and written as TOML.
//
// Updates go through Store.Update, which holds an exclusive lock on a
// sibling "<file>.lock" for the whole read-modify-write cycle and replaces
// the file atomically.
package userconfig
