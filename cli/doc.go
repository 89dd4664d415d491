// Package cli implements the dynscope command-line interface.
//
// The CLI loads a YAML document as the root of a dynamic scope and exposes
// subcommands for resolving, mutating, enumerating, and evaluating names
// against it. Flag parsing, grouping, and help output are handled by
// [github.com/alecthomas/kong].
package cli
