// Package render produces the C# source stubs placed in each partition of a
// generated package. The set of stubs is closed (see Kind) and each one is an
// embedded text/template filled from a Substitution record, so user-supplied
// names are inserted as data and never re-interpreted as template syntax.
package render
