// Package scaffold turns a package configuration into the complete file tree
// of a new Unity package and writes it out. It powers the "upmkit create" and
// "upmkit plan" commands.
//
// Planning and writing are separate steps. Plan is a pure function from
// Config and Assets to an ordered list of Nodes; Emit applies such a list to
// an afero filesystem and validates the manifests it wrote.
package scaffold
