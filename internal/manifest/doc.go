// Package manifest builds and validates the two document types of a Unity
// package: the package manifest (package.json) and the assembly definitions
// (*.asmdef) that declare each partition. Both are checked against JSON
// schemas embedded from the schema directory.
package manifest
