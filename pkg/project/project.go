// Package project holds build-time identity of the globalnav binary.
package project

// Name is the project name reported to MCP clients.
const Name = "globalnav"

// Version is overridable at build time with -ldflags.
var Version = "0.3.0"
