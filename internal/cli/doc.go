// Package cli renders chroma results for the command line and talks to a
// running chroma MCP server.
//
// Printer formats palettes, colours and harmony labels as a table
// (go-pretty), JSON or YAML. CLIClient connects to the palette tool server
// over SSE (or in-process in tests) and ToolExecutor calls a tool and
// prints its result with a Printer.
package cli
