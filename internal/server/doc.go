// Package server implements the MCP (Model Context Protocol) front-end of
// the mosaic builder.
//
// This package provides a JSON-RPC 2.0 server that exposes mosaic
// generation through the MCP protocol, so an MCP client can build, inspect
// and save mosaics one call at a time.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Mosaic Generation:
//   - mosaic_build: Build an n x n mosaic from a folder and return a preview
//   - mosaic_save: Write the current mosaic to disk (png/jpg/bmp by extension)
//   - mosaic_status: Describe the current mosaic and whether a build runs
//
// Inspection:
//   - mosaic_preview: Scaled-down PNG of the current mosaic, optionally gridded
//   - mosaic_cell: One tile at full resolution and the file it came from
//   - image_info: Metadata of a single source image
//
// # Session
//
// All tools share one session.Session. It holds the last mosaic built and
// refuses a second build while one is running. Nothing else persists
// between calls.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client through `mosaic serve`:
//
//	srv := server.New(session.New(), log.Default())
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
