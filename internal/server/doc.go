// Package server implements the MCP (Model Context Protocol) server that
// exposes bounding box computation as tools.
//
// # Protocol
//
// Requests arrive on stdin as newline-delimited JSON-RPC 2.0 messages and
// responses are written to stdout, one per line. notifications/initialized
// gets no reply.
// The methods handled are initialize, tools/list, tools/call and ping.
//
// # Available Tools
//
// Core computation:
//   - bbox_compute: Formatted result string, "Error" or ""
//   - bbox_analyze: Candidates, selection and reported boxes
//
// Pictures:
//   - bbox_render: PNG of the grid with boxes outlined
//   - bbox_crop: Zoomed PNG of one candidate box
//
// Grid sources:
//   - bbox_grid_from_image: Sample an image into a grid, then compute
//   - bbox_ocr_grid: OCR a typed grid from an image, then compute
//
// Optional arguments that are omitted take their values from the loaded
// configuration.
//
// # Image Caching
//
// Source images are cached by path for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//     (-32700 parse error, -32601 unknown method, -32602 invalid params)
//   - message: Human-readable error description
//   - data: The Go error string
//
// An invalid grid passed to bbox_compute is not a tool error: it yields the
// "Error" output with is_error set.
//
// Every tool call is logged with its own run ID.
package server
