// Package domain defines the MCP tool and resource surface for desktop
// automation. Each tool wraps exactly one primitive of the automation
// capability: handlers validate input, delegate once, and fold the delegated
// result into a response envelope. Operational failure (a zero return code, a
// missing window) is narrated in an ok/failed envelope; only a thrown fault
// from the capability raises the envelope's error flag. Nothing here throws
// past the tool boundary.
package domain
