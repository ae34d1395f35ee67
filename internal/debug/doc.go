// Package debug provides optional structured debug logging.
//
// When the UI_DEBUG environment variable is set to a file path, or Init is
// called with a file, messages are written through a rotating file sink.
// Otherwise logging is a no-op.
package debug
