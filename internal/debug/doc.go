// Package debug provides optional structured debug logging.
//
// When the SCENE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. A logger can also be installed with
// SetLogger (the CLI routes its --verbose logger here). Otherwise, logging
// is a no-op.
package debug
