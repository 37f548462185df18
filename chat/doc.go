// Package chat implements the interactive terminal session used by the
// geoagents chat demo: a read-eval loop over a ChatAgent with streaming
// output, a persisted transcript, and a sanitized HTML export.
package chat
