// Package transcription defines the transcription provider interface for the
// scribe backend.
//
// Transcription results are opaque to this layer: the sidecar emits a single
// JSON document and the backend passes it through to the front-end without
// interpreting it. Providers therefore return json.RawMessage.
//
// # Backends
//
//   - transcription/sidecar: external sidecar executable invoked per call
package transcription
