// Package capture turns the current video frame into a PNG file.
//
// A capture snapshots the frame synchronously, then encodes and delivers
// the image on its own goroutine. The user notice is emitted as soon as the
// snapshot succeeds; it does not wait for the encoder.
package capture
