// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
)

// responseWriter is a buffering decorator around [http.ResponseWriter].
//
// Unlike a pass-through wrapper, it withholds the entire response — status
// code and body — from the underlying writer until [responseWriter.flush] is
// called. This lets the logging middleware observe the complete response
// after the downstream handler has returned and then relay it to the client
// byte-for-byte: buffering makes logging an observer, never a transform.
//
// Headers are not buffered: Header() returns the underlying writer's header
// map, which the standard library sends only when WriteHeader is eventually
// forwarded during flush.
//
// responseWriter ensures that WriteHeader is recorded exactly once:
// subsequent calls are silently ignored, mirroring the behaviour documented
// by the [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// body accumulates every byte written by the downstream handler.
	body bytes.Buffer
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

// WriteHeader records the status code without forwarding it. The recorded
// code is sent to the underlying writer during flush.
//
// If WriteHeader has already been called for this response, the call is a
// no-op and statusCode is ignored.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

// Write appends b to the response buffer.
//
// If WriteHeader has not been called before Write, it implicitly records
// [http.StatusOK], matching the behaviour of the standard library's
// response writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// size returns the number of buffered response body bytes.
func (w *responseWriter) size() int {
	return w.body.Len()
}

// flush forwards the recorded status code and the buffered body to the
// underlying [http.ResponseWriter]. It must be called exactly once, after
// the downstream handler has returned.
//
// If the handler never wrote anything, flush sends 200 with an empty body,
// matching what the standard library does for a handler that returns without
// writing.
func (w *responseWriter) flush() error {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	w.ResponseWriter.WriteHeader(w.status)
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}
