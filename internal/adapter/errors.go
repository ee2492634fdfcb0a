package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the backend rejects the session token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRemoteRejected is returned when the backend answers with a
	// success=false envelope. The envelope's error message is wrapped around
	// this sentinel for user display.
	ErrRemoteRejected = errors.New("remote rejected request")
)
