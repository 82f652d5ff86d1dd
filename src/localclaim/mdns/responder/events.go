package responder

import "github.com/localclaim/localclaim/src/localclaim/names"

// Event is a notification delivered by the responder to the surrounding
// application.
type Event interface {
	event()
}

// HostnameConfirmed is delivered exactly once, when a candidate hostname
// survives its probe window without any conflicting response.
type HostnameConfirmed struct {
	// Name is the confirmed hostname, such as "myhost.local." or
	// "myhost-2.local.".
	Name names.FQDN
}

func (HostnameConfirmed) event() {}

// Error is delivered whenever the responder encounters a non-fatal error,
// such as a failure to bind a socket or join a multicast group. The
// underlying operation is retried on the next refresh tick.
type Error struct {
	Err error
}

func (e Error) event() {}

// Error returns a description of the failure.
func (e Error) Error() string {
	return e.Err.Error()
}
