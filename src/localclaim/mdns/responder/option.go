package responder

import (
	"github.com/localclaim/localclaim/src/localclaim/mdns/transport"
	"github.com/localclaim/localclaim/src/localclaim/names"

	"github.com/benbjohnson/clock"
	"github.com/dogmatiq/dodeca/logging"
)

// Option is a function that applies an option to a responder created by
// New().
type Option func(*Responder) error

// UseLogger returns an option that sets the logger used by the responder.
func UseLogger(l logging.Logger) Option {
	return func(r *Responder) error {
		r.logger = l
		return nil
	}
}

// UseClock returns an option that sets the clock used for the membership
// refresh tick and the probe confirmation timer.
//
// If this option is not provided the system clock is used.
func UseClock(c clock.Clock) Option {
	return func(r *Responder) error {
		r.clk = c
		return nil
	}
}

// UseHostname returns an option that sets the base hostname to claim.
//
// If this option is not provided the machine's local hostname is used.
func UseHostname(h names.Host) Option {
	return func(r *Responder) error {
		if err := h.Validate(); err != nil {
			return err
		}

		r.hostname = h
		return nil
	}
}

// UseInterfaceSource returns an option that sets the function used to
// enumerate multicast-capable network interfaces.
//
// The source is consulted afresh on every membership refresh, so it must
// reflect interfaces appearing and disappearing over time.
func UseInterfaceSource(src transport.InterfaceSource) Option {
	return func(r *Responder) error {
		r.interfaces = src
		return nil
	}
}

// UseEndpoints returns an option that sets the socket endpoints used by the
// responder, overriding the default IPv4/IPv6 pair.
func UseEndpoints(endpoints ...transport.Endpoint) Option {
	return func(r *Responder) error {
		r.endpoints = endpoints
		return nil
	}
}

// DisableIPv4 is an option that prevents the responder from using IPv4.
func DisableIPv4(r *Responder) error {
	r.disableIPv4 = true
	return nil
}

// DisableIPv6 is an option that prevents the responder from using IPv6.
func DisableIPv6(r *Responder) error {
	r.disableIPv6 = true
	return nil
}
