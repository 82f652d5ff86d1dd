package responder

import (
	"context"
	"fmt"

	"github.com/localclaim/localclaim/src/localclaim/mdns/transport"
)

// maintain is a command that (re)binds the socket endpoints and refreshes
// multicast group membership. It runs once at startup and reschedules
// itself on every refresh tick.
type maintain struct{}

func (maintain) Execute(ctx context.Context, r *Responder) error {
	bound := false

	for _, ep := range r.endpoints {
		if ep.Bound() {
			bound = true
			continue
		}

		if err := ep.Bind(); err != nil {
			r.report(fmt.Errorf(
				"unable to bind %s endpoint: %w",
				ep.Family(),
				err,
			))
			continue
		}

		bound = true
		r.startReceive(ctx, ep)
	}

	if bound {
		r.joinGroups()

		if r.state == stateIdle {
			r.startProbing(ctx)
		}
	}

	r.schedule(ctx, RefreshInterval, maintain{})

	return nil
}

// joinGroups recomputes multicast group membership for every bound endpoint.
func (r *Responder) joinGroups() {
	ifaces, err := r.interfaces()
	if err != nil {
		r.report(fmt.Errorf("unable to enumerate network interfaces: %w", err))
		return
	}

	for _, ep := range r.endpoints {
		if !ep.Bound() {
			continue
		}

		if err := ep.JoinGroups(ifaces); err != nil {
			r.report(fmt.Errorf(
				"unable to join multicast groups on %s endpoint: %w",
				ep.Family(),
				err,
			))
		}
	}
}

// readFailed is a command that marks an endpoint dead after a read error.
// The endpoint remains unbound until the next refresh tick rebinds it.
type readFailed struct {
	Endpoint transport.Endpoint
	Err      error
}

func (c readFailed) Execute(ctx context.Context, r *Responder) error {
	r.receiving[c.Endpoint.Family()] = false
	_ = c.Endpoint.Close()

	r.report(fmt.Errorf(
		"%s endpoint failed: %w",
		c.Endpoint.Family(),
		c.Err,
	))

	return nil
}
