package responder

import (
	"context"
	"fmt"

	"github.com/localclaim/localclaim/src/localclaim/mdns"
	"github.com/localclaim/localclaim/src/localclaim/mdns/transport"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/miekg/dns"
)

// state is the prober's position in its lifecycle.
type state int

const (
	// stateIdle means no candidate hostname has been selected yet.
	stateIdle state = iota

	// stateProbing means a candidate has been chosen and probe queries
	// are in flight, awaiting the confirmation timer.
	stateProbing

	// stateConfirmed means the candidate survived its probe window and is
	// now the committed hostname. The state is terminal; a confirmed
	// hostname is never reverted.
	stateConfirmed
)

// startProbing selects the initial candidate hostname and probes for it on
// every endpoint.
func (r *Responder) startProbing(ctx context.Context) {
	r.state = stateProbing
	r.base = r.hostname
	r.suffix = 1
	r.candidate = r.base.Local()

	logging.Debug(r.logger, "probing for hostname %s", r.candidate)

	r.sendProbes()
	r.armConfirmation(ctx)
}

// retryProbing abandons the current candidate after a conflict and probes
// for the next one.
func (r *Responder) retryProbing(ctx context.Context) {
	taken := r.candidate

	r.candidate = r.base.WithSuffix(r.suffix).Local()
	r.suffix++

	logging.Debug(
		r.logger,
		"hostname %s is already in use, probing for %s",
		taken,
		r.candidate,
	)

	r.sendProbes()
	r.armConfirmation(ctx)
}

// sendProbes sends a probe query for the current candidate to the multicast
// group of each endpoint. Unbound endpoints drop the send silently.
func (r *Responder) sendProbes() {
	q := mdns.NewProbeQuery(r.candidate)

	for _, ep := range r.endpoints {
		out, err := transport.NewOutboundPacket(
			transport.Destination{
				Address: ep.Group(),
			},
			q,
		)
		if err != nil {
			r.report(fmt.Errorf(
				"unable to encode probe for %s: %w",
				r.candidate,
				err,
			))
			continue
		}

		// Send failures are already logged by the endpoint; mDNS is lossy
		// and the confirmation timer subsumes reliability.
		_ = ep.Write(out)
		out.Close()
	}
}

// armConfirmation starts the confirmation window for the current candidate.
// Arming a new timer supersedes any previously pending one.
func (r *Responder) armConfirmation(ctx context.Context) {
	r.generation++
	r.schedule(ctx, ConfirmTimeout, confirm{r.generation})
}

// confirm is a command that commits the current candidate if no conflict
// arrived within its probe window.
type confirm struct {
	generation int
}

func (c confirm) Execute(ctx context.Context, r *Responder) error {
	if r.state != stateProbing {
		return nil
	}

	// A stale timer from a candidate that has since been abandoned.
	if c.generation != r.generation {
		return nil
	}

	r.state = stateConfirmed

	logging.Log(r.logger, "hostname %s confirmed", r.candidate)
	r.emit(HostnameConfirmed{Name: r.candidate})

	return nil
}

// handleMessage is a command that routes a decoded inbound message to the
// prober.
type handleMessage struct {
	Packet  *transport.InboundPacket
	Message *dns.Msg
}

func (c *handleMessage) Execute(ctx context.Context, r *Responder) error {
	defer c.Packet.Close()

	// Queries are not answered; only responses can conflict with the
	// candidate hostname.
	if !c.Message.Response {
		return nil
	}

	if r.state != stateProbing {
		return nil
	}

	if !mdns.ConflictsWith(c.Message, r.candidate) {
		return nil
	}

	r.retryProbing(ctx)

	return nil
}
