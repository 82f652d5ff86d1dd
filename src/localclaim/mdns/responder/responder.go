package responder

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/localclaim/localclaim/src/localclaim/mdns/transport"
	"github.com/localclaim/localclaim/src/localclaim/names"

	"github.com/benbjohnson/clock"
	"github.com/dogmatiq/dodeca/logging"
	"golang.org/x/sync/errgroup"
)

const (
	// RefreshInterval is how often socket bindings and multicast group
	// memberships are refreshed.
	//
	// Rebinding and rejoining from scratch on a fixed interval tolerates
	// interfaces appearing and disappearing without having to watch for
	// interface change notifications; redundant joins are idempotent.
	RefreshInterval = 60 * time.Second

	// ConfirmTimeout is how long the prober waits for a conflicting
	// response before committing to a candidate hostname. It must exceed
	// a plausible LAN round-trip.
	ConfirmTimeout = 2 * time.Second

	// eventBacklog is the capacity of the event channel. Events are
	// dropped if the consumer falls this far behind.
	eventBacklog = 16
)

// command is a unit-of-work performed within the responder's main loop.
type command interface {
	Execute(ctx context.Context, r *Responder) error
}

// Responder claims a unique ".local." hostname on the attached network
// segments via mDNS probing, and keeps the underlying multicast sockets
// alive for the lifetime of the process.
//
// All state is owned by a single main loop; inbound packets and timer
// expirations are delivered to the loop as commands.
type Responder struct {
	logger      logging.Logger
	clk         clock.Clock
	hostname    names.Host
	interfaces  transport.InterfaceSource
	endpoints   []transport.Endpoint
	disableIPv4 bool
	disableIPv6 bool

	done     chan struct{}
	commands chan command
	events   chan Event
	group    *errgroup.Group

	receiving map[transport.Family]bool

	// prober state, touched only by the main loop
	state      state
	base       names.Host
	candidate  names.FQDN
	suffix     int
	generation int
}

// New returns a new mDNS hostname responder.
func New(options ...Option) (*Responder, error) {
	r := &Responder{
		done:      make(chan struct{}),
		commands:  make(chan command),
		events:    make(chan Event, eventBacklog),
		receiving: make(map[transport.Family]bool),
	}

	for _, opt := range options {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.logger == nil {
		r.logger = logging.DefaultLogger
	}

	if r.clk == nil {
		r.clk = clock.New()
	}

	if r.interfaces == nil {
		r.interfaces = transport.MulticastInterfaces
	}

	if r.hostname == "" {
		h, err := machineHostname()
		if err != nil {
			return nil, err
		}
		r.hostname = h
	}

	if r.endpoints == nil {
		if !r.disableIPv4 {
			r.endpoints = append(r.endpoints, &transport.IPv4Endpoint{Logger: r.logger})
		}

		if !r.disableIPv6 {
			r.endpoints = append(r.endpoints, &transport.IPv6Endpoint{Logger: r.logger})
		}
	}

	if len(r.endpoints) == 0 {
		return nil, errors.New("both IPv4 and IPv6 are disabled")
	}

	return r, nil
}

// Events returns the channel on which the responder delivers notifications.
//
// The channel is buffered; if the consumer stops draining it, further
// events are dropped rather than stalling the responder.
func (r *Responder) Events() <-chan Event {
	return r.events
}

// Run maintains multicast group membership and probes for a unique
// hostname until ctx is canceled or an unrecoverable error occurs.
//
// Bind, join and read failures are not unrecoverable; they are reported
// via the event channel and retried on the next refresh tick.
func (r *Responder) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	r.group = g

	g.Go(func() error {
		return r.run(ctx)
	})

	err := g.Wait()

	if err == context.Canceled {
		return nil
	}

	return err
}

// run is the responder's main loop.
func (r *Responder) run(ctx context.Context) error {
	defer func() {
		close(r.done)

		// Unblock any receive loops stuck in Read().
		for _, ep := range r.endpoints {
			_ = ep.Close()
		}
	}()

	// Bind and join immediately, then on every refresh tick.
	if err := (maintain{}).Execute(ctx, r); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c := <-r.commands:
			if err := c.Execute(ctx, r); err != nil {
				return err
			}
		}
	}
}

// execute enqueues c for execution on the main loop and blocks until it is
// accepted.
func (r *Responder) execute(ctx context.Context, c command) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.done:
		return errors.New("responder is no longer running")
	case r.commands <- c:
		return nil
	}
}

// schedule enqueues c for execution on the main loop after d has elapsed.
func (r *Responder) schedule(ctx context.Context, d time.Duration, c command) {
	t := r.clk.Timer(d)

	go func() {
		defer t.Stop()

		select {
		case <-ctx.Done():
		case <-t.C:
			_ = r.execute(ctx, c)
		}
	}()
}

// startReceive starts a receive loop for ep unless one is already running.
func (r *Responder) startReceive(ctx context.Context, ep transport.Endpoint) {
	if r.receiving[ep.Family()] {
		return
	}

	r.receiving[ep.Family()] = true

	r.group.Go(func() error {
		r.receive(ctx, ep)
		return nil
	})
}

// receive reads datagrams from ep and pipes them into the main loop until
// the endpoint fails or ctx is canceled.
func (r *Responder) receive(ctx context.Context, ep transport.Endpoint) {
	for {
		in, err := ep.Read()
		if err != nil {
			if ctx.Err() == nil {
				_ = r.execute(ctx, readFailed{ep, err})
			}
			return
		}

		m, err := in.Message()
		if err != nil {
			// Malformed and unrelated traffic is expected on a shared
			// multicast group; drop it without reporting.
			logging.Debug(
				r.logger,
				"discarding undecodable packet from %s: %s",
				in.Source.Address,
				err,
			)
			in.Close()
			continue
		}

		if err := r.execute(ctx, &handleMessage{in, m}); err != nil {
			in.Close()
			return
		}
	}
}

// report logs err and delivers it as a non-fatal Error event.
func (r *Responder) report(err error) {
	logging.Log(r.logger, "%s", err)
	r.emit(Error{Err: err})
}

// emit delivers ev without blocking the main loop.
func (r *Responder) emit(ev Event) {
	select {
	case r.events <- ev:
	default:
	}
}

// machineHostname derives the probing base name from the machine's local
// hostname, keeping only the first label.
func machineHostname() (names.Host, error) {
	n, err := os.Hostname()
	if err != nil {
		return "", err
	}

	if i := strings.IndexByte(n, '.'); i != -1 {
		n = n[:i]
	}

	return names.ParseHost(n)
}
