package transport

import "net"

// Port is the mDNS port number.
const Port = 5353

// Family is an IP address family.
type Family int

const (
	// IPv4 is the IPv4 address family.
	IPv4 Family = iota

	// IPv6 is the IPv6 address family.
	IPv6
)

// String returns a human-readable representation of the family.
func (f Family) String() string {
	if f == IPv4 {
		return "IPv4"
	}

	return "IPv6"
}

// Endpoint is a UDP endpoint for a single IP family.
//
// An endpoint is created unbound. Bind() attaches it to the mDNS port on
// the family's wildcard address; binding may fail and be retried at any
// later time. A bound endpoint loses its binding only via Close().
type Endpoint interface {
	// Family returns the IP family of the endpoint.
	Family() Family

	// Group returns the mDNS multicast group address for the endpoint's
	// family, including the mDNS port.
	Group() *net.UDPAddr

	// Bound returns true if the endpoint is currently bound.
	Bound() bool

	// Bind binds the endpoint to the mDNS port on the wildcard address.
	//
	// The bind requests address-sharing semantics so that multiple mDNS
	// responders can coexist on the same host; if it fails it is retried
	// once with stronger reuse options.
	Bind() error

	// JoinGroups joins the endpoint's multicast group on each of the given
	// interfaces that carries an address of the endpoint's family.
	//
	// Joins are idempotent, so membership can be recomputed from scratch
	// whenever the interface set may have changed.
	JoinGroups(ifaces []InterfaceInfo) error

	// Read reads the next packet from the endpoint.
	Read() (*InboundPacket, error)

	// Write sends a packet via the endpoint.
	//
	// If the endpoint is not bound the packet is silently discarded.
	Write(*OutboundPacket) error

	// Close closes the endpoint, returning it to the unbound state.
	Close() error
}
