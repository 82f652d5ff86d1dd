package transport

import (
	"errors"
	"net"
	"sync"

	"github.com/dogmatiq/dodeca/logging"

	ipvx "golang.org/x/net/ipv6"
)

var (
	// IPv6Group is the multicast group used for mDNS over IPv6.
	//
	// See https://tools.ietf.org/html/rfc6762#section-3.
	IPv6Group = net.ParseIP("ff02::fb")

	// IPv6GroupAddress is the address to which mDNS queries are sent when using IPv6.
	//
	// See https://tools.ietf.org/html/rfc6762#section-3.
	IPv6GroupAddress = &net.UDPAddr{IP: IPv6Group, Port: Port}

	// IPv6ListenAddress is the address to which the endpoint binds when using
	// IPv6. The wildcard address is used so that datagrams are received
	// regardless of which interface they arrive on; group membership is
	// managed per-interface via JoinGroups().
	IPv6ListenAddress = &net.UDPAddr{IP: net.IPv6unspecified, Port: Port}
)

// IPv6Endpoint is an IPv6-based UDP endpoint.
type IPv6Endpoint struct {
	Logger logging.Logger

	m  sync.Mutex
	pc *ipvx.PacketConn
}

// Family returns the IP family of the endpoint.
func (e *IPv6Endpoint) Family() Family {
	return IPv6
}

// Group returns the mDNS multicast group address for IPv6.
func (e *IPv6Endpoint) Group() *net.UDPAddr {
	return IPv6GroupAddress
}

// Bound returns true if the endpoint is currently bound.
func (e *IPv6Endpoint) Bound() bool {
	return e.conn() != nil
}

// Bind binds the endpoint to the mDNS port on the IPv6 wildcard address.
func (e *IPv6Endpoint) Bind() error {
	addr := IPv6ListenAddress

	conn, err := bindUDP("udp6", addr)
	if err != nil {
		logBindError(e.Logger, addr, err)
		return err
	}

	pc := ipvx.NewPacketConn(conn)
	pc.SetControlMessage(ipvx.FlagInterface, true)

	e.m.Lock()
	e.pc = pc
	e.m.Unlock()

	logBound(e.Logger, addr)

	return nil
}

// JoinGroups joins the IPv6 mDNS multicast group on each of the given
// interfaces that carries an IPv6 address.
func (e *IPv6Endpoint) JoinGroups(ifaces []InterfaceInfo) error {
	pc := e.conn()
	if pc == nil {
		return nil
	}

	return joinGroups(pc, IPv6Group, IPv6, ifaces, e.Logger)
}

// Read reads the next packet from the endpoint.
func (e *IPv6Endpoint) Read() (*InboundPacket, error) {
	pc := e.conn()
	if pc == nil {
		return nil, errors.New("IPv6 endpoint is not bound")
	}

	buf := getBuffer()

	n, cm, src, err := pc.ReadFrom(buf)
	if err != nil {
		putBuffer(buf)
		logReadError(e.Logger, e.Group(), err)
		return nil, err
	}

	ifIndex := 0
	if cm != nil {
		ifIndex = cm.IfIndex
	}

	buf = buf[:n]

	return &InboundPacket{
		IPv6,
		Source{
			ifIndex,
			src.(*net.UDPAddr),
		},
		buf,
	}, nil
}

// Write sends a packet via the endpoint.
//
// If the endpoint is not bound the packet is silently discarded.
func (e *IPv6Endpoint) Write(p *OutboundPacket) error {
	pc := e.conn()
	if pc == nil {
		return nil
	}

	if _, err := pc.WriteTo(
		p.Data,
		&ipvx.ControlMessage{
			IfIndex: p.Destination.InterfaceIndex,
		},
		p.Destination.Address,
	); err != nil {
		logWriteError(e.Logger, p.Destination.Address, e.Group(), err)
		return err
	}

	return nil
}

// Close closes the endpoint, returning it to the unbound state.
func (e *IPv6Endpoint) Close() error {
	e.m.Lock()
	pc := e.pc
	e.pc = nil
	e.m.Unlock()

	if pc == nil {
		return nil
	}

	return pc.Close()
}

// conn returns the endpoint's packet connection, or nil if it is unbound.
func (e *IPv6Endpoint) conn() *ipvx.PacketConn {
	e.m.Lock()
	defer e.m.Unlock()

	return e.pc
}
