package transport

import (
	"net"

	"github.com/miekg/dns"
)

// Source is the origin of an inbound packet.
type Source struct {
	InterfaceIndex int
	Address        *net.UDPAddr
}

// Destination is the target of an outbound packet.
type Destination struct {
	InterfaceIndex int
	Address        *net.UDPAddr
}

// InboundPacket is a UDP packet received from an endpoint.
type InboundPacket struct {
	Family Family
	Source Source
	Data   []byte
}

// Message returns the DNS message contained in the packet.
func (p *InboundPacket) Message() (*dns.Msg, error) {
	m := &dns.Msg{}
	return m, m.Unpack(p.Data)
}

// Close returns the packet's data buffer to the pool.
func (p *InboundPacket) Close() {
	putBuffer(p.Data)
	p.Data = nil
}

// OutboundPacket is a UDP packet to be sent by an endpoint.
type OutboundPacket struct {
	Destination Destination
	Data        []byte
}

// Close returns the packet's data buffer to the pool.
func (p *OutboundPacket) Close() {
	putBuffer(p.Data)
	p.Data = nil
}

// NewOutboundPacket marshals the message m into p.Data.
func NewOutboundPacket(dest Destination, m *dns.Msg) (*OutboundPacket, error) {
	buf := getBuffer()

	d, err := m.PackBuffer(buf)
	if err != nil {
		putBuffer(buf)
		return nil, err
	}

	return &OutboundPacket{dest, d}, nil
}
