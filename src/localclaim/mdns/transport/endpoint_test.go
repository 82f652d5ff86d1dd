package transport

import (
	"net"

	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("IPv4Endpoint", func() {
	It("reports the IPv4 family and group", func() {
		ep := &IPv4Endpoint{}

		Expect(ep.Family()).To(Equal(IPv4))
		Expect(ep.Group()).To(Equal(IPv4GroupAddress))
	})

	It("is unbound until Bind() succeeds", func() {
		ep := &IPv4Endpoint{}

		Expect(ep.Bound()).To(BeFalse())
	})

	It("silently discards writes while unbound", func() {
		ep := &IPv4Endpoint{}

		err := ep.Write(&OutboundPacket{
			Destination: Destination{Address: IPv4GroupAddress},
			Data:        []byte{0x00},
		})

		Expect(err).ShouldNot(HaveOccurred())
	})

	It("ignores joins while unbound", func() {
		ep := &IPv4Endpoint{}

		err := ep.JoinGroups([]InterfaceInfo{
			{
				Interface: net.Interface{Index: 1, Name: "eth0"},
				HasIPv4:   true,
			},
		})

		Expect(err).ShouldNot(HaveOccurred())
	})

	It("tolerates closing while unbound", func() {
		ep := &IPv4Endpoint{}

		Expect(ep.Close()).To(Succeed())
	})
})

var _ = Describe("IPv6Endpoint", func() {
	It("reports the IPv6 family and group", func() {
		ep := &IPv6Endpoint{}

		Expect(ep.Family()).To(Equal(IPv6))
		Expect(ep.Group()).To(Equal(IPv6GroupAddress))
	})

	It("silently discards writes while unbound", func() {
		ep := &IPv6Endpoint{}

		err := ep.Write(&OutboundPacket{
			Destination: Destination{Address: IPv6GroupAddress},
			Data:        []byte{0x00},
		})

		Expect(err).ShouldNot(HaveOccurred())
	})
})

var _ = Describe("NewOutboundPacket", func() {
	It("marshals the message into the packet's buffer", func() {
		m := &dns.Msg{}
		m.SetQuestion("myhost.local.", dns.TypeA)

		out, err := NewOutboundPacket(
			Destination{Address: IPv4GroupAddress},
			m,
		)
		Expect(err).ShouldNot(HaveOccurred())
		defer out.Close()

		in := &InboundPacket{
			Family: IPv4,
			Data:   out.Data,
		}

		u, err := in.Message()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(u.Question).To(Equal(m.Question))
	})
})

var _ = Describe("Family", func() {
	It("has a human-readable representation", func() {
		Expect(IPv4.String()).To(Equal("IPv4"))
		Expect(IPv6.String()).To(Equal("IPv6"))
	})
})
