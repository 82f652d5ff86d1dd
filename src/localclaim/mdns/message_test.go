package mdns_test

import (
	"net"

	. "github.com/localclaim/localclaim/src/localclaim/mdns"
	"github.com/localclaim/localclaim/src/localclaim/names"

	"github.com/miekg/dns"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// response returns a response message containing the given records in its
// answer section.
func response(records ...dns.RR) *dns.Msg {
	m := &dns.Msg{}
	m.Response = true
	m.Answer = records
	return m
}

func aRecord(name string, ttl uint32) *dns.A {
	return &dns.A{
		Hdr: dns.RR_Header{
			Name:   name,
			Rrtype: dns.TypeA,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		A: net.ParseIP("192.168.1.20"),
	}
}

var _ = Describe("NewProbeQuery", func() {
	It("asks for an A record for the candidate name", func() {
		m := NewProbeQuery("myhost.local.")

		Expect(m.Response).To(BeFalse())
		Expect(m.Question).To(HaveLen(1))
		Expect(m.Question[0].Name).To(Equal("myhost.local."))
		Expect(m.Question[0].Qtype).To(Equal(dns.TypeA))
		Expect(m.Question[0].Qclass).To(Equal(uint16(dns.ClassINET)))
	})

	It("produces a message that survives the wire format", func() {
		m := NewProbeQuery("myhost.local.")

		data, err := m.Pack()
		Expect(err).ShouldNot(HaveOccurred())

		u := &dns.Msg{}
		Expect(u.Unpack(data)).To(Succeed())
		Expect(u.Question).To(Equal(m.Question))
	})
})

var _ = Describe("ConflictsWith", func() {
	name := names.FQDN("myhost.local.")

	It("detects an A record claiming the candidate", func() {
		m := response(aRecord("myhost.local.", 120))

		Expect(ConflictsWith(m, name)).To(BeTrue())
	})

	It("detects an AAAA record claiming the candidate", func() {
		m := response(&dns.AAAA{
			Hdr: dns.RR_Header{
				Name:   "myhost.local.",
				Rrtype: dns.TypeAAAA,
				Class:  dns.ClassINET,
				Ttl:    120,
			},
			AAAA: net.ParseIP("fe80::1"),
		})

		Expect(ConflictsWith(m, name)).To(BeTrue())
	})

	It("detects a claim in the additional section", func() {
		m := response()
		m.Extra = []dns.RR{aRecord("myhost.local.", 120)}

		Expect(ConflictsWith(m, name)).To(BeTrue())
	})

	It("ignores records for other names", func() {
		m := response(aRecord("otherhost.local.", 120))

		Expect(ConflictsWith(m, name)).To(BeFalse())
	})

	It("ignores records with a zero TTL", func() {
		m := response(aRecord("myhost.local.", 0))

		Expect(ConflictsWith(m, name)).To(BeFalse())
	})

	It("ignores non-address records", func() {
		m := response(&dns.PTR{
			Hdr: dns.RR_Header{
				Name:   "myhost.local.",
				Rrtype: dns.TypePTR,
				Class:  dns.ClassINET,
				Ttl:    120,
			},
			Ptr: "elsewhere.local.",
		})

		Expect(ConflictsWith(m, name)).To(BeFalse())
	})

	It("ignores queries", func() {
		m := response(aRecord("myhost.local.", 120))
		m.Response = false

		Expect(ConflictsWith(m, name)).To(BeFalse())
	})
})
