package mdns

import (
	"github.com/localclaim/localclaim/src/localclaim/names"
	"github.com/miekg/dns"
)

// NewProbeQuery returns a query used to check whether name is already in
// use by another responder on the network.
//
// See https://tools.ietf.org/html/rfc6762#section-8.1.
func NewProbeQuery(name names.FQDN) *dns.Msg {
	m := &dns.Msg{}

	m.Question = []dns.Question{
		{
			Name:   name.String(),
			Qtype:  dns.TypeA,
			Qclass: dns.ClassINET,
		},
	}

	return m
}

// ConflictsWith returns true if m is a response in which another responder
// claims ownership of name.
//
// A record claims the name if it is an address record (A or AAAA) for that
// exact name with a nonzero TTL. A zero TTL indicates the record is being
// retracted, which is not a claim.
func ConflictsWith(m *dns.Msg, name names.FQDN) bool {
	if !m.Response {
		return false
	}

	for _, section := range [][]dns.RR{m.Answer, m.Ns, m.Extra} {
		for _, rr := range section {
			if recordClaims(rr, name) {
				return true
			}
		}
	}

	return false
}

// recordClaims returns true if rr asserts ownership of name.
func recordClaims(rr dns.RR, name names.FQDN) bool {
	h := rr.Header()

	if h.Rrtype != dns.TypeA && h.Rrtype != dns.TypeAAAA {
		return false
	}

	if h.Ttl == 0 {
		return false
	}

	return h.Name == name.String()
}
