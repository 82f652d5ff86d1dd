package transport

import (
	"fmt"
	"net"

	"github.com/dogmatiq/dodeca/logging"
)

// groupConn contains the methods common to *ipv4.PacketConn and *ipv6.PacketConn.
type groupConn interface {
	JoinGroup(*net.Interface, net.Addr) error
}

// joinGroups joins the given multicast group on each of the interfaces that
// carries an address of family f.
//
// Membership is recomputed in full on every call. Joining a group that has
// already been joined is not an error, so repeated calls with an unchanged
// interface set are idempotent.
func joinGroups(
	pc groupConn,
	group net.IP,
	f Family,
	ifaces []InterfaceInfo,
	logger logging.Logger,
) error {
	addr := &net.UDPAddr{
		IP: group,
	}

	attempted := 0
	joined := 0

	for _, i := range ifaces {
		if !i.Carries(f) {
			continue
		}

		attempted++

		if err := pc.JoinGroup(&i.Interface, addr); err != nil {
			logging.Debug(
				logger,
				"unable to join the '%s' multicast group on the '%s' interface: %s",
				addr.IP,
				i.Interface.Name,
				err,
			)
		} else {
			joined++
		}
	}

	if attempted > 0 && joined == 0 {
		return fmt.Errorf(
			"unable to join the '%s' multicast group on any interfaces",
			addr.IP,
		)
	}

	return nil
}
