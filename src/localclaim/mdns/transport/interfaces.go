package transport

import "net"

// InterfaceInfo describes a multicast-capable network interface and the IP
// families for which it has at least one address.
type InterfaceInfo struct {
	Interface net.Interface
	HasIPv4   bool
	HasIPv6   bool
}

// Carries returns true if the interface has at least one address belonging
// to the given family.
func (i InterfaceInfo) Carries(f Family) bool {
	if f == IPv4 {
		return i.HasIPv4
	}

	return i.HasIPv6
}

// InterfaceSource enumerates the local network interfaces that are eligible
// for multicast group membership.
type InterfaceSource func() ([]InterfaceInfo, error)

// MulticastInterfaces returns the local network interfaces that are
// multicast-capable, along with the IP families they carry.
//
// Interfaces whose addresses cannot be enumerated are skipped; they
// may be queried again on the next membership refresh.
func MulticastInterfaces() ([]InterfaceInfo, error) {
	candidates, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var matches []InterfaceInfo

	for _, i := range candidates {
		if i.Flags&net.FlagMulticast == 0 {
			continue
		}

		addrs, err := i.Addrs()
		if err != nil {
			continue
		}

		info := InterfaceInfo{Interface: i}

		for _, a := range addrs {
			ipn, ok := a.(*net.IPNet)
			if !ok {
				continue
			}

			if ipn.IP.To4() != nil {
				info.HasIPv4 = true
			} else {
				info.HasIPv6 = true
			}
		}

		matches = append(matches, info)
	}

	return matches, nil
}
