package internal

import (
	"net"

	"github.com/rs/zerolog/log"
)

var loopbackIpNet = net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(8, 32)}

// HostIpNet finds the first non-loopback IPv4 network of this machine.
// Analytics rows are keyed by it. Falls back to loopback when the host
// has no such interface.
func HostIpNet() net.IPNet {
	ipnet, err := findHostIpNet(net.Interfaces)
	if err != nil {
		log.Warn().Err(err).Msg("host network lookup failed, using loopback")
		return loopbackIpNet
	}
	return ipnet
}

type interfaceLister func() ([]net.Interface, error)

func findHostIpNet(listInterfaces interfaceLister) (net.IPNet, error) {
	ifaces, err := listInterfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		if ipnet, ok := firstIpv4Net(addrs); ok {
			return ipnet, nil
		}
	}

	return loopbackIpNet, nil
}

func firstIpv4Net(addrs []net.Addr) (net.IPNet, bool) {
	for _, addr := range addrs {
		var ip net.IP
		var mask net.IPMask

		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
			mask = v.Mask
		case *net.IPAddr:
			ip = v.IP
		}

		if ip == nil || ip.To4() == nil || ip.IsLoopback() {
			continue
		}
		if mask == nil {
			mask = net.CIDRMask(32, 32)
		}
		return net.IPNet{IP: ip.To4(), Mask: mask}, true
	}

	return net.IPNet{}, false
}
