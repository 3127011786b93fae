package conn

import (
	"net"
	"strconv"
	"strings"
)

// defaultPort is the vanilla Minecraft Java Edition server port.
const defaultPort = 25565

// ResolveAddress resolves a Minecraft server address of the form
// "hostname[:port]" into a dialable "host:port" pair and the hostname/port
// the Handshake packet should carry. If no port is given explicitly, it
// performs an SRV lookup for "_minecraft._tcp.<host>" before falling back to
// the default port, per the external Address Resolver interface.
func ResolveAddress(address string) (dialAddr string, hostname string, port uint16, err error) {
	host, portStr, splitErr := net.SplitHostPort(address)
	if splitErr != nil {
		// No port in the address; treat it all as hostname and look for SRV.
		host = address
		if target, srvPort, ok := lookupSRV(host); ok {
			return net.JoinHostPort(target, strconv.Itoa(int(srvPort))), host, srvPort, nil
		}
		return net.JoinHostPort(host, strconv.Itoa(defaultPort)), host, defaultPort, nil
	}

	portNum, perr := strconv.ParseUint(portStr, 10, 16)
	if perr != nil {
		return "", "", 0, perr
	}
	return net.JoinHostPort(host, portStr), host, uint16(portNum), nil
}

func lookupSRV(host string) (target string, port uint16, ok bool) {
	_, records, err := net.LookupSRV("minecraft", "tcp", host)
	if err != nil || len(records) == 0 {
		return "", 0, false
	}
	srv := records[0]
	return strings.TrimSuffix(srv.Target, "."), srv.Port, true
}
