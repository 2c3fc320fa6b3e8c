package mcp

import (
	"fmt"
	"net"
)

// Port range searched by FindAvailablePort when serving HTTP without --port.
const (
	DefaultPortStart = 8080
	DefaultPortEnd   = 8180
)

// FindAvailablePort returns the first port in [startPort, endPort] that
// can be bound on the loopback interface.
func FindAvailablePort(startPort, endPort int) (int, error) {
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
