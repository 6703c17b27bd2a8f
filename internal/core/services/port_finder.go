package services

import (
	"fmt"
	"net"
	"strconv"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

// Default range searched when the MCP server is asked for HTTP without a port.
const (
	DefaultPortStart = 8080
	DefaultPortEnd   = 8099
)

// FindAvailablePort returns the first port in [startPort, endPort] that can
// be bound on host.
func FindAvailablePort(host string, startPort, endPort int) (int, error) {
	if startPort <= 0 || endPort < startPort {
		return 0, fmt.Errorf("%w: invalid range %d-%d", domain.ErrInvalidInput, startPort, endPort)
	}
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err != nil {
			continue
		}
		listener.Close()
		return port, nil
	}
	return 0, fmt.Errorf("%w in range %d-%d", domain.ErrNoAvailablePort, startPort, endPort)
}
