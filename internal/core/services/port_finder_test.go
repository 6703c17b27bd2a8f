package services

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gearscan/internal/core/domain"
)

func TestFindAvailablePort_SkipsBoundPort(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	taken := listener.Addr().(*net.TCPAddr).Port

	port, err := FindAvailablePort("127.0.0.1", taken, taken+20)

	if err != nil {
		// every port after the taken one may be in use on a busy host
		assert.ErrorIs(t, err, domain.ErrNoAvailablePort)
		return
	}
	assert.NotEqual(t, taken, port)
	assert.Greater(t, port, taken)
}

func TestFindAvailablePort_AllTaken(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	taken := listener.Addr().(*net.TCPAddr).Port

	_, err = FindAvailablePort("127.0.0.1", taken, taken)

	assert.ErrorIs(t, err, domain.ErrNoAvailablePort)
}

func TestFindAvailablePort_InvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"zero start", 0, 10},
		{"negative start", -5, 10},
		{"end before start", 9000, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindAvailablePort("127.0.0.1", tt.start, tt.end)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
