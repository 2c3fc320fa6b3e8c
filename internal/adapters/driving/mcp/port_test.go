package mcp

import (
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailablePort(t *testing.T) {
	port, err := FindAvailablePort(DefaultPortStart, DefaultPortEnd)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, DefaultPortStart)
	assert.LessOrEqual(t, port, DefaultPortEnd)
}

func TestFindAvailablePort_SkipsBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	taken := busy.Addr().(*net.TCPAddr).Port

	_, err = FindAvailablePort(taken, taken)

	assert.EqualError(t, err, fmt.Sprintf("no available port in range %d-%d", taken, taken))
}
