package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mcpadapter "github.com/plugforge/plugforge/internal/adapters/inbound/mcp"
)

func TestNewPlugforgeMCPServer(t *testing.T) {
	s := mcpadapter.NewPlugforgeMCPServer()
	require.NotNil(t, s)
}
