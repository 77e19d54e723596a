package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range mcpCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
	assert.NotNil(t, mcpServeCmd.Flags().Lookup("port"))
}

func TestMCPServe_NoExtractor(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	extractor = nil

	_, _, err := execute(t, "", "mcp", "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating ports")
}
