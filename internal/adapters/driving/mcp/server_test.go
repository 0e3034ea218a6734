package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("nil explorer service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingExplorerService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{Explorer: services.NewExplorerService(memory.NewTripSource())}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		var ports *Ports
		assert.ErrorIs(t, ports.Validate(), ErrMissingExplorerService)
	})

	t.Run("missing explorer returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingExplorerService)
	})

	t.Run("explorer is valid", func(t *testing.T) {
		ports := &Ports{Explorer: services.NewExplorerService(memory.NewTripSource())}
		assert.NoError(t, ports.Validate())
	})
}
