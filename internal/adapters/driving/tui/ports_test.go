package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bikeshare-cli/internal/core/services"
)

func TestPorts_Validate(t *testing.T) {
	explorer := services.NewExplorerService(memory.NewTripSource())

	assert.NoError(t, (&Ports{Explorer: explorer}).Validate())
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingExplorerService)

	var nilPorts *Ports
	assert.ErrorIs(t, nilPorts.Validate(), ErrInvalidPorts)
}

func TestPorts_DefaultStep(t *testing.T) {
	ports := &Ports{}
	assert.Equal(t, 5, ports.defaultStep(5))

	store := memory.NewConfigStore(map[string]any{"browse.default_step": int64(12)})
	ports.Settings = services.NewSettingsService(store)
	assert.Equal(t, 12, ports.defaultStep(5))
}
