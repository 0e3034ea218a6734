package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_handleCitiesResource(t *testing.T) {
	server, _ := newTestServer(t)

	req := makeReadResourceRequest("bikeshare://cities")
	result, err := server.handleCitiesResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	content := result.Contents[0]
	assert.Equal(t, "bikeshare://cities", content.URI)
	assert.Equal(t, "application/json", content.MIMEType)
	assert.Contains(t, content.Text, `"id": "chicago"`)
	assert.Contains(t, content.Text, `"name": "New York City"`)
	assert.Contains(t, content.Text, `"source": "memory:washington"`)
}
