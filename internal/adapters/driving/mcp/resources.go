package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for explorer resources.
const uriScheme = "bikeshare://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cities",
		Name:        "cities",
		Description: "Cities with trip data and where each is read from",
		MIMEType:    "application/json",
	}, s.handleCitiesResource)
}

// cityInfo describes one city in the cities resource.
type cityInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// handleCitiesResource lists the supported cities.
func (s *Server) handleCitiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	cities := domain.AllCities()
	infos := make([]cityInfo, len(cities))
	for i, city := range cities {
		infos[i] = cityInfo{
			ID:     city.String(),
			Name:   city.Name(),
			Source: s.ports.Explorer.Source(city),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling cities: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
