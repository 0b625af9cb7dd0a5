package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

const uriScheme = "parliament://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static reference for the two chambers.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "houses",
		Name:        "houses",
		Description: "The houses of the UK Parliament accepted by the house parameter",
		MIMEType:    "application/json",
	}, s.handleHousesResource)

	// Reference list of government departments.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "departments",
		Name:        "departments",
		Description: "Government departments that answer parliamentary questions",
		MIMEType:    "application/json",
	}, s.handleDepartmentsResource)

	// Template for party composition per house.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "parties/{house}",
		Name:        "state-of-the-parties",
		Description: "Current party composition of a house of Parliament",
		MIMEType:    "application/json",
	}, s.handlePartiesResource)
}

// handleHousesResource returns the accepted house values.
func (s *Server) handleHousesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type houseInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	houses := []houseInfo{
		{Name: string(domain.HouseCommons), Description: "The elected chamber"},
		{Name: string(domain.HouseLords), Description: "The appointed chamber"},
	}

	data, err := json.MarshalIndent(houses, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling houses: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDepartmentsResource returns the department reference list.
func (s *Server) handleDepartmentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Members == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	raw, err := s.ports.Members.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing departments: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(raw),
		}},
	}, nil
}

// handlePartiesResource returns today's party composition for a house.
func (s *Server) handlePartiesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Members == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract the house from a URI like parliament://parties/{house}
	house := extractHouse(req.Params.URI)
	if house == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	raw, err := s.ports.Members.StateOfTheParties(ctx, house, time.Now().Format(domain.ISODate))
	if err != nil {
		return nil, fmt.Errorf("fetching state of the parties: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(raw),
		}},
	}, nil
}

// extractHouse extracts the house from a URI like parliament://parties/Commons.
func extractHouse(uri string) string {
	const prefix = uriScheme + "parties/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	house := strings.TrimPrefix(uri, prefix)
	if strings.Contains(house, "/") {
		return ""
	}
	return house
}
