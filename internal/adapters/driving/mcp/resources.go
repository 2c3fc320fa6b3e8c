package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/keypad-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for keypad resources.
	uriScheme = "keypad://"
)

// profileInfo describes a capability profile.
type profileInfo struct {
	Name           string   `json:"name"`
	Modulo         bool     `json:"modulo"`
	SquareRoot     bool     `json:"square_root"`
	Rounding       string   `json:"rounding"`
	StrictSentinel bool     `json:"strict_sentinel"`
	Operators      []string `json:"operators"`
}

func newProfileInfo(p domain.Profile) profileInfo {
	ops := []string{"+", "-", "*", "/"}
	if p.SupportsModulo {
		ops = append(ops, "%")
	}
	if p.SupportsSquareRoot {
		ops = append(ops, domain.GlyphSquareRoot)
	}
	return profileInfo{
		Name:           p.Name,
		Modulo:         p.SupportsModulo,
		SquareRoot:     p.SupportsSquareRoot,
		Rounding:       p.Rounding.String(),
		StrictSentinel: p.StrictSentinel,
		Operators:      ops,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "state",
		Name:        "state",
		Description: "Current calculator display and phase",
		MIMEType:    "application/json",
	}, s.handleStateResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profile",
		Name:        "profile",
		Description: "Capabilities of the active keypad profile",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "profiles/{name}",
		Name:        "profile-preset",
		Description: "Capabilities of a named keypad profile (classic or extended)",
		MIMEType:    "application/json",
	}, s.handleProfilePresetResource)
}

// handleStateResource returns the session state.
func (s *Server) handleStateResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.stateOutput(s.ports.Calculator.State()))
}

// handleProfileResource returns the active profile.
func (s *Server) handleProfileResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, newProfileInfo(s.ports.Calculator.Profile()))
}

// handleProfilePresetResource returns a named preset.
func (s *Server) handleProfilePresetResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractProfileName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, err := domain.ProfileByName(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, newProfileInfo(p))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProfileName extracts the name from a URI like keypad://profiles/{name}.
func extractProfileName(uri string) string {
	const prefix = uriScheme + "profiles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
