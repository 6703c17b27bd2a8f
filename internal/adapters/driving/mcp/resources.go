package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gearscan/internal/adapters/driving/render"
)

const (
	// uriScheme is the custom URI scheme for gearscan resources.
	uriScheme = "gearscan://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active scanner configuration",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "schematics/{name}",
		Name:        "schematic",
		Description: "A schematic file inside the data directory, with both totals",
		MIMEType:    "text/plain",
	}, s.handleSchematicResource)
}

// handleSettingsResource returns the active settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	info := struct {
		GearSymbol string `json:"gear_symbol"`
		DataDir    string `json:"data_dir"`
		Format     string `json:"format"`
		Color      bool   `json:"color"`
	}{
		GearSymbol: string(settings.Scan.GearSymbol),
		DataDir:    settings.Input.DataDir,
		Format:     settings.Output.Format.String(),
		Color:      settings.Output.Color,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSchematicResource returns a schematic followed by its totals.
func (s *Server) handleSchematicResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path, err := s.schematicPath(extractSchematicName(req.Params.URI))
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	grid, err := s.ports.Schematic.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading schematic: %w", err)
	}

	analysis, err := s.ports.Schematic.AnalyseGrid(grid)
	if err != nil {
		return nil, fmt.Errorf("analysing schematic: %w", err)
	}

	text := strings.Join(grid.Lines(), "\n") + "\n\n" + render.Summary(analysis) + "\n"

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// schematicPath maps a resource name to a file inside the data directory.
// It returns "" when the name could escape the directory or no data
// directory is configured.
func (s *Server) schematicPath(name string) (string, error) {
	if name == "" || !filepath.IsLocal(name) {
		return "", nil
	}
	if s.ports.Settings == nil {
		return "", nil
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return "", fmt.Errorf("loading settings: %w", err)
	}
	if settings.Input.DataDir == "" {
		return "", nil
	}
	return filepath.Join(settings.Input.DataDir, name), nil
}

// extractSchematicName extracts the file name from a URI like gearscan://schematics/{name}.
func extractSchematicName(uri string) string {
	const prefix = uriScheme + "schematics/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
