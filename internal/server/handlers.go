package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-mosaic/internal/config"
	"github.com/ironsheep/image-mosaic/internal/imaging"
	"github.com/ironsheep/image-mosaic/internal/mosaic"
	"github.com/ironsheep/image-mosaic/internal/session"
)

// defaultPreviewSize bounds both sides of previews when the client does not.
const defaultPreviewSize = 512

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "mosaic_build", "mosaic_save").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(s.session, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each handler receives the session explicitly; none of them keeps state of
// its own.
func (s *Server) executeTool(sess *session.Session, name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Mosaic Generation
	case "mosaic_build":
		return s.handleMosaicBuild(sess, args)
	case "mosaic_save":
		return s.handleMosaicSave(sess, args)
	case "mosaic_status":
		return s.handleMosaicStatus(sess, args)

	// Inspection
	case "mosaic_preview":
		return s.handleMosaicPreview(sess, args)
	case "mosaic_cell":
		return s.handleMosaicCell(sess, args)
	case "image_info":
		return s.handleImageInfo(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Mosaic Generation Handlers ===

type mosaicBuildArgs struct {
	Folder      string  `json:"folder"`
	Grid        int     `json:"grid"`
	TileWidth   int     `json:"tile_width"`
	TileHeight  int     `json:"tile_height"`
	Background  string  `json:"background"`
	Seed        *uint64 `json:"seed"`
	PreviewSize int     `json:"preview_size"`
	ShowGrid    bool    `json:"show_grid"`
}

// MosaicBuildResult summarizes a finished build.
type MosaicBuildResult struct {
	Width        int                   `json:"width"`
	Height       int                   `json:"height"`
	Grid         int                   `json:"grid"`
	Tile         mosaic.TileSize       `json:"tile"`
	PoolSize     int                   `json:"pool_size"`
	Padded       bool                  `json:"padded"`
	Filled       int                   `json:"filled"`
	Skipped      int                   `json:"skipped"`
	SkippedCells []mosaic.CellResult   `json:"skipped_cells,omitempty"`
	Preview      *imaging.EncodedImage `json:"preview"`
}

func (s *Server) handleMosaicBuild(sess *session.Session, args json.RawMessage) (interface{}, error) {
	var a mosaicBuildArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Folder == "" {
		return nil, fmt.Errorf("folder is required")
	}
	if a.PreviewSize == 0 {
		a.PreviewSize = defaultPreviewSize
	}

	cfg := config.Default()
	cfg.Folder = a.Folder
	cfg.Grid = a.Grid
	if a.TileWidth != 0 {
		cfg.TileWidth = a.TileWidth
	}
	if a.TileHeight != 0 {
		cfg.TileHeight = a.TileHeight
	}
	if a.Background != "" {
		cfg.Background = a.Background
	}
	cfg.Seed = a.Seed

	opts, err := cfg.BuildOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = s.logger

	result, err := sess.Generate(cfg.Folder, opts)
	if err != nil {
		return nil, err
	}

	preview, err := encodePreview(sess, a.PreviewSize, a.PreviewSize, a.ShowGrid)
	if err != nil {
		return nil, err
	}

	bounds := result.Canvas.Bounds()
	return &MosaicBuildResult{
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		Grid:         result.Grid,
		Tile:         result.Tile,
		PoolSize:     result.PoolSize,
		Padded:       result.Padded,
		Filled:       result.Filled(),
		Skipped:      result.Skipped(),
		SkippedCells: result.SkippedCells(),
		Preview:      preview,
	}, nil
}

type mosaicSaveArgs struct {
	Path        string `json:"path"`
	JPEGQuality int    `json:"jpeg_quality"`
}

// MosaicSaveResult reports where the mosaic was written.
type MosaicSaveResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleMosaicSave(sess *session.Session, args json.RawMessage) (interface{}, error) {
	var a mosaicSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.JPEGQuality == 0 {
		a.JPEGQuality = mosaic.DefaultJPEGQuality
	}

	path, err := sess.Save(a.Path, mosaic.WithJPEGQuality(a.JPEGQuality))
	if err != nil {
		return nil, err
	}

	bounds := sess.Last().Canvas.Bounds()
	return &MosaicSaveResult{
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// MosaicStatusResult describes the session.
type MosaicStatusResult struct {
	Built   bool            `json:"built"`
	Busy    bool            `json:"busy"`
	Folder  string          `json:"folder,omitempty"`
	Width   int             `json:"width,omitempty"`
	Height  int             `json:"height,omitempty"`
	Grid    int             `json:"grid,omitempty"`
	Tile    mosaic.TileSize `json:"tile"`
	Filled  int             `json:"filled"`
	Skipped int             `json:"skipped"`
}

func (s *Server) handleMosaicStatus(sess *session.Session, _ json.RawMessage) (interface{}, error) {
	status := &MosaicStatusResult{Busy: sess.Busy()}

	last := sess.Last()
	if last == nil {
		return status, nil
	}

	bounds := last.Canvas.Bounds()
	status.Built = true
	status.Folder = sess.Folder()
	status.Width = bounds.Dx()
	status.Height = bounds.Dy()
	status.Grid = last.Grid
	status.Tile = last.Tile
	status.Filled = last.Filled()
	status.Skipped = last.Skipped()
	return status, nil
}

// === Inspection Handlers ===

type mosaicPreviewArgs struct {
	MaxWidth  int  `json:"max_width"`
	MaxHeight int  `json:"max_height"`
	ShowGrid  bool `json:"show_grid"`
}

func (s *Server) handleMosaicPreview(sess *session.Session, args json.RawMessage) (interface{}, error) {
	var a mosaicPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxWidth == 0 {
		a.MaxWidth = defaultPreviewSize
	}
	if a.MaxHeight == 0 {
		a.MaxHeight = defaultPreviewSize
	}
	return encodePreview(sess, a.MaxWidth, a.MaxHeight, a.ShowGrid)
}

func encodePreview(sess *session.Session, maxWidth, maxHeight int, showGrid bool) (*imaging.EncodedImage, error) {
	preview, err := sess.Preview(maxWidth, maxHeight, showGrid)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNGBase64(preview)
}

type mosaicCellArgs struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MosaicCellResult is one tile of the mosaic and the image it came from.
type MosaicCellResult struct {
	mosaic.CellResult
	Image *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleMosaicCell(sess *session.Session, args json.RawMessage) (interface{}, error) {
	var a mosaicCellArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	tile, err := sess.Cell(a.Row, a.Col)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNGBase64(tile)
	if err != nil {
		return nil, err
	}

	last := sess.Last()
	return &MosaicCellResult{
		CellResult: last.Cells[a.Row*last.Grid+a.Col],
		Image:      encoded,
	}, nil
}

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(a.Path)
}
