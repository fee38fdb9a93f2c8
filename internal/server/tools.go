package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Mosaic Generation
		{
			Name:        "mosaic_build",
			Description: "Build an n x n mosaic from randomly chosen png/jpg/jpeg/bmp files of a folder. Each image is stretched to the tile size. The result becomes the current mosaic of the session and a scaled-down PNG preview is returned.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"folder": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the folder holding the source images",
					},
					"grid": map[string]interface{}{
						"type":        "integer",
						"description": "Grid dimension n; the mosaic has n x n tiles",
						"minimum":     1,
					},
					"tile_width": map[string]interface{}{
						"type":        "integer",
						"description": "Tile width in pixels. Default 200",
						"default":     200,
					},
					"tile_height": map[string]interface{}{
						"type":        "integer",
						"description": "Tile height in pixels. Default 200",
						"default":     200,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Hex colour of cells whose image could not be read. Default #000000",
						"default":     "#000000",
					},
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional seed for a reproducible selection and order",
					},
					"preview_size": map[string]interface{}{
						"type":        "integer",
						"description": "Longest side of the returned preview in pixels. Default 512",
						"default":     512,
					},
					"show_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw tile boundaries on the preview",
						"default":     false,
					},
				},
				"required": []string{"folder", "grid"},
			},
		},
		{
			Name:        "mosaic_save",
			Description: "Save the current mosaic. The format follows the file extension (png, jpg, jpeg, bmp, gif, tif, tiff). A failed save keeps the mosaic for another attempt.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute output path. Default mosaique.png in the working directory",
					},
					"jpeg_quality": map[string]interface{}{
						"type":        "integer",
						"description": "JPEG quality 1-100. Default 95",
						"default":     95,
					},
				},
			},
		},
		{
			Name:        "mosaic_status",
			Description: "Describe the current mosaic: size, grid, filled and skipped cells, and whether a build is running.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Inspection
		{
			Name:        "mosaic_preview",
			Description: "Return the current mosaic as a base64 PNG scaled to fit the given bounds.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"max_width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum preview width in pixels. Default 512",
						"default":     512,
					},
					"max_height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum preview height in pixels. Default 512",
						"default":     512,
					},
					"show_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw tile boundaries on the preview",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "mosaic_cell",
			Description: "Return one tile of the current mosaic at full resolution, with the source image it came from.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"row": map[string]interface{}{
						"type":        "integer",
						"description": "Row index (0-based, top row is 0)",
					},
					"col": map[string]interface{}{
						"type":        "integer",
						"description": "Column index (0-based, left column is 0)",
					},
				},
				"required": []string{"row", "col"},
			},
		},
		{
			Name:        "image_info",
			Description: "Get the dimensions, format and file size of a source image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
