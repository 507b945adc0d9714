package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Tool names.
const (
	ToolCompute       = "bbox_compute"
	ToolAnalyze       = "bbox_analyze"
	ToolRender        = "bbox_render"
	ToolCrop          = "bbox_crop"
	ToolGridFromImage = "bbox_grid_from_image"
	ToolOCRGrid       = "bbox_ocr_grid"
)

func linesProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": "Grid rows made of '*' (marked) and '-' (blank); all rows must have equal length",
	}
}

func allBoxesProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Report every non-overlapping box instead of only the largest (default false)",
		"default":     false,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Core computation
		{
			Name:        ToolCompute,
			Description: "Find the bounding boxes of connected groups of '*' cells in a grid. Returns the formatted result string, \"Error\" for an invalid grid, or \"\" when nothing is marked.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines":     linesProperty(),
					"all_boxes": allBoxesProperty(),
				},
				"required": []string{"lines"},
			},
		},
		{
			Name:        ToolAnalyze,
			Description: "Like bbox_compute, but returns every candidate region with its cell count, the non-overlapping selection, the reported boxes and whether any candidates overlap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines":     linesProperty(),
					"all_boxes": allBoxesProperty(),
				},
				"required": []string{"lines"},
			},
		},

		// Pictures
		{
			Name:        ToolRender,
			Description: "Render a grid with every candidate box outlined and the reported boxes shaded. Returns a base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines":     linesProperty(),
					"all_boxes": allBoxesProperty(),
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per grid cell (default from config, 16)",
					},
					"show_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw cell separator lines (default from config)",
					},
				},
				"required": []string{"lines"},
			},
		},
		{
			Name:        ToolCrop,
			Description: "Render a grid and return a zoomed PNG of one candidate box. Boxes are numbered from 1 in the order bbox_analyze lists candidates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lines": linesProperty(),
					"index": map[string]interface{}{
						"type":        "integer",
						"description": "1-based candidate number",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional zoom factor (e.g., 4.0). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"lines", "index"},
			},
		},

		// Grid sources
		{
			Name:        ToolGridFromImage,
			Description: "Sample an image into a grid (dark pixel blocks become '*') and compute its bounding boxes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels per grid cell along each side (default from config, 1)",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Luminance 1-255 below which a pixel is dark (default from config, 128)",
					},
					"all_boxes": allBoxesProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        ToolOCRGrid,
			Description: "Read a grid typed as '*' and '-' characters from a screenshot or photo using OCR, then compute its bounding boxes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (default from config, eng)",
					},
					"all_boxes": allBoxesProperty(),
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
