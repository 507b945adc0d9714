package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ironsheep/bounding-box/internal/boundingbox"
	"github.com/ironsheep/bounding-box/internal/geometry"
	"github.com/ironsheep/bounding-box/internal/grid"
	"github.com/ironsheep/bounding-box/internal/imaging"
	"github.com/ironsheep/bounding-box/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bbox_compute").
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
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	logger := s.newRunLogger(params.Name)
	logger.Debug("tool call")

	result, err := s.executeTool(context.Background(), logger, params.Name, params.Arguments)
	if err != nil {
		logger.Warn("tool failed", "error", err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies config defaults for omitted optional parameters
//  3. Runs the analysis and any imaging/ocr step
//  4. Returns the result or error
func (s *Server) executeTool(ctx context.Context, logger *slog.Logger, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Core computation
	case ToolCompute:
		return s.handleCompute(ctx, logger, args)
	case ToolAnalyze:
		return s.handleAnalyze(ctx, logger, args)

	// Pictures
	case ToolRender:
		return s.handleRender(ctx, logger, args)
	case ToolCrop:
		return s.handleCrop(ctx, logger, args)

	// Grid sources
	case ToolGridFromImage:
		return s.handleGridFromImage(ctx, logger, args)
	case ToolOCRGrid:
		return s.handleOCRGrid(ctx, logger, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// cleanLines applies the same trimming as stdin input: surrounding
// whitespace is removed and empty rows are dropped.
func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func (s *Server) allBoxes(v *bool) bool {
	if v == nil {
		return s.cfg.Mode.AllBoxes
	}
	return *v
}

func (s *Server) renderOptions(cellSize *int, showGrid *bool) imaging.RenderOptions {
	opts := imaging.RenderOptions{
		CellSize:    s.cfg.Render.CellSize,
		Border:      s.cfg.Render.Border,
		ShowGrid:    s.cfg.Render.ShowGrid,
		Labels:      true,
		GridColor:   s.cfg.Render.GridColor,
		Background:  s.cfg.Render.Background,
		MarkedColor: s.cfg.Render.MarkedColor,
	}
	if cellSize != nil {
		opts.CellSize = *cellSize
		opts.Border = min(opts.Border, opts.CellSize/2)
	}
	if showGrid != nil {
		opts.ShowGrid = *showGrid
	}
	return opts
}

// parseAndAnalyze validates lines and runs the pipeline on them.
func parseAndAnalyze(ctx context.Context, logger *slog.Logger, lines []string, allBoxes bool) (*grid.Grid, *boundingbox.Result, error) {
	g, err := grid.Parse(cleanLines(lines))
	if err != nil {
		return nil, nil, err
	}
	res, err := boundingbox.AnalyzeGrid(ctx, g, boundingbox.Options{AllBoxes: allBoxes, Logger: logger})
	if err != nil {
		return nil, nil, err
	}
	return g, res, nil
}

// === Core Computation Handlers ===

type gridArgs struct {
	Lines    []string `json:"lines"`
	AllBoxes *bool    `json:"all_boxes"`
}

// ComputeResult is the bbox_compute payload.
type ComputeResult struct {
	Output  string `json:"output"`
	IsError bool   `json:"is_error"`
}

func (s *Server) handleCompute(ctx context.Context, logger *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	res, err := boundingbox.Analyze(ctx, cleanLines(a.Lines), boundingbox.Options{
		AllBoxes: s.allBoxes(a.AllBoxes),
		Logger:   logger,
	})
	out := boundingbox.OutputFor(res, err)
	return &ComputeResult{Output: out, IsError: out == boundingbox.ErrorMarker}, nil
}

func (s *Server) handleAnalyze(ctx context.Context, logger *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, res, err := parseAndAnalyze(ctx, logger, a.Lines, s.allBoxes(a.AllBoxes))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// === Picture Handlers ===

type renderArgs struct {
	Lines    []string `json:"lines"`
	AllBoxes *bool    `json:"all_boxes"`
	CellSize *int     `json:"cell_size"`
	ShowGrid *bool    `json:"show_grid"`
}

// RenderToolResult is the bbox_render payload.
type RenderToolResult struct {
	*imaging.RenderResult
	Output string `json:"output"`
}

func (s *Server) handleRender(ctx context.Context, logger *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a renderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, res, err := parseAndAnalyze(ctx, logger, a.Lines, s.allBoxes(a.AllBoxes))
	if err != nil {
		return nil, err
	}
	img, err := imaging.Render(g, res.Candidates, res.Reported, s.renderOptions(a.CellSize, a.ShowGrid))
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(img)
	if err != nil {
		return nil, err
	}
	return &RenderToolResult{RenderResult: encoded, Output: res.Output}, nil
}

type cropArgs struct {
	Lines []string `json:"lines"`
	Index int      `json:"index"`
	Scale float64  `json:"scale"`
}

// CropToolResult is the bbox_crop payload.
type CropToolResult struct {
	*imaging.RenderResult
	Box   geometry.Box `json:"box"`
	Cells int          `json:"cells"`
}

func (s *Server) handleCrop(ctx context.Context, logger *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	g, res, err := parseAndAnalyze(ctx, logger, a.Lines, false)
	if err != nil {
		return nil, err
	}
	if a.Index < 1 || a.Index > len(res.Candidates) {
		return nil, fmt.Errorf("index %d out of range: grid has %d candidate boxes", a.Index, len(res.Candidates))
	}
	candidate := res.Candidates[a.Index-1]

	opts := s.renderOptions(nil, nil)
	img, err := imaging.Render(g, res.Candidates, []geometry.Box{candidate.Box}, opts)
	if err != nil {
		return nil, err
	}
	cropped, err := imaging.CropBox(img, candidate.Box, opts.CellSize, a.Scale)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(cropped)
	if err != nil {
		return nil, err
	}
	return &CropToolResult{RenderResult: encoded, Box: candidate.Box, Cells: candidate.Cells}, nil
}

// === Grid Source Handlers ===

// SourcedResult pairs a grid read from an image with its analysis.
type SourcedResult struct {
	Lines  []string            `json:"lines"`
	Result *boundingbox.Result `json:"result"`
}

type gridFromImageArgs struct {
	Path      string `json:"path"`
	CellSize  int    `json:"cell_size"`
	Threshold int    `json:"threshold"`
	AllBoxes  *bool  `json:"all_boxes"`
}

func (s *Server) handleGridFromImage(ctx context.Context, logger *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a gridFromImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = s.cfg.Image.CellSize
	}
	if a.Threshold == 0 {
		a.Threshold = s.cfg.Image.Threshold
	}
	if a.Threshold < 1 || a.Threshold > 255 {
		return nil, fmt.Errorf("threshold must be in 1..255, got %d", a.Threshold)
	}

	g, err := imaging.LoadGrid(s.cache, a.Path, imaging.SampleOptions{
		CellSize:  a.CellSize,
		Threshold: uint8(a.Threshold),
	})
	if err != nil {
		return nil, err
	}
	res, err := boundingbox.AnalyzeGrid(ctx, g, boundingbox.Options{AllBoxes: s.allBoxes(a.AllBoxes), Logger: logger})
	if err != nil {
		return nil, err
	}
	return &SourcedResult{Lines: g.Lines(), Result: res}, nil
}

type ocrGridArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	AllBoxes *bool  `json:"all_boxes"`
}

func (s *Server) handleOCRGrid(ctx context.Context, logger *slog.Logger, args json.RawMessage) (interface{}, error) {
	var a ocrGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.cfg.OCR.Language
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	lines, err := ocr.ReadGrid(img, ocr.Options{Language: a.Language})
	if err != nil {
		return nil, err
	}
	_, res, err := parseAndAnalyze(ctx, logger, lines, s.allBoxes(a.AllBoxes))
	if err != nil {
		return nil, fmt.Errorf("recognised text %q: %w", lines, err)
	}
	return &SourcedResult{Lines: lines, Result: res}, nil
}
