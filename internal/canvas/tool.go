package canvas

import (
	"fmt"
	"strings"
)

// Tool selects what a gesture does to the raster.
type Tool int

const (
	ToolLine Tool = iota
	ToolRectangle
	ToolCircle
	ToolTriangle
	ToolPaintBucket
	ToolPencil
	ToolBrush
	ToolEraser
)

var toolNames = []string{
	ToolLine:        "line",
	ToolRectangle:   "rectangle",
	ToolCircle:      "circle",
	ToolTriangle:    "triangle",
	ToolPaintBucket: "paint-bucket",
	ToolPencil:      "pencil",
	ToolBrush:       "brush",
	ToolEraser:      "eraser",
}

var toolAliases = map[string]Tool{
	"rect":   ToolRectangle,
	"bucket": ToolPaintBucket,
	"fill":   ToolPaintBucket,
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	out := make([]Tool, len(toolNames))
	for i := range toolNames {
		out[i] = Tool(i)
	}
	return out
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool resolves a tool by name or alias, ignoring case.
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, tn := range toolNames {
		if tn == n {
			return Tool(i), nil
		}
	}
	if t, ok := toolAliases[n]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// IsShape reports whether the tool previews an outline while dragging.
func (t Tool) IsShape() bool {
	switch t {
	case ToolLine, ToolRectangle, ToolCircle, ToolTriangle:
		return true
	}
	return false
}

// UsesBrushSize reports whether the tool sizes itself from Settings.BrushSize
// rather than Settings.StrokeWidth.
func (t Tool) UsesBrushSize() bool {
	return t == ToolBrush || t == ToolEraser
}
