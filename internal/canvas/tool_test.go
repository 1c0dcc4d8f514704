package canvas

import "testing"

func TestParseTool(t *testing.T) {
	for _, tool := range Tools() {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Errorf("ParseTool(%q) = %v, %v", tool.String(), got, err)
		}
	}
	aliases := map[string]Tool{"RECT": ToolRectangle, " fill ": ToolPaintBucket, "bucket": ToolPaintBucket}
	for name, want := range aliases {
		if got, err := ParseTool(name); err != nil || got != want {
			t.Errorf("ParseTool(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseTool("spray"); err == nil {
		t.Error("expected unknown tool error")
	}
}

func TestToolGroups(t *testing.T) {
	if !ToolBrush.UsesBrushSize() || !ToolEraser.UsesBrushSize() || ToolPencil.UsesBrushSize() {
		t.Error("unexpected brush size grouping")
	}
	for _, tool := range []Tool{ToolLine, ToolRectangle, ToolCircle, ToolTriangle} {
		if !tool.IsShape() {
			t.Errorf("%v should be a shape", tool)
		}
	}
	if ToolPaintBucket.IsShape() {
		t.Error("paint bucket is not a shape")
	}
	if got := Tool(42).String(); got != "Tool(42)" {
		t.Errorf("unexpected %q", got)
	}
}
