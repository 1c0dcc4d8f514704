//go:build windows

package platform

import (
	"strings"
	"testing"
)

func TestToastScript(t *testing.T) {
	s := toastScript("It's done", "Saved a.png", Options{AppID: "Sketch"})
	for _, want := range []string{"ToastText02", "'It''s done'", "'Saved a.png'", "CreateToastNotifier('Sketch')"} {
		if !strings.Contains(s, want) {
			t.Errorf("script missing %q: %s", want, s)
		}
	}
	if strings.Contains(s, `"image"`) {
		t.Errorf("text toast should not set an image: %s", s)
	}

	s = toastScript("t", "b", Options{IconPath: `C:\a.png`})
	for _, want := range []string{"ToastImageAndText02", `'C:\a.png'`, "CreateToastNotifier('" + AppName + "')"} {
		if !strings.Contains(s, want) {
			t.Errorf("script missing %q: %s", want, s)
		}
	}
}
