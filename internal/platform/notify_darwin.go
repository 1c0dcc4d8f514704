//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify displays a desktop notification using macOS Notification Center.
// The app id becomes the subtitle; osascript offers no icon or timeout control.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, opts.appID())
	return exec.Command("osascript", "-e", script).Run()
}
