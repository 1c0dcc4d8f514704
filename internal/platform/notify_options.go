package platform

import (
	"strings"
	"time"
)

// AppName is the sending application reported when Options.AppID is empty.
const AppName = "Paintpad"

// DefaultTimeout is how long a notification stays visible when Options.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout overrides DefaultTimeout where the platform allows it.
	Timeout time.Duration
	// AppID names the sending application. Empty means AppName.
	AppID string
}

func (o Options) appID() string {
	if strings.TrimSpace(o.AppID) == "" {
		return AppName
	}
	return o.AppID
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
