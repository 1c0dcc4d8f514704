//go:build windows

package platform

import (
	"os/exec"
	"strings"
)

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// toastScript builds the PowerShell that shows a toast. A saved image, when
// given, is shown next to the text.
func toastScript(title, body string, opts Options) string {
	tmpl := "ToastText02"
	icon := strings.TrimSpace(opts.IconPath)
	if icon != "" {
		tmpl = "ToastImageAndText02"
	}
	lines := []string{
		`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType=Windows Runtime] > $null`,
		`$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::` + tmpl + `)`,
		`$texts = $template.GetElementsByTagName("text")`,
		`$texts.Item(0).AppendChild($template.CreateTextNode(` + psQuote(title) + `)) > $null`,
		`$texts.Item(1).AppendChild($template.CreateTextNode(` + psQuote(body) + `)) > $null`,
	}
	if icon != "" {
		lines = append(lines, `$template.GetElementsByTagName("image").Item(0).SetAttribute("src", `+psQuote(icon)+`)`)
	}
	lines = append(lines,
		`$toast = [Windows.UI.Notifications.ToastNotification]::new($template)`,
		`[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(`+psQuote(opts.appID())+`).Show($toast)`,
	)
	return strings.Join(lines, "; ")
}

// Notify displays a toast notification using the Windows notification center.
func Notify(title, body string, opts Options) error {
	return exec.Command("powershell.exe", "-NoProfile", "-Command", toastScript(title, body, opts)).Run()
}
