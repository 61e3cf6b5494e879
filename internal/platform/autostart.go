// Package platform provides the OS integration Tomatick needs:
// launch-at-login registration and the single-instance guard.
package platform

import "strings"

// sanitizeName turns an app name into a filesystem/registry friendly slug.
func sanitizeName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		name = "tomatick"
	}
	return strings.ReplaceAll(name, " ", "-")
}
