// Package browser opens URLs in the host's default web browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches the default browser at url and returns without waiting for
// it to exit. The spawned process is not tracked; nothing is consumed from
// the page once open.
func Open(url string) error {
	name, args := command(runtime.GOOS, url)
	return exec.Command(name, args...).Start()
}

// command selects the platform launcher for the given GOOS.
func command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", url}
	default: // "linux", "freebsd", etc.
		return "xdg-open", []string{url}
	}
}
