// Package launchers starts games on their distribution platform: Steam,
// a bare executable, or a web browser.
package launchers

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Browser selects which browser a web game is opened in.
type Browser string

const (
	DefaultBrowser Browser = "default"
	Chrome         Browser = "chrome"
	Firefox        Browser = "firefox"
)

// Target carries the platform-specific launch parameters. Only the fields
// for the selected platform are read.
type Target struct {
	AppID          string
	AppArgs        []string
	ExecutablePath string
	URL            string
	Browser        Browser
}

// Launcher starts a game on one platform.
type Launcher interface {
	Launch(t Target) error
}

// ForPlatform returns the launcher for a platform identifier
// (one of "steam", "executable", "web_browser").
func ForPlatform(platform string) (Launcher, error) {
	switch platform {
	case "steam":
		return steamLauncher{}, nil
	case "executable":
		return executableLauncher{}, nil
	case "web_browser":
		return webBrowserLauncher{}, nil
	default:
		return nil, fmt.Errorf("unknown game platform %q", platform)
	}
}

type steamLauncher struct{}

func (steamLauncher) Launch(t Target) error {
	if t.AppID == "" {
		return fmt.Errorf("steam launch requires an app id")
	}
	uri := fmt.Sprintf("steam://run/%s", t.AppID)
	for _, arg := range t.AppArgs {
		uri += "/" + arg
	}
	if err := openURI(uri); err != nil {
		return fmt.Errorf("launch steam app %s: %w", t.AppID, err)
	}
	return nil
}

type executableLauncher struct{}

func (executableLauncher) Launch(t Target) error {
	if t.ExecutablePath == "" {
		return fmt.Errorf("executable launch requires an executable path")
	}
	cmd := exec.Command(t.ExecutablePath, t.AppArgs...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", t.ExecutablePath, err)
	}
	// The game owns its own lifetime; the CLI does not wait on it.
	go func() { _ = cmd.Wait() }()
	return nil
}

type webBrowserLauncher struct{}

func (webBrowserLauncher) Launch(t Target) error {
	if t.URL == "" {
		return fmt.Errorf("web browser launch requires a url")
	}
	if t.Browser != "" && t.Browser != DefaultBrowser {
		cmd := exec.Command(string(t.Browser), t.URL)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("open %s in %s: %w", t.URL, t.Browser, err)
		}
		go func() { _ = cmd.Wait() }()
		return nil
	}
	if err := openURI(t.URL); err != nil {
		return fmt.Errorf("open %s: %w", t.URL, err)
	}
	return nil
}

// openURI hands a URI to the OS default handler.
func openURI(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		cmd = exec.Command("xdg-open", uri)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
