// Package open hands URLs and files to the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/model"
)

// Start opens input without waiting for the handler to exit.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// ArtworkURL resolves a banner path such as "posters/83462-1.jpg" against
// the banner directory of mirror.
func ArtworkURL(mirror *model.Mirror, path string) string {
	address := constant.RootURL
	if mirror != nil && mirror.Address != "" {
		address = mirror.Address
	}
	return strings.TrimSuffix(address, "/") + "/banners/" + strings.TrimPrefix(path, "/")
}

// Artwork opens the artwork at path in the browser.
func Artwork(mirror *model.Mirror, path string) error {
	return Start(ArtworkURL(mirror, path))
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
