package behavior

import (
	"embed"
	"io/fs"
	"net/url"
	"strings"
)

// RuntimeFile is the name of the runtime inside RuntimeFS
const RuntimeFile = "interactive.js"

//go:embed assets/interactive.js
var embeddedRuntime embed.FS

// RuntimeFS exposes the browser runtime as RuntimeFile
func RuntimeFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntime, "assets")
	if err != nil {
		return embeddedRuntime
	}
	return sub
}

// Runtime returns the runtime script
func Runtime() ([]byte, error) {
	return fs.ReadFile(RuntimeFS(), RuntimeFile)
}

// RuntimePath returns the site-relative path the runtime must be served at
// for src to resolve, whatever its file name. It reports false when src
// points off-site, in which case the runtime is served at the default path.
func RuntimePath(src string) (string, bool) {
	if src == "" {
		src = DefaultRuntimeSrc
	}
	u, err := url.Parse(src)
	if err != nil || u.Scheme != "" || u.Host != "" || !strings.HasPrefix(u.Path, "/") || u.Path == "/" {
		return DefaultRuntimeSrc, false
	}
	return u.Path, true
}
