package domain

import (
	"path"
	"regexp"
	"strings"
)

var (
	cssURLPattern = regexp.MustCompile(`url\(([^\)]+)\)`)
	schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)
)

// RewriteURLs rewrites every relative url(...) reference in css so it is absolute,
// resolved against the directory of sourcePath. sourcePath is the served URL of the
// stylesheet, e.g. "/static/app/css/main.less". Absolute references are kept as
// they are. Every rewritten reference is single quoted.
func RewriteURLs(css, sourcePath string) string {
	origin, sourcePath := splitOrigin(sourcePath)
	sourceDir := path.Dir(sourcePath)
	return cssURLPattern.ReplaceAllStringFunc(css, func(match string) string {
		u := cssURLPattern.FindStringSubmatch(match)[1]
		u = strings.Trim(u, " '\"")
		if !isAbsoluteURL(u) {
			u = origin + path.Clean(sourceDir+"/"+u)
		}
		return "url('" + u + "')"
	})
}

func isAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "/") || schemePattern.MatchString(u)
}

// SourceURL joins the static URL and a logical stylesheet path. The static URL may
// carry a scheme and host.
func SourceURL(staticURL, logical string) string {
	origin, p := splitOrigin(staticURL)
	return origin + path.Join(p, logical)
}

// splitOrigin separates "scheme://host" from the path of u. Path-only values
// return an empty origin.
func splitOrigin(u string) (string, string) {
	i := strings.Index(u, "://")
	if i < 0 {
		return "", u
	}
	slash := strings.IndexByte(u[i+3:], '/')
	if slash < 0 {
		return u, "/"
	}
	return u[:i+3+slash], u[i+3+slash:]
}
