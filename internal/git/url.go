package git

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ClonePath infers the checkout directory git will create for rawURL.
// Only github.com URLs are inferred; for other hosts it returns "" and the
// caller is expected to carry on without a path. Malformed URLs error.
func ClonePath(rawURL string) (string, error) {
	ep, err := transport.NewEndpoint(rawURL)
	if err != nil {
		return "", err
	}

	if ep.Host != "github.com" {
		return "", nil
	}

	urlPath := ep.Path
	idx := strings.LastIndex(urlPath, "/")
	if idx < 0 {
		return "", nil
	}
	name := urlPath[idx+1:]
	for strings.HasSuffix(name, ".git") {
		name = strings.TrimSuffix(name, ".git")
	}
	return name, nil
}
