package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited routes are never throttled.
var unlimited = map[string]bool{
	"GET /health": true,
}

// MatchEndpoint returns the config for path and method, or nil when only the
// default applies. Exact paths win over prefixes.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] || method == http.MethodOptions {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
