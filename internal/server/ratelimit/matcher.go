package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found. Patterns
// starting with "*" match by suffix (e.g. "*/suitable-jobs" matches
// "/api/candidates/{id}/suitable-jobs"); patterns ending with "/" match by
// prefix (e.g. "/api/jobs/" matches "/api/jobs/{id}"). Exact matches win.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health check endpoint is unlimited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasPrefix(config.Path, "*") {
			if strings.HasSuffix(path, config.Path[1:]) {
				return config
			}
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
