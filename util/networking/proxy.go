package networking

import (
	"net/http"
	"net/url"

	"snaptikbot/models"

	"golang.org/x/net/http/httpproxy"
)

// hasProxy reports whether resolvers.yaml routes the resolver
// through a forward proxy.
func hasProxy(cfg *models.ResolverConfig) bool {
	return cfg.HTTPProxy != "" || cfg.HTTPSProxy != ""
}

// newProxyFunc picks the proxy of a resolver request by scheme.
// no_proxy follows the NO_PROXY conventions: "snaptik.app" also
// covers its subdomains, "*.rapidcdn.app" only the subdomains.
func newProxyFunc(cfg *models.ResolverConfig) func(*http.Request) (*url.URL, error) {
	proxyFor := (&httpproxy.Config{
		HTTPProxy:  cfg.HTTPProxy,
		HTTPSProxy: cfg.HTTPSProxy,
		NoProxy:    cfg.NoProxy,
	}).ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return proxyFor(req.URL)
	}
}
