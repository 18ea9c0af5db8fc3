package networking

import (
	"net"
	"net/http"
	"sync"
	"time"

	"snaptikbot/config"
	"snaptikbot/models"
)

var (
	defaultClient     *http.Client
	defaultClientOnce sync.Once
	resolverClients   sync.Map
)

// GetDefaultHTTPClient returns the client shared by webhook invocations.
func GetDefaultHTTPClient() *http.Client {
	defaultClientOnce.Do(func() {
		timeout := config.Env.HTTPTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		defaultClient = &http.Client{
			Transport: GetBaseTransport(),
			Timeout:   timeout,
		}
	})
	return defaultClient
}

func GetBaseTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   100,
		ResponseHeaderTimeout: 10 * time.Second,
	}
}

// GetResolverHTTPClient returns the client a resolver should use.
// Without a resolvers.yaml entry this is the invocation client.
func GetResolverHTTPClient(
	resolver *models.Resolver,
	fallback models.HTTPClient,
) models.HTTPClient {
	if client, ok := resolverClients.Load(resolver.CodeName); ok {
		return client.(models.HTTPClient)
	}
	cfg := config.GetResolverConfig(resolver.CodeName)
	if cfg == nil || (cfg.EdgeProxyURL == "" && !hasProxy(cfg)) {
		return fallback
	}

	var client models.HTTPClient
	if cfg.EdgeProxyURL != "" {
		client = NewEdgeProxyClient(cfg.EdgeProxyURL)
	} else {
		client = NewClientFromConfig(cfg)
	}
	actual, _ := resolverClients.LoadOrStore(resolver.CodeName, client)
	return actual.(models.HTTPClient)
}

func NewClientFromConfig(cfg *models.ResolverConfig) *http.Client {
	transport := GetBaseTransport()
	transport.Proxy = newProxyFunc(cfg)
	return &http.Client{
		Transport: transport,
		Timeout:   GetDefaultHTTPClient().Timeout,
	}
}
