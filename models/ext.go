package models

import (
	"net/http"
	"net/url"

	"snaptikbot/enums"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Resolver struct {
	Name     string
	CodeName string
	Platform enums.Platform
	// plain host suffixes, a leading dot restricts
	// the entry to the domain and its subdomains
	Host []string

	Run func(*ResolveContext) (*url.URL, error)
}

type ResolverConfig struct {
	HTTPProxy    string `yaml:"http_proxy"`
	HTTPSProxy   string `yaml:"https_proxy"`
	NoProxy      string `yaml:"no_proxy"`
	EdgeProxyURL string `yaml:"edge_proxy_url"`

	IsDisabled bool `yaml:"disabled"`
}
