package ext

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"snaptikbot/config"
	"snaptikbot/enums"
	"snaptikbot/models"
	"snaptikbot/util"
	"snaptikbot/util/networking"
)

// Classify maps a host to the platform of the first resolver in List
// owning it. Matching is case-sensitive, net/url keeps the host as
// typed so TIKTOK.COM is rejected.
func Classify(u *url.URL) (enums.Platform, error) {
	host := u.Hostname()
	if host == "" {
		return "", util.ErrNoHost
	}
	for _, resolver := range List {
		if matchesHost(resolver, host) {
			return resolver.Platform, nil
		}
	}
	return "", util.ErrUnsupportedLink
}

// matchesHost treats "tiktok.com" as a plain suffix and ".x.com"
// as the domain itself or any of its subdomains.
func matchesHost(resolver *models.Resolver, host string) bool {
	for _, pattern := range resolver.Host {
		if domain, ok := strings.CutPrefix(pattern, "."); ok {
			if host == domain || strings.HasSuffix(host, pattern) {
				return true
			}
			continue
		}
		if strings.HasSuffix(host, pattern) {
			return true
		}
	}
	return false
}

func ByPlatform(platform enums.Platform) *models.Resolver {
	for _, resolver := range List {
		if resolver.Platform == platform {
			return resolver
		}
	}
	return nil
}

// ByURL classifies u and returns its resolver,
// resolvers disabled in resolvers.yaml count as unsupported.
func ByURL(u *url.URL) (*models.Resolver, error) {
	platform, err := Classify(u)
	if err != nil {
		return nil, err
	}
	resolver := ByPlatform(platform)
	if resolver == nil || config.IsResolverDisabled(resolver.CodeName) {
		return nil, util.ErrUnsupportedLink
	}
	return resolver, nil
}

func Resolve(
	ctx context.Context,
	resolver *models.Resolver,
	contentURL string,
	client models.HTTPClient,
) (*url.URL, error) {
	resolveCtx := &models.ResolveContext{
		Context:    ctx,
		ContentURL: contentURL,
		Client:     networking.GetResolverHTTPClient(resolver, client),
	}
	resolved, err := resolver.Run(resolveCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", util.ErrResolverFailed, resolver.CodeName, err)
	}
	if resolved == nil {
		return nil, fmt.Errorf("%w: %s returned no URL", util.ErrResolverFailed, resolver.CodeName)
	}
	return resolved, nil
}
