package snap

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"snaptikbot/enums"
	"snaptikbot/models"
	"snaptikbot/util"
)

// snaptik and snapinsta share the same backend, they only
// differ in the endpoint and in whether a form token is needed

const boundary = "----WebKitFormBoundary214sQgEtL6ZBo4uE"

type Site struct {
	Endpoint    string
	Referer     string
	LandingPage string
	NeedsToken  bool
}

var TikTokSite = &Site{
	Endpoint:    "https://snaptik.app/abc2.php",
	Referer:     "https://snaptik.app/",
	LandingPage: "https://snaptik.app/en",
	NeedsToken:  true,
}

var InstagramSite = &Site{
	Endpoint: "https://snapinsta.app/action2.php",
	Referer:  "https://snapinsta.app/",
}

var TikTokResolver = &models.Resolver{
	Name:     "TikTok",
	CodeName: "tiktok",
	Platform: enums.PlatformTikTok,
	Host:     []string{"tiktok.com"},

	Run: TikTokSite.Resolve,
}

var InstagramResolver = &models.Resolver{
	Name:     "Instagram",
	CodeName: "instagram",
	Platform: enums.PlatformInstagram,
	Host:     []string{"instagram.com"},

	Run: InstagramSite.Resolve,
}

func (site *Site) Resolve(ctx *models.ResolveContext) (*url.URL, error) {
	token, err := site.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	body := BuildMultipartBody(ctx.ContentURL, token)

	req, err := http.NewRequestWithContext(
		ctx.Context,
		http.MethodPost,
		site.Endpoint,
		strings.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.ContentLength = int64(len(body))
	req.Header.Set("Referer", site.Referer)
	req.Header.Set("User-Agent", util.ChromeUA)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)

	encoded, err := fetchBody(ctx.Client, req)
	if err != nil {
		return nil, err
	}
	return ExtractVideoURL(encoded)
}

func (site *Site) GetToken(ctx *models.ResolveContext) (string, error) {
	if !site.NeedsToken {
		return "", nil
	}
	req, err := http.NewRequestWithContext(
		ctx.Context,
		http.MethodGet,
		site.LandingPage,
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", util.ChromeUA)

	page, err := fetchBody(ctx.Client, req)
	if err != nil {
		return "", err
	}
	matches := tokenPattern.FindStringSubmatch(page)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: %s", ErrTokenNotFound, util.BodyFragment(page))
	}
	return matches[1], nil
}

func fetchBody(client models.HTTPClient, req *http.Request) (string, error) {
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"failed to get response: %s: %s",
			resp.Status, util.BodyFragment(string(body)),
		)
	}
	return string(body), nil
}
