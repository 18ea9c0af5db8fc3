package twitter

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

const (
	apiHostname = "savetwitter.net"
	apiEndpoint = "https://" + apiHostname + "/api/ajaxSearch"
	referer     = "https://" + apiHostname
)

var Resolver = &models.Resolver{
	Name:     "Twitter",
	CodeName: "twitter",
	Platform: enums.PlatformTwitter,
	Host:     []string{"twitter.com", ".x.com"},

	Run: func(ctx *models.ResolveContext) (*url.URL, error) {
		body, err := Search(ctx)
		if err != nil {
			return nil, err
		}
		return ExtractDownloadURL(body)
	},
}

func Search(ctx *models.ResolveContext) ([]byte, error) {
	form := url.Values{
		"q":    {ctx.ContentURL},
		"lang": {"en"},
	}
	req, err := http.NewRequestWithContext(
		ctx.Context,
		http.MethodPost,
		apiEndpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("User-Agent", util.FirefoxUA)
	req.Header.Set("Referer", referer)

	resp, err := ctx.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get response: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	return body, nil
}
