package shorts

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

// shortsmate.com hands out direct googlevideo links for shorts,
// it only needs a session cookie and the csrf token of its form

const (
	homeURL     = "https://shortsmate.com/en/"
	downloadURL = "https://shortsmate.com/en/download"
)

var Resolver = &models.Resolver{
	Name:     "YouTube Shorts",
	CodeName: "shorts",
	Platform: enums.PlatformShorts,
	Host:     []string{"youtube.com"},

	Run: func(ctx *models.ResolveContext) (*url.URL, error) {
		auth, err := GetAuthData(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get auth data: %w", err)
		}
		page, err := GetDownloadPage(ctx, auth)
		if err != nil {
			return nil, err
		}
		mediaURL, err := GetMediaURL(page)
		if err != nil {
			return nil, err
		}
		return url.Parse(mediaURL)
	},
}

func GetAuthData(ctx *models.ResolveContext) (*AuthData, error) {
	req, err := http.NewRequestWithContext(ctx.Context, http.MethodGet, homeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", util.ChromeUA)

	resp, err := ctx.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	cookie, err := GetCookie(resp.Header)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	csrf, err := GetCSRF(string(body))
	if err != nil {
		return nil, err
	}
	return &AuthData{CSRF: csrf, Cookie: cookie}, nil
}

func GetDownloadPage(ctx *models.ResolveContext, auth *AuthData) (string, error) {
	form := url.Values{
		"csrf_token": {auth.CSRF},
		"url":        {ctx.ContentURL},
	}
	req, err := http.NewRequestWithContext(
		ctx.Context,
		http.MethodPost,
		downloadURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", util.ChromeUA)
	req.Header.Set("Referer", downloadURL)
	req.Header.Set("Cookie", auth.Cookie)

	resp, err := ctx.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
