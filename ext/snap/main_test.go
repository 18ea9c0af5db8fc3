package snap_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"snaptikbot/ext/snap"
	"snaptikbot/models"
	"snaptikbot/util/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const landingPage = `<form><input name="token" value="c2VjcmV0" type="hidden"><input name="url"></form>`

func resolveCtx(transport *fixture.Transport, contentURL string) *models.ResolveContext {
	return &models.ResolveContext{
		Context:    context.Background(),
		ContentURL: contentURL,
		Client:     transport.Client(),
	}
}

func TestTikTokResolver(t *testing.T) {
	transport := fixture.NewTransport().
		Add(http.MethodGet, "https://snaptik.app/en", &fixture.Response{Body: landingPage}).
		Add(http.MethodPost, "https://snaptik.app/abc2.php", &fixture.Response{
			Body: fixture.SnapResponse(`<a href=\"https://snaptik.app/file.php?token=1&dl=1\">`),
		})

	videoURL, err := snap.TikTokResolver.Run(resolveCtx(transport, "https://vm.tiktok.com/ZABC/"))
	require.NoError(t, err)
	assert.Equal(t, "https://snaptik.app/file.php?token=1&dl=1", videoURL.String())

	requests := transport.Requests()
	require.Len(t, requests, 2)
	post := requests[1]
	assert.Equal(t, "https://snaptik.app/", post.Header.Get("Referer"))
	assert.Contains(t, post.Header.Get("User-Agent"), "Chrome")
	assert.Equal(t,
		"multipart/form-data; boundary=----WebKitFormBoundary214sQgEtL6ZBo4uE",
		post.Header.Get("Content-Type"),
	)
	assert.Equal(t, int64(len(post.Body)), post.Length)
	assert.Contains(t, post.Body, "\r\nc2VjcmV0\r\n")
	assert.Contains(t, post.Body, "\r\nhttps://vm.tiktok.com/ZABC/\r\n")
}

func TestInstagramResolver_SkipsToken(t *testing.T) {
	transport := fixture.NewTransport().
		Add(http.MethodPost, "https://snapinsta.app/action2.php", &fixture.Response{
			Body: fixture.SnapResponse(`<a href="https://snapinsta.app/dl.php?f=abc">`),
		})

	videoURL, err := snap.InstagramResolver.Run(resolveCtx(transport, "https://www.instagram.com/reel/C1/"))
	require.NoError(t, err)
	assert.Equal(t, "https://snapinsta.app/dl.php?f=abc", videoURL.String())

	requests := transport.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "https://snapinsta.app/", requests[0].Header.Get("Referer"))
	assert.Contains(t, requests[0].Body, "name=\"token\"\r\n\r\n\r\n")
	assert.Equal(t, int64(len(requests[0].Body)), requests[0].Length)
}

func TestTikTokResolver_MissingToken(t *testing.T) {
	transport := fixture.NewTransport().
		Add(http.MethodGet, "https://snaptik.app/en", &fixture.Response{Body: "<html>maintenance</html>"})

	_, err := snap.TikTokResolver.Run(resolveCtx(transport, "https://www.tiktok.com/@a/video/1/"))
	assert.ErrorIs(t, err, snap.ErrTokenNotFound)
	assert.Len(t, transport.Requests(), 1)
}

func TestTikTokResolver_UpstreamError(t *testing.T) {
	transport := fixture.NewTransport().
		Add(http.MethodGet, "https://snaptik.app/en", &fixture.Response{
			Status: http.StatusServiceUnavailable,
			Body:   "try later",
		})

	_, err := snap.TikTokResolver.Run(resolveCtx(transport, "https://www.tiktok.com/@a/video/1/"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "503"))
}
