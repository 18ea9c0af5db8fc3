package shorts_test

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"testing"

	"snaptikbot/ext/shorts"
	"snaptikbot/models"
	"snaptikbot/util/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	homePage = "<html>\n" +
		`<input type="hidden" name="csrf_token" value="csrf-1" />` +
		"\n</html>"
	resultPage = "<script>\n" +
		`set_listener("result", [{"format_note":"360p","url":"https://rr1.googlevideo.com/360"},` +
		`{"format_note":"1080p","url":"https://rr1.googlevideo.com/1080?dl=1"}],[], "a");` +
		"\n</script>"
)

func TestResolver(t *testing.T) {
	transport := fixture.NewTransport().
		Add(http.MethodGet, "https://shortsmate.com/en/", &fixture.Response{
			Header: http.Header{"Set-Cookie": {"session=s3ss10n; Path=/; HttpOnly"}},
			Body:   homePage,
		}).
		Add(http.MethodPost, "https://shortsmate.com/en/download", &fixture.Response{Body: resultPage})

	mediaURL, err := shorts.Resolver.Run(&models.ResolveContext{
		Context:    context.Background(),
		ContentURL: "https://www.youtube.com/shorts/abc/",
		Client:     transport.Client(),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://rr1.googlevideo.com/1080?dl=1", mediaURL.String())

	requests := transport.Requests()
	require.Len(t, requests, 2)
	post := requests[1]
	assert.Equal(t, "session=s3ss10n;", post.Header.Get("Cookie"))
	assert.Equal(t, "https://shortsmate.com/en/download", post.Header.Get("Referer"))
	assert.Contains(t, post.Header.Get("User-Agent"), "Chrome")

	form, err := url.ParseQuery(post.Body)
	require.NoError(t, err)
	assert.Equal(t, "csrf-1", form.Get("csrf_token"))
	assert.Equal(t, "https://www.youtube.com/shorts/abc/", form.Get("url"))
}

func TestResolver_MissingSession(t *testing.T) {
	transport := fixture.NewTransport().
		Add(http.MethodGet, "https://shortsmate.com/en/", &fixture.Response{Body: homePage})

	_, err := shorts.Resolver.Run(&models.ResolveContext{
		Context:    context.Background(),
		ContentURL: "https://www.youtube.com/shorts/abc/",
		Client:     transport.Client(),
	})
	assert.ErrorIs(t, err, shorts.ErrSessionNotFound)
	assert.Len(t, transport.Requests(), 1)
}

func TestResolver_Live(t *testing.T) {
	if os.Getenv("LIVE_TESTS") == "" {
		t.Skip("set LIVE_TESTS=1 to hit shortsmate.com")
	}
	mediaURL, err := shorts.Resolver.Run(&models.ResolveContext{
		Context:    context.Background(),
		ContentURL: "https://www.youtube.com/shorts/tPEE9ZwTmy0/",
		Client:     http.DefaultClient,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, mediaURL.Host)
}
