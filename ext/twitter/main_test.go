package twitter_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"snaptikbot/ext/twitter"
	"snaptikbot/models"
	"snaptikbot/util/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endpoint = "https://savetwitter.net/api/ajaxSearch"

func run(t *testing.T, body string) (*url.URL, *fixture.Transport, error) {
	t.Helper()
	transport := fixture.NewTransport().
		Add(http.MethodPost, endpoint, &fixture.Response{Body: body})
	videoURL, err := twitter.Resolver.Run(&models.ResolveContext{
		Context:    context.Background(),
		ContentURL: "https://twitter.com/x/status/1/",
		Client:     transport.Client(),
	})
	return videoURL, transport, err
}

func TestResolver_JSONEnvelope(t *testing.T) {
	videoURL, transport, err := run(t,
		`{"status":"ok","data":"<div class=\"tw-right\"><a href=\"https://cdn.example/v.mp4\">Download MP4</a></div>"}`,
	)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/v.mp4", videoURL.String())

	requests := transport.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "https://savetwitter.net", requests[0].Header.Get("Referer"))
	assert.Contains(t, requests[0].Header.Get("User-Agent"), "Firefox")

	form, err := url.ParseQuery(requests[0].Body)
	require.NoError(t, err)
	assert.Equal(t, "https://twitter.com/x/status/1/", form.Get("q"))
	assert.Equal(t, "en", form.Get("lang"))
}

func TestResolver_RawHTML(t *testing.T) {
	videoURL, _, err := run(t, `<div><a class="btn" href="https://dl.snapcdn.app/get?token=abc">MP4 720p</a></div>`)
	require.NoError(t, err)
	assert.Equal(t, "https://dl.snapcdn.app/get?token=abc", videoURL.String())
}

func TestResolver_Errors(t *testing.T) {
	_, _, err := run(t, `{"status":"error","mess":"no video"}`)
	assert.ErrorIs(t, err, twitter.ErrDataNotFound)

	_, _, err = run(t, `{"status":"ok","data":"<p>no media</p>"}`)
	assert.ErrorIs(t, err, twitter.ErrDownloadLinkNotFound)
}
