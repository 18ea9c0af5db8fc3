package twitter

import (
	"fmt"
	"net/url"
	"regexp"

	"snaptikbot/util"

	"github.com/tidwall/gjson"
)

var downloadLinkPattern = regexp.MustCompile(`<a.+?href=\\?"(.+?)\\?"`)

// GetFragment accepts both the JSON envelope ({"data": "<html>"})
// and a bare HTML fragment.
func GetFragment(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return string(body), nil
	}
	data := gjson.GetBytes(body, "data")
	if data.Type != gjson.String {
		return "", fmt.Errorf("%w: %s", ErrDataNotFound, util.BodyFragment(string(body)))
	}
	return data.String(), nil
}

func ExtractDownloadURL(body []byte) (*url.URL, error) {
	fragment, err := GetFragment(body)
	if err != nil {
		return nil, err
	}
	matches := downloadLinkPattern.FindStringSubmatch(fragment)
	if len(matches) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrDownloadLinkNotFound, util.BodyFragment(fragment))
	}
	downloadURL, err := url.Parse(matches[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadLinkNotFound, err)
	}
	return downloadURL, nil
}
