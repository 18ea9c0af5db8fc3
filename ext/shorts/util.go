package shorts

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"

	"snaptikbot/util"

	"github.com/bytedance/sonic"
)

var (
	csrfPattern    = regexp.MustCompile(`<input.+?name="csrf_token".+?value="(.+)".+?>`)
	jsonPattern    = regexp.MustCompile(`(?s)set_listener\(.+?(\[.+\]).+?"a"`)
	sessionPattern = regexp.MustCompile(`(session=.+?;)`)
)

var formatRank = map[string]int{
	"1080p": 0,
	"720p":  1,
}

func rankOf(media *Media) int {
	if media == nil {
		return len(formatRank) + 1
	}
	if rank, ok := formatRank[media.FormatNote]; ok {
		return rank
	}
	return len(formatRank)
}

func GetCookie(header http.Header) (string, error) {
	for _, value := range header.Values("Set-Cookie") {
		if matches := sessionPattern.FindStringSubmatch(value); len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", ErrSessionNotFound
}

func GetCSRF(page string) (string, error) {
	matches := csrfPattern.FindStringSubmatch(page)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: %s", ErrCSRFNotFound, util.BodyFragment(page))
	}
	return matches[1], nil
}

func ParseMediaList(page string) (MediaList, error) {
	matches := jsonPattern.FindStringSubmatch(page)
	if len(matches) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrJSONNotFound, util.BodyFragment(page))
	}
	var list MediaList
	if err := sonic.UnmarshalString("["+matches[1]+"]", &list); err != nil {
		return nil, fmt.Errorf("failed to decode media list: %w", err)
	}
	return list, nil
}

// GetMediaURL prefers 1080p, then 720p, then whatever comes first.
func GetMediaURL(page string) (string, error) {
	list, err := ParseMediaList(page)
	if err != nil {
		return "", err
	}
	if len(list) == 0 || len(list[0]) == 0 {
		return "", ErrMediaURLNotFound
	}
	formats := list[0]
	sort.SliceStable(formats, func(i, j int) bool {
		return rankOf(formats[i]) < rankOf(formats[j])
	})
	if formats[0] == nil || formats[0].URL == "" {
		return "", ErrMediaURLNotFound
	}
	return formats[0].URL, nil
}
