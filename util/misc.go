package util

import (
	"net/url"
	"strings"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

// RemoveQueryParam drops every pair named key from the query,
// keeping the remaining pairs in their original order and encoding.
func RemoveQueryParam(u *url.URL, key string) {
	if u.RawQuery == "" {
		return
	}
	pairs := strings.Split(u.RawQuery, "&")
	kept := pairs[:0]
	for _, pair := range pairs {
		name, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(name); err == nil {
			name = unescaped
		}
		if name == key {
			continue
		}
		kept = append(kept, pair)
	}
	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
}

// NormalizeURL makes sure the path ends with a slash.
func NormalizeURL(u *url.URL) {
	if strings.HasSuffix(u.Path, "/") {
		return
	}
	u.Path += "/"
	if u.RawPath != "" {
		u.RawPath += "/"
	}
}

func GetMessageFileID(msg *gotgbot.Message) string {
	if msg == nil {
		return ""
	}
	switch {
	case msg.Video != nil:
		return msg.Video.FileId
	case msg.Animation != nil:
		return msg.Animation.FileId
	case msg.Document != nil:
		return msg.Document.FileId
	default:
		return ""
	}
}
