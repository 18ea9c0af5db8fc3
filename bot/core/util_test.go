package core

import (
	"testing"

	"snaptikbot/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentURL(t *testing.T) {
	for text, want := range map[string]string{
		"https://vm.tiktok.com/ZABC":       "https://vm.tiktok.com/ZABC/",
		" https://vm.tiktok.com/ZABC/":     "https://vm.tiktok.com/ZABC/",
		"https://vm.tiktok.com/ZABC/\n":    "https://vm.tiktok.com/ZABC/",
		"\thttp://x.com/a/status/1?s=20  ": "http://x.com/a/status/1/?s=20",
	} {
		contentURL, err := ParseContentURL(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, contentURL.String(), text)
	}

	for _, text := range []string{"", "   ", "hello", "vm.tiktok.com/ZABC", "ftp://tiktok.com/a"} {
		_, err := ParseContentURL(text)
		assert.ErrorIs(t, err, util.ErrInvalidURL, text)
	}
}
