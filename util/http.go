package util

const (
	ChromeUA  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
	FirefoxUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:121.0) Gecko/20100101 Firefox/121.0"
)

const maxFragmentLength = 512

// BodyFragment trims an upstream body so it can be attached to an error.
func BodyFragment(body string) string {
	runes := []rune(body)
	if len(runes) <= maxFragmentLength {
		return body
	}
	return string(runes[:maxFragmentLength]) + "..."
}
