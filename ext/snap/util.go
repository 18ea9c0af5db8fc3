package snap

import (
	_ "embed"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"snaptikbot/util"
)

var (
	tokenPattern       = regexp.MustCompile(`<input name="token" value="(.+?)" .+?>`)
	decoderArgsPattern = regexp.MustCompile(`\("(.+?)",(\d+),"(.+?)",(\d+),(\d+),(\d+)\)`)
	videoURLPattern    = regexp.MustCompile(
		`href=\\?"(https://(.*?\.)?(snaptik\.app|snapinsta\.app|rapidcdn\.app)/.*?)\\?"`,
	)
)

//go:embed assets/multipart.txt
var rawMultipartTemplate string

// multipart bodies need CRLF no matter how the template was checked out
var multipartTemplate = strings.ReplaceAll(
	strings.ReplaceAll(rawMultipartTemplate, "\r\n", "\n"),
	"\n", "\r\n",
)

func BuildMultipartBody(contentURL string, token string) string {
	return strings.NewReplacer(
		"{boundary}", boundary,
		"{url}", contentURL,
		"{token}", token,
	).Replace(multipartTemplate)
}

type DecoderArgs struct {
	H string
	U int
	N string
	T int
	E int
	R int
}

func ParseDecoderArgs(body string) (*DecoderArgs, error) {
	matches := decoderArgsPattern.FindStringSubmatch(body)
	if len(matches) < 7 {
		return nil, fmt.Errorf("%w: %s", ErrDecoderArgsNotFound, util.BodyFragment(body))
	}
	numbers := make([]int, 0, 4)
	for _, group := range []string{matches[2], matches[4], matches[5], matches[6]} {
		value, err := strconv.Atoi(group)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCannotDecode, err)
		}
		numbers = append(numbers, value)
	}
	return &DecoderArgs{
		H: matches[1],
		U: numbers[0],
		N: matches[3],
		T: numbers[1],
		E: numbers[2],
		R: numbers[3],
	}, nil
}

func ExtractVideoURL(body string) (*url.URL, error) {
	args, err := ParseDecoderArgs(body)
	if err != nil {
		return nil, err
	}
	decoded, err := Decode(args.H, args.U, args.N, args.T, args.E, args.R)
	if err != nil {
		return nil, err
	}
	matches := videoURLPattern.FindStringSubmatch(decoded)
	if len(matches) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrVideoURLNotFound, util.BodyFragment(decoded))
	}
	videoURL, err := url.Parse(matches[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVideoURLNotFound, err)
	}
	return videoURL, nil
}

// Decode unpacks the obfuscated script the snap sites return.
// Each output char is a run of chars of h terminated by n[e]: the run,
// with every n[j] replaced by j, is a number in base e offset by t.
// u and r are part of the call signature but unused.
func Decode(h string, u int, n string, t int, e int, r int) (string, error) {
	hChars := []rune(h)
	nChars := []rune(n)
	if e < 2 || e > 36 || e >= len(nChars) {
		return "", fmt.Errorf("%w: invalid radix %d", ErrCannotDecode, e)
	}
	delimiter := nChars[e]

	var result strings.Builder
	result.Grow(len(hChars) / 2)

	for i := 0; i < len(hChars); i++ {
		start := i
		for i < len(hChars) && hChars[i] != delimiter {
			i++
		}
		if i >= len(hChars) {
			return "", fmt.Errorf("%w: missing delimiter at %d", ErrCannotDecode, start)
		}
		s := string(hChars[start:i])
		for j, ch := range nChars {
			s = strings.ReplaceAll(s, string(ch), strconv.Itoa(j))
		}
		value, err := strconv.ParseInt(s, e, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCannotDecode, err)
		}
		code := value - int64(t)
		if code < 0 || code > utf8.MaxRune || !utf8.ValidRune(rune(code)) {
			return "", fmt.Errorf("%w: invalid code point %d", ErrCannotDecode, code)
		}
		result.WriteRune(rune(code))
	}
	return result.String(), nil
}
