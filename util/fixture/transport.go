// Package fixture replays canned upstream responses so resolvers
// can be exercised without reaching the scraping targets.
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

type Response struct {
	Status int
	Header http.Header
	Body   string
}

// Request is a recorded outbound request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
	Length int64
}

type Transport struct {
	mu        sync.Mutex
	responses map[string]*Response
	requests  []*Request
}

func NewTransport() *Transport {
	return &Transport{responses: make(map[string]*Response)}
}

func (t *Transport) Add(method string, url string, resp *Response) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses[method+" "+url] = resp
	return t
}

func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t *Transport) Requests() []*Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Request(nil), t.requests...)
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
	}

	key := req.Method + " " + req.URL.String()
	t.mu.Lock()
	t.requests = append(t.requests, &Request{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   string(body),
		Length: req.ContentLength,
	})
	fixture, ok := t.responses[key]
	t.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no fixture for %s", key)
	}

	status := fixture.Status
	if status == 0 {
		status = http.StatusOK
	}
	header := fixture.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode:    status,
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		Header:        header,
		Body:          io.NopCloser(bytes.NewBufferString(fixture.Body)),
		ContentLength: int64(len(fixture.Body)),
		Request:       req,
	}, nil
}

// SnapEncode is the inverse of the snap decoder for radixes up to 10.
// Digit d is written as n[d] and every char is terminated by n[e].
func SnapEncode(plain string, n string, t int, e int) string {
	alphabet := []rune(n)
	var out strings.Builder
	for _, ch := range plain {
		digits := strconv.FormatInt(int64(ch)+int64(t), e)
		for _, digit := range digits {
			out.WriteRune(alphabet[digit-'0'])
		}
		out.WriteRune(alphabet[e])
	}
	return out.String()
}

// SnapResponse wraps an encoded payload the way the snap sites do.
func SnapResponse(plain string) string {
	const n, t, e = "abcdefghij", 7, 5
	return fmt.Sprintf(
		`<script>eval(function(h,u,n,t,e,r){}("%s",42,"%s",%d,%d,19))</script>`,
		SnapEncode(plain, n, t, e), n, t, e,
	)
}
