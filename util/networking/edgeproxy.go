package networking

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"snaptikbot/models"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// EdgeProxyClient sends resolver requests through an edge function.
// The target travels in the url query parameter and the function
// answers with a models.EdgeProxyResponse envelope.
type EdgeProxyClient struct {
	endpoint string
	client   *http.Client
}

func NewEdgeProxyClient(endpoint string) *EdgeProxyClient {
	return &EdgeProxyClient{
		endpoint: endpoint,
		client: &http.Client{
			Transport: GetBaseTransport(),
			Timeout:   GetDefaultHTTPClient().Timeout,
		},
	}
}

func (c *EdgeProxyClient) Do(req *http.Request) (*http.Response, error) {
	if c.endpoint == "" {
		return nil, errors.New("edge proxy url is empty")
	}
	edgeReq, err := c.wrapRequest(req)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(edgeReq)
	if err != nil {
		return nil, errors.Wrap(err, "edge proxy request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("edge proxy answered %s", resp.Status)
	}

	var envelope models.EdgeProxyResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "invalid edge proxy envelope")
	}
	return unwrapResponse(&envelope, req), nil
}

// wrapRequest keeps method, headers and body of req,
// only the destination changes.
func (c *EdgeProxyClient) wrapRequest(req *http.Request) (*http.Request, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "invalid edge proxy url")
	}
	query := endpoint.Query()
	query.Set("url", req.URL.String())
	endpoint.RawQuery = query.Encode()

	var body io.Reader
	if req.Body != nil && req.Body != http.NoBody {
		body = req.Body
	}
	edgeReq, err := http.NewRequestWithContext(req.Context(), req.Method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create edge proxy request")
	}
	edgeReq.Header = req.Header.Clone()
	edgeReq.ContentLength = req.ContentLength
	return edgeReq, nil
}

func unwrapResponse(envelope *models.EdgeProxyResponse, req *http.Request) *http.Response {
	header := make(http.Header, len(envelope.Headers)+1)
	for name, value := range envelope.Headers {
		header.Set(name, value)
	}
	// the shorts session cookie is read from Set-Cookie
	for _, cookie := range envelope.Cookies {
		header.Add("Set-Cookie", cookie)
	}
	return &http.Response{
		StatusCode:    envelope.StatusCode,
		Status:        fmt.Sprintf("%d %s", envelope.StatusCode, http.StatusText(envelope.StatusCode)),
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(envelope.Text)),
		ContentLength: int64(len(envelope.Text)),
		Request:       req,
	}
}
