package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultFetchTimeout  = 20 * time.Second
	DefaultMaxImageBytes = 20 * 1024 * 1024
	acceptEncoding       = "gzip, br, zstd, deflate"
)

var ErrNotAnImage = errors.New("remote resource is not an image")

type Image struct {
	Data     []byte
	MIMEType string
}

//go:generate mockery --name=ImageFetcher --dir=. --output=./mocks --filename=image_fetcher_mock.go --case=underscore
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (*Image, error)
}

type ImageFetcherOption func(*fasthttpImageFetcher)

func WithFetchTimeout(timeout time.Duration) ImageFetcherOption {
	return func(f *fasthttpImageFetcher) {
		f.timeout = timeout
	}
}

func WithMaxImageBytes(max int) ImageFetcherOption {
	return func(f *fasthttpImageFetcher) {
		f.maxBytes = max
	}
}

func WithDialer(dial fasthttp.DialFunc) ImageFetcherOption {
	return func(f *fasthttpImageFetcher) {
		f.client.Dial = dial
	}
}

type fasthttpImageFetcher struct {
	client   *fasthttp.Client
	timeout  time.Duration
	maxBytes int
}

// NewImageFetcher downloads asset images for providers that only accept inline bytes.
func NewImageFetcher(opts ...ImageFetcherOption) ImageFetcher {
	f := &fasthttpImageFetcher{
		client: &fasthttp.Client{
			Name:                "TrustTag",
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: 30 * time.Second,
			ReadBufferSize:      16 * 1024,
		},
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxImageBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client.MaxResponseBodySize = f.maxBytes
	return f
}

func (f *fasthttpImageFetcher) Fetch(ctx context.Context, url string) (*Image, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "image/*")
	req.Header.Set("Accept-Encoding", acceptEncoding)

	deadline := time.Now().Add(f.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.client.DoDeadline(req, resp, deadline); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("fetch image: %w", context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		return nil, fmt.Errorf("fetch image: unexpected status %d", status)
	}

	// Body() aliases the pooled response buffer.
	body := append([]byte(nil), resp.Body()...)
	body, _, err := DecodeBody(string(resp.Header.Peek(fasthttp.HeaderContentEncoding)), body, int64(f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	mimeType := strings.TrimSpace(strings.Split(string(resp.Header.ContentType()), ";")[0])
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(body)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, mimeType)
	}

	return &Image{Data: body, MIMEType: mimeType}, nil
}
