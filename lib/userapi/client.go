package userapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"userapi/lib/restyutil"
	"userapi/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://jsonplaceholder.typicode.com/users"

type Options struct {
	// BaseUrl is the users collection, ex. https://host/users. Post comments
	// are resolved against its host root.
	BaseUrl string
	// OutputDir is where user.json, updated_user.json and comment dumps are
	// written. Defaults to the cwd.
	OutputDir string
	// AttachRequestBody makes create and update send their payload. By
	// default the payload is only written to disk.
	AttachRequestBody bool
	// Stdout receives the human-readable status lines. Defaults to os.Stdout.
	Stdout io.Writer
	// InstrumentOutput receives full request/response dumps while debug
	// logging is enabled, it may be nil.
	InstrumentOutput restyutil.InstrumentOutput
}

type Client struct {
	http              *resty.Client
	baseUrl           string
	outputDir         string
	attachRequestBody bool
	out               io.Writer
}

func NewClient(opts Options) (*Client, error) {
	baseUrl := strings.TrimRight(opts.BaseUrl, "/")
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	parsed, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", baseUrl)
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	client := resty.New()
	client.SetHeader("user-agent", "userapi/1.0")
	client.SetLogger(telemetry.RestyLogger{})
	telemetry.InstrumentResty(client, "userapi/http")
	restyutil.InstrumentClient(client, opts.InstrumentOutput)

	return &Client{
		http:              client,
		baseUrl:           baseUrl,
		outputDir:         outputDir,
		attachRequestBody: opts.AttachRequestBody,
		out:               out,
	}, nil
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

func (c *Client) OutputDir() string {
	return c.outputDir
}

// Request describes a single call. A nil Body sends no payload.
type Request struct {
	Method      string
	URL         string
	Body        []byte
	ContentType string
}

// Do performs `req`. For a 2xx status it returns the response body exactly
// as received and ok = true. Any other status prints a diagnostic with the
// status code and returns ok = false with a nil error. Only transport
// faults are returned as errors.
func (c *Client) Do(ctx context.Context, req Request) (body string, ok bool, err error) {
	r := c.http.R().SetContext(ctx)
	if req.ContentType != "" {
		r.SetHeader("Content-Type", req.ContentType)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	res, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return "", false, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	if !res.IsSuccess() {
		fmt.Fprintf(c.out, "Failed to get response. Status code: %d\n", res.StatusCode())
		return "", false, nil
	}
	// res.String() trims whitespace, the raw bytes are what was received
	return string(res.Body()), true, nil
}

func (c *Client) get(ctx context.Context, link string) (string, bool, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: link})
}

func (c *Client) userUrl(userId int) string {
	return c.baseUrl + "/" + strconv.Itoa(userId)
}

// rootUrl resolves an absolute path against the base url's host.
func (c *Client) rootUrl(path string) (string, error) {
	base, err := url.Parse(c.baseUrl)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(&url.URL{Path: path}).String(), nil
}

func (c *Client) writeFile(name string, contents []byte) (string, error) {
	path := filepath.Join(c.outputDir, name)
	err := os.WriteFile(path, contents, 0644)
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
