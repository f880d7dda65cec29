package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"

	"github.com/udecupos/udecupos-api/pkg/config"
	appErrors "github.com/udecupos/udecupos-api/pkg/errors"
)

// Client wraps HTTP access to the enrollment portal. Responses are returned
// as raw bytes; Latin-1 reinterpretation stays under the caller's control
// because the portal mixes encodings.
type Client struct {
	httpClient *http.Client
	baseURL    string
	path       string
	userAgent  string

	// now is injectable for deterministic rsrnd values in tests.
	now func() time.Time
}

// NewClient builds a portal client from configuration.
func NewClient(cfg config.PortalConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		path:       cfg.Path,
		userAgent:  cfg.UserAgent,
		now:        time.Now,
	}
}

// GetRaw fetches a portal page and returns the raw response body.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.do(req)
}

// PostForm posts an x-www-form-urlencoded payload and returns the raw body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	return c.do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPortalUnavailable.Code, appErrors.ErrPortalUnavailable.Status, appErrors.ErrPortalUnavailable.Message)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, appErrors.Wrap(
			fmt.Errorf("portal status %d", resp.StatusCode),
			appErrors.ErrPortalUnavailable.Code, appErrors.ErrPortalUnavailable.Status, appErrors.ErrPortalUnavailable.Message)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPortalUnavailable.Code, appErrors.ErrPortalUnavailable.Status, appErrors.ErrPortalUnavailable.Message)
	}
	return body, nil
}

// DecodeLatin1 interprets raw portal bytes as ISO-8859-1 text.
func DecodeLatin1(b []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(b))
}

// FetchOptions runs one ajax refresh call against the portal and extracts the
// option list of the call's target field.
func (c *Client) FetchOptions(ctx context.Context, call AjaxCall) ([]Option, error) {
	form := url.Values{}
	form.Set("rs", call.RS)
	form.Set("rst", "")
	form.Set("rsrnd", strconv.FormatInt(c.now().UnixMilli(), 10))
	for _, arg := range call.Args {
		form.Add("rsargs[]", arg)
	}

	body, err := c.PostForm(ctx, c.path, form)
	if err != nil {
		return nil, err
	}

	text, err := DecodeLatin1(body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedEnvelope.Code, appErrors.ErrMalformedEnvelope.Status, appErrors.ErrMalformedEnvelope.Message)
	}

	payload, err := DecodeEnvelope(text)
	if err != nil {
		return nil, err
	}
	return ExtractOptions(payload, call.Field)
}

// FetchPeriods scrapes the portal's entry form for the period selector. This
// is the only operation served as a plain HTML page instead of an ajax call.
func (c *Client) FetchPeriods(ctx context.Context) ([]Option, error) {
	body, err := c.GetRaw(ctx, c.path)
	if err != nil {
		return nil, err
	}

	text, err := DecodeLatin1(body)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	sel := doc.Find("#id_sc_field_id_periodosapiens")
	if sel.Length() == 0 {
		sel = doc.Find(`select[name="id_periodosapiens"]`)
	}

	var opts []Option
	sel.Find("option").Each(func(_ int, o *goquery.Selection) {
		value := strings.TrimSpace(o.AttrOr("value", ""))
		if value == "" {
			return
		}
		opts = append(opts, Option{Code: value, Text: strings.TrimSpace(o.Text())})
	})
	return opts, nil
}
