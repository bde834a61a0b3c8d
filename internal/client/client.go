package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/profilechecker/internal/domain"
)

// maxBodySize caps how much of a user object is read. Real ones are a few kilobytes.
const maxBodySize = 1 << 20

var ErrNotFound = errors.New("account not found")

// StatusError is returned when the API answers with a status that is neither a success nor 404.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %s", e.Status)
}

// HttpClient fetches user objects from the GitHub REST API. Requests are unauthenticated.
type HttpClient struct {
	client    *http.Client
	base      *url.URL
	userAgent string
}

func New(client *http.Client, base *url.URL, userAgent string) *HttpClient {
	return &HttpClient{
		client:    client,
		base:      base,
		userAgent: userAgent,
	}
}

// UserURL returns the address of the user object named by identifier. The identifier is kept verbatim but
// escaped into a single path segment, so names containing '/', '?' or '#' cannot address another resource.
func (c *HttpClient) UserURL(identifier string) *url.URL {
	u := c.base.JoinPath("users")
	dir := "/" + strings.Trim(u.EscapedPath(), "/")
	u.Path = "/" + strings.Trim(u.Path, "/") + "/" + identifier
	u.RawPath = dir + "/" + url.PathEscape(identifier)
	return u
}

// User fetches the account named by identifier. It returns ErrNotFound on 404 and a *StatusError for any other
// non 2xx status; every other error means the exchange itself could not be completed.
func (c *HttpClient) User(ctx context.Context, identifier string) (user domain.UserRecord, err error) {
	res, err := c.Dereference(ctx, c.UserURL(identifier))
	if err != nil {
		return
	}
	defer res.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(res.Body, maxBodySize))
	if err = decoder.Decode(&user); err != nil {
		err = fmt.Errorf("response body unmarshaling error: %w", err)
	}
	return
}

// Dereference performs a GET request on iri. On success the caller must close the response body; otherwise the
// body is already drained and closed.
func (c *HttpClient) Dereference(ctx context.Context, iri *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iri.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", iri.Redacted(), err)
	}

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return res, nil
	case res.StatusCode == http.StatusNotFound:
		err = ErrNotFound
	default:
		err = &StatusError{Code: res.StatusCode, Status: res.Status}
	}

	content, readErr := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	event := log.Debug().Str("url", iri.String()).Int("code", res.StatusCode)
	if readErr != nil {
		event.AnErr("read error", readErr)
	}
	event.Bytes("response", content).Msg("fetch error")
	res.Body.Close()

	return nil, err
}
