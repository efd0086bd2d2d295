// Package publisher pushes export packages to a WordPress-compatible REST
// endpoint. Publishing is always an explicit operation; generated posts stay
// drafts until requested.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Vipul251/ai-seo-blog-generator/app/export"
)

type Publisher struct {
	httpClient *http.Client
	url        string
	user       string
	password   string
	userAgent  string
}

func NewPublisher(httpClient *http.Client, url, user, password, userAgent string) *Publisher {
	return &Publisher{
		httpClient: httpClient,
		url:        url,
		user:       user,
		password:   password,
		userAgent:  userAgent,
	}
}

// Run submits the package as a JSON POST with basic authentication.
func (p *Publisher) Run(ctx context.Context, pkg export.WordPressPackage) error {
	body, err := json.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("failed to marshal publish payload: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "POST", p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", p.userAgent)
	req.SetBasicAuth(p.user, p.password)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to publish post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTP error: %d %s: %s", resp.StatusCode, resp.Status, detail)
	}

	return nil
}
