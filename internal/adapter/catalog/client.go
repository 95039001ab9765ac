// Package catalog talks to the remote LMS catalog over HTTP. The remote
// exposes two read-only operations: a course listing and a per-course content
// listing. Responses are treated as partially populated; missing fields are
// defaulted by the sync service, not here.
package catalog

import (
	"context"
	"fmt"
	"time"

	"learnbyte/internal/domain"

	"github.com/go-resty/resty/v2"
)

// Client implements domain.CatalogClient against a REST catalog endpoint
// using bearer-token auth.
type Client struct {
	http *resty.Client
}

// NewClient creates a catalog client for the given base URL and access token.
func NewClient(baseURL, token string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetTimeout(30 * time.Second)

	return &Client{http: httpClient}
}

// ListCourses fetches the full remote course list.
func (c *Client) ListCourses(ctx context.Context) ([]domain.RemoteCourse, error) {
	var courses []domain.RemoteCourse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&courses).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course list: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("course list request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	return courses, nil
}

// GetCourseContents fetches the section listing of one remote course.
func (c *Client) GetCourseContents(ctx context.Context, remoteCourseID int64) ([]domain.RemoteSection, error) {
	var sections []domain.RemoteSection
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&sections).
		Get(fmt.Sprintf("/courses/%d/contents", remoteCourseID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contents for course %d: %w", remoteCourseID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("course contents request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	return sections, nil
}

var _ domain.CatalogClient = (*Client)(nil)
