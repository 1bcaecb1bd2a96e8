package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/vignesh-tw/migration-analysis/internal/fault"
	"github.com/vignesh-tw/migration-analysis/internal/insights"
)

// CircleCIBaseURL is the root of the CircleCI v2 API.
const CircleCIBaseURL = "https://circleci.com/api/v2"

// DefaultTimeout applies to requests when no other timeout is configured.
const DefaultTimeout = 1 * time.Minute

// CircleCIClient reads the job insights of one workflow of a project.
type CircleCIClient struct {
	HTTPClient *retryablehttp.Client
	URL        string

	GitSlug         string
	Project         string
	Workflow        string
	ReportingWindow string
	Token           string
}

// NewCircleCIClient validates its inputs and returns a client that makes a single attempt per request.
func NewCircleCIClient(gitSlug, project, workflow, reportingWindow, token string) (CircleCIClient, error) {
	required := []struct {
		name  string
		value string
	}{
		{"git_slug", gitSlug},
		{"project", project},
		{"workflow", workflow},
		{"reporting_window", reportingWindow},
		{"circleci_token", token},
	}
	for _, r := range required {
		if r.value == "" {
			return CircleCIClient{}, fault.Newf(fault.ErrInvalidInput, "%s is empty", r.name)
		}
	}

	return CircleCIClient{
		HTTPClient:      NewRetryableClient(DefaultTimeout, 0),
		URL:             CircleCIBaseURL,
		GitSlug:         gitSlug,
		Project:         project,
		Workflow:        workflow,
		ReportingWindow: reportingWindow,
		Token:           token,
	}, nil
}

// JobsURL returns the job metrics endpoint of the workflow. Only the main branch is queried.
func (c *CircleCIClient) JobsURL() string {
	return fmt.Sprintf("%s/insights/%s/%s/workflows/%s/jobs?branch=main&reporting-window=%s",
		c.URL, c.GitSlug, c.Project, c.Workflow, c.ReportingWindow)
}

// Headers returns the headers authenticating a request.
func (c *CircleCIClient) Headers() http.Header {
	h := http.Header{}
	h.Set("authorization", "circle-token "+c.Token)
	return h
}

// GetJobs returns the job metrics of the workflow. Only the first page is read.
func (c *CircleCIClient) GetJobs(ctx context.Context) (insights.JobMetrics, error) {
	req, err := NewRetryableRequestWithContext(ctx, http.MethodGet, c.JobsURL(), nil)
	if err != nil {
		return insights.JobMetrics{}, err
	}
	for k, v := range c.Headers() {
		req.Header[k] = v
	}

	log.Debug().Str("url", c.JobsURL()).Msg("Retrieving job metrics")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return insights.JobMetrics{}, fmt.Errorf("failed to retrieve response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if m := gjson.GetBytes(body, "message"); m.Exists() {
			return insights.JobMetrics{}, fmt.Errorf("unexpected status: %s: %s", resp.Status, m.String())
		}
		return insights.JobMetrics{}, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var jobs insights.JobMetrics
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return insights.JobMetrics{}, fmt.Errorf("failed to deserialize response: %w", err)
	}

	return jobs, nil
}
