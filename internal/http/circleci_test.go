package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-tw/migration-analysis/internal/fault"
	"github.com/vignesh-tw/migration-analysis/internal/insights"
)

func TestNewCircleCIClient_Validation(t *testing.T) {
	tests := []struct {
		name            string
		gitSlug         string
		project         string
		workflow        string
		reportingWindow string
		token           string
		wantErr         string
	}{
		{
			name:            "git slug is omitted",
			project:         "project",
			workflow:        "workflow",
			reportingWindow: "reporting_window",
			token:           "circleci_token",
			wantErr:         "git_slug is empty",
		},
		{
			name:            "project is omitted",
			gitSlug:         "git_slug",
			workflow:        "workflow",
			reportingWindow: "reporting_window",
			token:           "circleci_token",
			wantErr:         "project is empty",
		},
		{
			name:            "workflow is omitted",
			gitSlug:         "git_slug",
			project:         "project",
			reportingWindow: "reporting_window",
			token:           "circleci_token",
			wantErr:         "workflow is empty",
		},
		{
			name:     "reporting window is omitted",
			gitSlug:  "git_slug",
			project:  "project",
			workflow: "workflow",
			token:    "circleci_token",
			wantErr:  "reporting_window is empty",
		},
		{
			name:            "token is omitted",
			gitSlug:         "git_slug",
			project:         "project",
			workflow:        "workflow",
			reportingWindow: "reporting_window",
			wantErr:         "circleci_token is empty",
		},
		{
			name:    "everything omitted reports the git slug",
			wantErr: "git_slug is empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCircleCIClient(tt.gitSlug, tt.project, tt.workflow, tt.reportingWindow, tt.token)
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, fault.ErrInvalidInput))
		})
	}
}

func TestNewCircleCIClient(t *testing.T) {
	c, err := NewCircleCIClient("git_slug", "project", "workflow", "reporting_window", "circleci_token")
	require.NoError(t, err)

	assert.Equal(t, "git_slug", c.GitSlug)
	assert.Equal(t, "project", c.Project)
	assert.Equal(t, "workflow", c.Workflow)
	assert.Equal(t, "reporting_window", c.ReportingWindow)
	assert.Equal(t, "circleci_token", c.Token)
	assert.Equal(t, CircleCIBaseURL, c.URL)
	assert.Equal(t, 0, c.HTTPClient.RetryMax)
}

func TestCircleCIClient_JobsURL(t *testing.T) {
	c, err := NewCircleCIClient("github/vignesh-tw", "vsomeip", "build-test-deploy", "last-7-days", "token")
	require.NoError(t, err)

	assert.Equal(t,
		"https://circleci.com/api/v2/insights/github/vignesh-tw/vsomeip/workflows/build-test-deploy/jobs?branch=main&reporting-window=last-7-days",
		c.JobsURL())
}

func TestCircleCIClient_Headers(t *testing.T) {
	c, err := NewCircleCIClient("git_slug", "project", "workflow", "reporting_window", "cicleci_token")
	require.NoError(t, err)

	assert.Equal(t, "circle-token cicleci_token", c.Headers().Get("authorization"))
}

func TestCircleCIClient_GetJobs(t *testing.T) {
	tests := []struct {
		name    string
		reply   func(t *testing.T) func(w http.ResponseWriter, r *http.Request)
		want    insights.JobMetrics
		wantErr string
	}{
		{
			name: "job metrics are decoded",
			reply: func(t *testing.T) func(w http.ResponseWriter, r *http.Request) {
				return func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "/insights/gh/org/proj/workflows/wf/jobs", r.URL.Path)
					assert.Equal(t, "main", r.URL.Query().Get("branch"))
					assert.Equal(t, "last-30-days", r.URL.Query().Get("reporting-window"))
					assert.Equal(t, "circle-token secret", r.Header.Get("Authorization"))
					assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))

					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(`{"next_page_token":null,"items":[{"name":"bazel_build","window_start":"s","window_end":"e","metrics":{"total_runs":3,"duration_metrics":{"min":1,"mean":2,"median":2,"p95":3,"max":3}}}]}`))
				}
			},
			want: insights.JobMetrics{
				NextPageToken: []byte("null"),
				Items: []insights.Item{
					{
						Name:        "bazel_build",
						WindowStart: "s",
						WindowEnd:   "e",
						Metrics: insights.Metrics{
							TotalRuns: 3,
							DurationMetrics: insights.DurationMetrics{
								Min: 1, Mean: 2, Median: 2, P95: 3, Max: 3,
							},
						},
					},
				},
			},
		},
		{
			name: "error message of the API is surfaced",
			reply: func(t *testing.T) func(w http.ResponseWriter, r *http.Request) {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"message":"You must log in first."}`))
				}
			},
			wantErr: "unexpected status: 401 Unauthorized: You must log in first.",
		},
		{
			name: "unexpected status without a message",
			reply: func(t *testing.T) func(w http.ResponseWriter, r *http.Request) {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}
			},
			wantErr: "unexpected status: 500 Internal Server Error",
		},
		{
			name: "undecodable body",
			reply: func(t *testing.T) func(w http.ResponseWriter, r *http.Request) {
				return func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(`{"items": "nope"}`))
				}
			},
			wantErr: "failed to deserialize response",
		},
	}

	for _, tt := range tests {
		ts := httptest.NewServer(http.HandlerFunc(tt.reply(t)))

		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircleCIClient("gh/org", "proj", "wf", "last-30-days", "secret")
			require.NoError(t, err)
			c.URL = ts.URL
			c.HTTPClient = NewRetryableClient(5*time.Second, 0)
			c.HTTPClient.HTTPClient = ts.Client()

			got, err := c.GetJobs(context.Background())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})

		ts.Close()
	}
}
