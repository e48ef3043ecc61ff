package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRepositories(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"hello-world","html_url":"https://github.com/octocat/hello-world","stargazers_count":3}]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	repos, err := c.FetchRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 3, repos[0].StargazersCount)
}

func TestFetchRepositoriesSendsToken(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithToken("tok123"))
	_, err := c.FetchRepositories(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestFetchRepositoriesUpstreamNon200(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.FetchRepositories(context.Background(), "no-such-user")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUpstreamFailure, appErr.Code)
	assert.Equal(t, "No GitHub profile found", appErr.Message)
}

func TestFetchRepositoriesConnectionRefused(t *testing.T) {
	t.Parallel()
	c := NewClient(WithBaseURL("http://127.0.0.1:1"))
	_, err := c.FetchRepositories(context.Background(), "octocat")

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUpstreamFailure, appErr.Code)
}
