// Copyright 2025 Oleh Yurkevych
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package github implements storage.FondStore on top of the GitHub
// contents API. Artifacts are files in a repository branch and the
// revision token is the git blob SHA.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/yurkevych/parafii/storage"
)

// defaultRateLimit keeps the store well inside the authenticated contents
// API quota.
const defaultRateLimit = rate.Limit(1)

// Store is a FondStore writing files to a GitHub repository branch.
type Store struct {
	client  *gh.Client
	owner   string
	repo    string
	branch  string
	limiter *rate.Limiter
	logger  *slog.Logger
	closed  atomic.Bool
}

var _ storage.FondStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store) error

// WithBaseURL points the underlying client at a different API endpoint.
// Intended for tests and GitHub Enterprise installs. The URL must end
// with a slash.
func WithBaseURL(baseURL string) Option {
	return func(s *Store) error {
		client, err := s.client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return err
		}
		s.client = client
		return nil
	}
}

// WithRateLimit overrides the default API call rate.
func WithRateLimit(limit rate.Limit) Option {
	return func(s *Store) error {
		s.limiter = rate.NewLimiter(limit, 1)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates a store writing to the given repository branch. token
// is a personal access token with contents write permission; it may be
// empty for read-only access to public repositories.
func NewStore(owner, repo, branch, token string, opts ...Option) (storage.FondStore, error) {
	if owner == "" || repo == "" {
		return nil, errors.New("github: owner and repo are required")
	}
	if branch == "" {
		return nil, errors.New("github: branch is required")
	}

	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(context.Background(),
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	s := &Store{
		client:  gh.NewClient(httpClient),
		owner:   owner,
		repo:    repo,
		branch:  branch,
		limiter: rate.NewLimiter(defaultRateLimit, 1),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Get retrieves a file from the branch. The returned revision is the git
// blob SHA of the file.
func (s *Store) Get(ctx context.Context, path string) ([]byte, string, error) {
	if s.closed.Load() {
		return nil, "", storage.ErrStorageClosed
	}
	if path == "" {
		return nil, "", storage.ErrEmptyPath
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	file, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, path,
		&gh.RepositoryContentGetOptions{Ref: s.branch})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, "", fmt.Errorf("get %s: %w", path, storage.ErrNotFound)
		}
		return nil, "", fmt.Errorf("get %s: %w", path, err)
	}
	if file == nil {
		return nil, "", fmt.Errorf("get %s: path is a directory", path)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}

	return []byte(content), file.GetSHA(), nil
}

// Put creates or updates a file on the branch and returns the new blob
// SHA. message becomes the commit message.
func (s *Store) Put(ctx context.Context, path string, content []byte, revision, message string) (string, error) {
	if s.closed.Load() {
		return "", storage.ErrStorageClosed
	}
	if path == "" {
		return "", storage.ErrEmptyPath
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.String(message),
		Content: content,
		Branch:  gh.String(s.branch),
	}

	var (
		result *gh.RepositoryContentResponse
		resp   *gh.Response
		err    error
	)
	if revision == "" {
		result, resp, err = s.client.Repositories.CreateFile(ctx, s.owner, s.repo, path, opts)
	} else {
		opts.SHA = gh.String(revision)
		result, resp, err = s.client.Repositories.UpdateFile(ctx, s.owner, s.repo, path, opts)
	}
	if err != nil {
		return "", s.mapPutError(path, revision, resp, err)
	}

	sha := result.Content.GetSHA()
	s.logger.Debug("stored artifact",
		"path", path, "repo", s.owner+"/"+s.repo, "branch", s.branch, "revision", sha)
	return sha, nil
}

// mapPutError translates contents API failures into storage errors. The
// API answers a stale SHA with 409, and both a create of an existing file
// and an update with a malformed SHA with 422.
func (s *Store) mapPutError(path, revision string, resp *gh.Response, err error) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("put %s: %w", path, storage.ErrNotFound)
		case http.StatusConflict:
			return fmt.Errorf("put %s: %w", path, storage.ErrRevisionConflict)
		case http.StatusUnprocessableEntity:
			if revision == "" {
				return fmt.Errorf("put %s: %w", path, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("put %s: %w", path, storage.ErrRevisionConflict)
		}
	}
	return fmt.Errorf("put %s: %w", path, err)
}

// Close marks the store closed. The underlying HTTP client holds no
// resources that need releasing.
func (s *Store) Close() error {
	s.closed.Store(true)
	return nil
}
