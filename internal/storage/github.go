package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guttosm/brvmsim/config"
	"github.com/guttosm/brvmsim/internal/domain/models"
)

// githubStore keeps the state as a JSON file in a Git repository, written
// through the GitHub contents API. The blob SHA doubles as the revision
// token: the API refuses a PUT whose sha no longer matches the file, which
// is exactly the conflict check StateStore asks for.
type githubStore struct {
	client *http.Client
	api    string
	token  string
	repo   string // "owner/name"
	branch string
	path   string
}

// NewGitHubStore returns a StateStore backed by a file in a GitHub repo.
// cfg.APIURL overrides the endpoint, which test servers rely on.
func NewGitHubStore(cfg config.GitHubConfig) StateStore {
	api := strings.TrimSuffix(cfg.APIURL, "/")
	if api == "" {
		api = "https://api.github.com"
	}
	return &githubStore{
		client: &http.Client{Timeout: 15 * time.Second},
		api:    api,
		token:  cfg.Token,
		repo:   cfg.Repo,
		branch: cfg.Branch,
		path:   cfg.Path,
	}
}

func (s *githubStore) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", s.api, s.repo, s.path)
}

func (s *githubStore) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/vnd.github+json")
}

func (s *githubStore) Load(ctx context.Context) (models.PortfolioState, string, error) {
	var st models.PortfolioState

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.contentsURL()+"?ref="+s.branch, nil)
	if err != nil {
		return st, "", err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return st, "", fmt.Errorf("github load: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return st, "", ErrNotFound
	default:
		return st, "", fmt.Errorf("github load: unexpected status %s", resp.Status)
	}

	var body struct {
		Content string `json:"content"`
		SHA     string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return st, "", fmt.Errorf("github load: decode response: %w", err)
	}

	// The API wraps base64 content in newlines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(body.Content, "\n", ""))
	if err != nil {
		return st, "", fmt.Errorf("github load: decode content: %w", err)
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return st, "", fmt.Errorf("github load: parse state: %w", err)
	}
	return st, body.SHA, nil
}

func (s *githubStore) Save(ctx context.Context, st models.PortfolioState, priorRev string) (string, error) {
	blob, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return "", err
	}

	payload := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		Branch  string `json:"branch"`
		SHA     string `json:"sha,omitempty"`
	}{
		Message: "update portfolio state " + time.Now().UTC().Format(time.RFC3339),
		Content: base64.StdEncoding.EncodeToString(blob),
		Branch:  s.branch,
		SHA:     priorRev,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("github save: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict, http.StatusUnprocessableEntity:
		// Stale or missing sha: someone else committed first.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", ErrConflict
	default:
		return "", fmt.Errorf("github save: unexpected status %s", resp.Status)
	}

	var out struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("github save: decode response: %w", err)
	}
	return out.Content.SHA, nil
}

func (s *githubStore) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s", s.api, s.repo), nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("github ping: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github ping: unexpected status %s", resp.Status)
	}
	return nil
}
