// Package release checks GitHub for newer appdirs releases.
package release

//go:generate mockgen -source=client.go -destination=client_mock.go -package=release

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-github/v84/github"

	execpkg "github.com/smykla-skalski/appdirs/internal/exec"
)

const (
	// Owner is the GitHub organization that publishes appdirs releases.
	Owner = "smykla-skalski"
	// Repo is the GitHub repository that holds appdirs releases.
	Repo = "appdirs"

	// ghAuthTimeout is the timeout for the gh auth token command.
	ghAuthTimeout = 5 * time.Second
)

var (
	// ErrRateLimitExceeded is returned when the GitHub API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("github API rate limit exceeded")
	// ErrRepositoryNotFound is returned when the repository is not found.
	ErrRepositoryNotFound = errors.New("repository not found")
)

// Release represents a published GitHub release.
type Release struct {
	TagName     string
	Name        string
	HTMLURL     string
	PublishedAt time.Time
}

// Client defines the GitHub API surface the version checker needs.
type Client interface {
	// GetLatestRelease retrieves the latest release for a repository.
	GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error)
	// IsAuthenticated returns whether the client is authenticated.
	IsAuthenticated() bool
}

// SDKClient implements Client using the go-github SDK.
type SDKClient struct {
	client        *github.Client
	authenticated bool
}

// getToken retrieves a GitHub token from the environment or the gh CLI.
func getToken() string {
	// Check GH_TOKEN first
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	// Check GITHUB_TOKEN
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}

	// Fallback to gh auth token if gh CLI is available
	toolChecker := execpkg.NewToolChecker()
	if !toolChecker.IsAvailable("gh") {
		return ""
	}

	runner := execpkg.NewCommandRunner(ghAuthTimeout)

	result := runner.Run(context.Background(), "gh", "auth", "token")
	if result.Err != nil {
		return ""
	}

	return strings.TrimSpace(result.Stdout)
}

// NewClient creates a GitHub client, authenticated when a token is available.
func NewClient() *SDKClient {
	token := getToken()
	authenticated := token != ""

	var httpClient *http.Client
	if authenticated {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}

	return &SDKClient{
		client:        github.NewClient(httpClient),
		authenticated: authenticated,
	}
}

// authTransport adds the authentication header to requests.
type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)

	return http.DefaultTransport.RoundTrip(req)
}

// IsAuthenticated returns whether the client is authenticated.
func (c *SDKClient) IsAuthenticated() bool {
	return c.authenticated
}

// GetLatestRelease retrieves the latest release for a repository.
func (c *SDKClient) GetLatestRelease(
	ctx context.Context,
	owner, repo string,
) (*Release, error) {
	release, resp, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, c.handleError(resp, err)
	}

	return &Release{
		TagName:     release.GetTagName(),
		Name:        release.GetName(),
		HTMLURL:     release.GetHTMLURL(),
		PublishedAt: release.GetPublishedAt().Time,
	}, nil
}

// handleError converts GitHub API errors to our error types.
func (*SDKClient) handleError(resp *github.Response, err error) error {
	if resp == nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrRepositoryNotFound
	case http.StatusForbidden:
		// Check if it's rate limit
		if resp.Rate.Remaining == 0 {
			return ErrRateLimitExceeded
		}

		return err
	default:
		return err
	}
}
