package release

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/hako/durafmt"
)

// devVersion marks development builds, which skip the semver comparison.
const devVersion = "dev"

// durationDisplayUnits caps how many units the release age shows.
const durationDisplayUnits = 2

// ErrAlreadyLatest is returned when the current version is already the latest.
var ErrAlreadyLatest = errors.New("already up to date")

// Checker compares the running version against the latest published release.
type Checker struct {
	client Client
}

// NewChecker creates a new Checker.
func NewChecker(client Client) *Checker {
	return &Checker{client: client}
}

// CheckLatest returns the latest release, or ErrAlreadyLatest if current >= latest.
// Dev builds (version="dev") always return the latest release.
func (c *Checker) CheckLatest(ctx context.Context, currentVersion string) (*Release, error) {
	release, err := c.client.GetLatestRelease(ctx, Owner, Repo)
	if err != nil {
		return nil, errors.Wrap(err, "checking latest release")
	}

	// Dev builds always get the latest
	if currentVersion == devVersion {
		return release, nil
	}

	latestVer, err := semver.NewVersion(strings.TrimPrefix(release.TagName, "v"))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing latest version %q", release.TagName)
	}

	currentVer, err := semver.NewVersion(strings.TrimPrefix(currentVersion, "v"))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing current version %q", currentVersion)
	}

	if !currentVer.LessThan(latestVer) {
		return nil, ErrAlreadyLatest
	}

	return release, nil
}

// Age renders how long ago a release was published, e.g. "3 weeks 2 days".
// Returns an empty string for the zero time.
func Age(publishedAt time.Time) string {
	if publishedAt.IsZero() {
		return ""
	}

	since := time.Since(publishedAt).Round(time.Second)

	return durafmt.Parse(since).LimitFirstN(durationDisplayUnits).String()
}
