// Package update checks for and installs new rpn releases from GitHub.
package update

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/creativeprojects/go-selfupdate"
)

const repoSlug = "pengelbrecht/rpn"

const (
	checkTimeout  = 30 * time.Second
	updateTimeout = 5 * time.Minute
)

// Release describes an available release.
type Release struct {
	Version string
}

// CheckForUpdate reports whether a release newer than current exists.
func CheckForUpdate(current string) (*Release, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found || latest.LessOrEqual(current) {
		return nil, false, nil
	}
	return &Release{Version: latest.Version()}, true, nil
}

// Update replaces the running binary with the latest release.
func Update(current string) error {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update binary: %w", err)
	}
	return nil
}
