// Package update implements the stitch version/update subcommands, ported
// from the teacher's own self-update flow: github.com/blang/semver and
// github.com/rhysd/go-github-selfupdate for the actual release lookup and
// binary replacement, with github.com/Fepozopo/stitch/pkg/semver (the
// teacher's own hand-rolled semantic-version type) used to parse and format
// the build version for display, since go-github-selfupdate's API only
// needs blang/semver internally for the release comparison itself.
package update

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"syscall"
	"time"

	blangsemver "github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"

	"github.com/Fepozopo/stitch/pkg/semver"
)

// Version is the build version, normally overridden at link time via
// -ldflags "-X github.com/Fepozopo/stitch/pkg/update.Version=...".
var Version = "0.1.0"

// Repo is the GitHub repository checked for new releases.
const Repo = "Fepozopo/stitch"

// PrintVersion reports the build version in the teacher's status-line style.
func PrintVersion() {
	v, err := semver.Parse(Version)
	if err != nil {
		fmt.Printf("stitch version %s (unparsed)\n", Version)
		return
	}
	fmt.Printf("stitch version %s\n", v)
}

// detectLatestFallback queries the GitHub Releases API and returns the
// highest semver-tagged, non-draft, non-prerelease release it can find.
func detectLatestFallback(repo string) (*selfupdate.Release, bool, error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases", repo)
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return nil, false, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed reading github response: %w", err)
	}

	var releases []struct {
		TagName    string `json:"tag_name"`
		Name       string `json:"name"`
		Draft      bool   `json:"draft"`
		Prerelease bool   `json:"prerelease"`
		Assets     []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, false, fmt.Errorf("failed to decode github releases: %w", err)
	}

	type candidate struct {
		ver      blangsemver.Version
		assetURL string
	}
	var candidates []candidate
	semverRe := regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverRe.FindString(r.TagName)
		if match == "" {
			match = semverRe.FindString(r.Name)
			if match == "" {
				continue
			}
		}
		v, perr := blangsemver.Parse(strings.TrimPrefix(match, "v"))
		if perr != nil {
			continue
		}
		assetURL := ""
		for _, a := range r.Assets {
			nameLower := strings.ToLower(a.Name)
			if strings.Contains(nameLower, "darwin") || strings.Contains(nameLower, "linux") || strings.Contains(nameLower, "windows") || strings.Contains(nameLower, "amd64") || strings.Contains(nameLower, "arm64") {
				assetURL = a.BrowserDownloadURL
				break
			}
			if assetURL == "" {
				assetURL = a.BrowserDownloadURL
			}
		}
		candidates = append(candidates, candidate{ver: v, assetURL: assetURL})
	}

	if len(candidates) == 0 {
		return nil, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ver.GT(candidates[j].ver) })
	best := candidates[0]
	return &selfupdate.Release{Version: best.ver, AssetURL: best.assetURL}, true, nil
}

// Check reports the current and latest available version. When the latest
// release differs from the build version and has a downloadable asset, it
// replaces the running binary and restarts it without prompting.
func Check() error {
	latest, found, err := detectLatestFallback(Repo)
	fmt.Printf("Current version: %s\n", Version)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest == nil {
		fmt.Printf("No releases found for %s.\n", Repo)
		return nil
	}
	fmt.Printf("Latest version: %s\n", latest.Version)

	currentVer, parseErr := blangsemver.Parse(strings.TrimPrefix(Version, "v"))
	if parseErr != nil {
		fmt.Printf("warning: could not parse current version %q: %v\n", Version, parseErr)
	}
	if latest.Version.Equals(currentVer) {
		fmt.Printf("You are already running the latest version: %s.\n", currentVer)
		return nil
	}
	if latest.AssetURL == "" {
		fmt.Printf("A new version (%s) is available but there is no downloadable asset.\n", latest.Version)
		fmt.Println("Please visit the project releases page to download the new version.")
		return nil
	}

	fmt.Printf("A new version (%s) is available. Updating...\n", latest.Version)
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	argv := append([]string{exe}, os.Args[1:]...)
	if err := syscall.Exec(exe, argv, os.Environ()); err != nil {
		cmd := exec.Command(exe, os.Args[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if startErr := cmd.Start(); startErr != nil {
			fmt.Printf("Updated to version %s, but failed to restart automatically: %v; fallback start error: %v\n", latest.Version, err, startErr)
			fmt.Println("Please restart the application manually.")
			return nil
		}
		os.Exit(0)
	}
	return nil
}
