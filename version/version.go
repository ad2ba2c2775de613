// Package version provides application version tracking and update discovery.
package version

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/network"
	"github.com/laradl/laradl/util"
	"github.com/laradl/laradl/where"
	"github.com/metafates/gache"
	"github.com/tidwall/gjson"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   24 * time.Hour,
	FileSystem: &filesystem.GacheFs{},
})

// ReleasesURL is the endpoint describing the latest published release.
var ReleasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

// Latest retrieves the most recent release version, without the "v" prefix.
// The answer is cached for a day.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ver, err = fetchLatest(ctx, ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(ver)
	return ver, nil
}

func fetchLatest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	tag := gjson.GetBytes(body, "tag_name").String()
	if tag == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(tag, "v"), nil
}
