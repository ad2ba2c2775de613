package version

import (
	"fmt"
	"strconv"
	"strings"
)

// semver holds the numeric components of a release tag.
type semver [3]int

func parseSemver(s string) (semver, error) {
	var v semver

	parts := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".", 3)
	if len(parts) != 3 {
		return v, fmt.Errorf("invalid version %q", s)
	}

	for i, part := range parts {
		// drop pre-release and build suffixes: 1.2.3-rc1, 1.2.3+abc
		if j := strings.IndexAny(part, "-+"); j >= 0 && i == 2 {
			part = part[:j]
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("invalid version %q: %w", s, err)
		}
		v[i] = n
	}

	return v, nil
}

// Compare compares two semantic versions, with or without a "v" prefix.
// It returns 1 if a is newer than b, -1 if older, 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}
	return 0, nil
}
