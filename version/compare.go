// Package version checks the running build against the latest published release.
package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Compare compares two versions such as "v0.4.2" or "1.2".
// Missing components count as zero and pre-release suffixes are ignored.
// It returns 1 if a > b, -1 if a < b and 0 if they are equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if c := cmp.Compare(av[i], bv[i]); c != 0 {
			return c, nil
		}
	}

	return 0, nil
}

func parse(s string) (v [3]int, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if core, _, found := strings.Cut(s, "-"); found {
		s = core
	}

	parts := strings.Split(s, ".")
	if s == "" || len(parts) > len(v) {
		return v, fmt.Errorf("invalid version %q", s)
	}

	for i, part := range parts {
		if v[i], err = strconv.Atoi(part); err != nil || v[i] < 0 {
			return v, fmt.Errorf("invalid version %q", s)
		}
	}

	return v, nil
}
