package efirom

import (
	"fmt"
	"strings"
)

const dateTokenLen = len("YYMMDDHHMM")

func normalizeDateToken(token string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, token)

	if len(digits) != dateTokenLen {
		return "", false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	return digits, true
}

func UpdateAvailable(reference string, candidate VersionRecord) (bool, error) {
	if reference == "" {
		return false, ErrorVersionUnavailable
	}

	ref, err := ParseVersionRecord(reference)
	if err != nil {
		return false, fmt.Errorf("reference version: %w", err)
	}

	refDate, ok := normalizeDateToken(ref.DateToken())
	if !ok {
		return false, fmt.Errorf("%w: reference date %q", ErrorMalformedVersion, ref.DateToken())
	}
	candDate, ok := normalizeDateToken(candidate.DateToken())
	if !ok {
		return false, fmt.Errorf("%w: candidate date %q", ErrorMalformedVersion, candidate.DateToken())
	}

	/* Fixed width YYMMDDHHMM, so string order is date order */
	return refDate < candDate, nil
}
