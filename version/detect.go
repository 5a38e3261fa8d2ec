// Package version provides GEDCOM version detection and validation.
//
// This package helps identify which GEDCOM specification version (5.5, 5.5.1, or 7.0)
// a file conforms to. It can detect the version from the header or use tag-based
// heuristics to make an educated guess.
//
// Example usage:
//
//	lines, _ := parser.NewParser().Parse(reader)
//	version, err := version.DetectVersion(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Detected GEDCOM version: %s\n", version)
package version

import (
	"strings"

	"github.com/cacack/deadends/parser"
)

// Version represents a GEDCOM specification version.
type Version string

const (
	// Version55 represents GEDCOM 5.5 specification
	Version55 Version = "5.5"

	// Version551 represents GEDCOM 5.5.1 specification
	Version551 Version = "5.5.1"

	// Version70 represents GEDCOM 7.0 specification
	Version70 Version = "7.0"
)

// String returns the string representation of the version.
func (v Version) String() string {
	return string(v)
}

// IsValid returns true if the version is a known GEDCOM version.
func (v Version) IsValid() bool {
	switch v {
	case Version55, Version551, Version70:
		return true
	default:
		return false
	}
}

// DetectVersion detects the GEDCOM version from parsed lines.
// It first tries to find the version in the header (HEAD -> GEDC -> VERS).
// If not found, it falls back to tag-based heuristics.
// Returns Version55 as the default if detection fails.
func DetectVersion(lines []*parser.Line) (Version, error) {
	// Try to detect from header first
	v := detectFromHeader(lines)
	if v != "" {
		return v, nil
	}

	// Fallback to tag-based heuristics
	v = detectFromTags(lines)
	return v, nil
}

// detectFromHeader looks for the version in the GEDCOM header.
// Header structure:
//
//	0 HEAD
//	1 GEDC
//	2 VERS 5.5 (or 5.5.1, or 7.0)
func detectFromHeader(lines []*parser.Line) Version {
	inHead := false
	inGedc := false

	for _, line := range lines {
		if v := processHeaderLine(line, &inHead, &inGedc); v != "" {
			return v
		}
	}

	return ""
}

func processHeaderLine(line *parser.Line, inHead, inGedc *bool) Version {
	// Handle level 0 tags
	if line.Level == 0 {
		return handleLevel0(line, inHead)
	}

	// Handle level 1 tags within HEAD
	if *inHead && line.Level == 1 {
		return handleLevel1(line, inGedc)
	}

	// Handle level 2 VERS tag within GEDC
	if *inHead && *inGedc && line.Level == 2 && line.Tag == "VERS" {
		return parseVersionString(line.Value)
	}

	return ""
}

func handleLevel0(line *parser.Line, inHead *bool) Version {
	if line.Tag == "HEAD" {
		*inHead = true
	} else {
		*inHead = false
	}
	return ""
}

func handleLevel1(line *parser.Line, inGedc *bool) Version {
	if line.Tag == "GEDC" {
		*inGedc = true
	} else {
		*inGedc = false
	}
	return ""
}

func parseVersionString(value string) Version {
	v := strings.TrimSpace(value)
	switch v {
	case "5.5":
		return Version55
	case "5.5.1":
		return Version551
	case "7.0", "7.0.0":
		return Version70
	default:
		return ""
	}
}

// detectFromTags uses tag-based heuristics to guess the GEDCOM version.
// This is a fallback when the header doesn't contain version info.
func detectFromTags(lines []*parser.Line) Version {
	// Count tags specific to different versions
	var has70Tags, has551Tags bool

	for _, line := range lines {
		tag := line.Tag

		// GEDCOM 7.0 specific tags
		switch tag {
		case "EXID", "PHRASE", "SCHMA", "SNOTE", "UID", "CREA", "MIME":
			has70Tags = true
		}

		// GEDCOM 5.5.1 specific tags
		switch tag {
		case "MAP", "LATI", "LONG", "EMAIL", "WWW", "FACT":
			has551Tags = true
		}
	}

	// Determine version based on tags found
	if has70Tags {
		return Version70
	}
	if has551Tags {
		return Version551
	}

	// Default to 5.5 (most common)
	return Version55
}

// IsValidVersion checks if a version string is a valid GEDCOM version.
func IsValidVersion(v Version) bool {
	return v.IsValid()
}
