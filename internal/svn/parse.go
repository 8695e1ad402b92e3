package svn

import (
	"strings"
)

const (
	dateMarker     = "Last Changed Date:"
	revisionMarker = "Last Changed Rev:"
)

// Info is the subset of `svn info` output the file list tracks.
type Info struct {
	Date     string `json:"date"`
	Revision string `json:"revision"`
}

// ParseInfo extracts the last-changed date and revision from the text output of
// `svn info`. ok is false unless both fields were found.
func ParseInfo(output string) (info Info, ok bool) {
	var haveDate, haveRev bool

	for _, line := range splitLines(output) {
		if !haveDate {
			if i := strings.Index(line, dateMarker); i >= 0 {
				info.Date = strings.TrimSpace(line[i+len(dateMarker):])
				haveDate = true
				continue
			}
		}
		if !haveRev {
			if i := strings.Index(line, revisionMarker); i >= 0 {
				info.Revision = strings.TrimSpace(line[i+len(revisionMarker):])
				haveRev = true
			}
		}
	}

	if !haveDate || !haveRev {
		return Info{}, false
	}
	return info, true
}

// ParseList returns the non-empty entries of `svn list -R` output.
func ParseList(output string) []string {
	var paths []string
	for _, line := range splitLines(output) {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// HasExtension reports whether path ends in "."+ext, ignoring case.
func HasExtension(path, ext string) bool {
	suffix := "." + ext
	if len(path) < len(suffix) {
		return false
	}
	return strings.EqualFold(path[len(path)-len(suffix):], suffix)
}

// FilterByExtension keeps the paths matching any of exts, preserving order.
func FilterByExtension(paths, exts []string) []string {
	var cleaned []string
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			cleaned = append(cleaned, ext)
		}
	}

	var kept []string
	for _, p := range paths {
		for _, ext := range cleaned {
			if HasExtension(p, ext) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
