package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fileList/internal/logger"
	"fileList/internal/svn"
)

// ErrMissingURL is returned when either repository URL is blank.
var ErrMissingURL = errors.New("both repository URLs are required")

type Status int

const (
	NotFound Status = iota
	Match
	Mismatch
)

func (s Status) String() string {
	switch s {
	case Match:
		return "Match"
	case Mismatch:
		return "Mismatch"
	default:
		return "Not found"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Source is the part of svn.Client Run needs.
type Source interface {
	List(ctx context.Context, url string) ([]string, error)
	Info(ctx context.Context, url, file string) (svn.Info, error)
}

// Side is the lookup result for one file under one repository URL.
// Info is nil when the lookup failed; Err says why.
type Side struct {
	URL  string
	Info *svn.Info
	Err  error
}

// Link is the hyperlink target for the file on this side.
func (s Side) Link(file string) string {
	return svn.JoinURL(s.URL, file)
}

type Row struct {
	File   string
	Left   Side
	Right  Side
	Status Status
}

// Compare reports Match when both revisions exist and are textually equal,
// Mismatch when both exist and differ, and NotFound otherwise.
func Compare(a, b *svn.Info) Status {
	if a == nil || b == nil {
		return NotFound
	}
	if a.Revision == b.Revision {
		return Match
	}
	return Mismatch
}

// Run lists the files under url1 that match exts and looks each one up
// under both URLs, one svn invocation at a time.
func Run(ctx context.Context, src Source, url1, url2 string, exts []string) ([]Row, error) {
	if strings.TrimSpace(url1) == "" || strings.TrimSpace(url2) == "" {
		return nil, ErrMissingURL
	}

	listed, err := src.List(ctx, url1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", url1, err)
	}
	files := svn.FilterByExtension(listed, exts)
	logger.Info("Listed repository", "url", url1, "entries", len(listed), "matching", len(files))

	rows := make([]Row, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		left := lookup(ctx, src, url1, file)
		right := lookup(ctx, src, url2, file)
		row := Row{
			File:   file,
			Left:   left,
			Right:  right,
			Status: Compare(left.Info, right.Info),
		}
		logger.Debug("Compared file", "file", file, "status", row.Status.String())
		rows = append(rows, row)
	}

	return rows, nil
}

func lookup(ctx context.Context, src Source, url, file string) Side {
	side := Side{URL: url}
	info, err := src.Info(ctx, url, file)
	if err != nil {
		logger.Warn("File info unavailable", "url", url, "file", file, "error", err)
		side.Err = err
		return side
	}
	side.Info = &info
	return side
}

type Summary struct {
	Total    int `json:"total"`
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	NotFound int `json:"not_found"`
}

func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		switch r.Status {
		case Match:
			s.Match++
		case Mismatch:
			s.Mismatch++
		default:
			s.NotFound++
		}
	}
	return s
}
