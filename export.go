package xlists

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// listSource is the API surface ExportList needs. The source constructs its
// own pager so its page cap travels with it.
type listSource interface {
	memberSource
	ListByID(ctx context.Context, listID string) (*List, error)
	NewMemberPager(listID string) *MemberPager
}

// ExportList fetches a list's metadata and full membership and writes the
// export document to path. The document is assembled in memory and written
// once: a mid-stream failure leaves no partial file behind.
func ExportList(ctx context.Context, src listSource, listID, path string, progress ProgressFunc) (*Export, error) {
	doc, err := BuildExport(ctx, src, listID, progress)
	if err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return doc, nil
}

// BuildExport assembles the export document without persisting it.
func BuildExport(ctx context.Context, src listSource, listID string, progress ProgressFunc) (*Export, error) {
	info, err := src.ListByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", listID, err)
	}

	members, err := allMembers(ctx, src.NewMemberPager(listID), progress)
	if err != nil {
		return nil, fmt.Errorf("list %s members: %w", listID, err)
	}
	if members == nil {
		members = []Member{} // an empty list exports "members": [], not null
	}

	return &Export{
		List:        *info,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		MemberCount: len(members),
		Members:     members,
	}, nil
}

// FindListByName selects one list by case-insensitive substring match.
// More than one match fails as ambiguous, naming every candidate so the
// operator can disambiguate by id; no match fails as not found.
func FindListByName(lists []List, query string) (*List, error) {
	q := strings.ToLower(query)

	var matches []List
	for _, l := range lists {
		if strings.Contains(strings.ToLower(l.Name), q) {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w %q", ErrNoMatch, query)
	case 1:
		return &matches[0], nil
	default:
		var candidates []string
		for _, m := range matches {
			candidates = append(candidates, fmt.Sprintf("%s (id %s)", m.Name, m.ID))
		}
		return nil, fmt.Errorf("%w: %q matches %s; re-run with an id", ErrAmbiguousMatch, query, strings.Join(candidates, ", "))
	}
}
