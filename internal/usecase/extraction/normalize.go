package extraction

import (
	"strings"
	"unicode"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// CleanOwner trims the owner; an empty owner becomes Unassigned.
func CleanOwner(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return entities.Unassigned
	}
	return s
}

// CleanTask drops leading ':' / '-' markers and collapses whitespace runs
// to single spaces. CleanTask(CleanTask(s)) == CleanTask(s).
func CleanTask(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return r == ':' || r == '-' || unicode.IsSpace(r)
	})
	return strings.Join(strings.Fields(s), " ")
}

// Dedupe keeps the first item for each lower(owner)|lower(task) key.
func Dedupe(items []entities.ActionItem) []entities.ActionItem {
	seen := make(map[string]struct{}, len(items))
	unique := make([]entities.ActionItem, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(it.Owner + "|" + it.Task)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, it)
	}
	return unique
}
