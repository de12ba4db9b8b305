// Package pathcomplete completes partially typed filesystem paths for the
// source and destination fields.
package pathcomplete

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const sep = string(os.PathSeparator)

// Complete returns the best completion for partial. It reports false when
// there is nothing to add: empty input, an unreadable parent, no match, or
// several matches whose shared prefix does not extend what was typed.
func Complete(partial string) (string, bool) {
	if partial == "" {
		return "", false
	}
	if info, err := os.Stat(partial); err == nil && info.IsDir() {
		if strings.HasSuffix(partial, sep) {
			return "", false
		}
		return partial + sep, true
	}

	dir, prefix := split(partial)
	entries, err := os.ReadDir(listDir(dir))
	if err != nil {
		return "", false
	}
	var matches []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			matches = append(matches, dir+entry.Name())
		}
	}

	switch len(matches) {
	case 0:
		return "", false
	case 1:
		match := matches[0]
		if info, err := os.Stat(match); err == nil && info.IsDir() {
			match += sep
		}
		return match, true
	}
	common := commonPrefix(matches)
	if len(common) <= len(partial) {
		return "", false
	}
	return common, true
}

// Suggest ranks the entries of the parent directory of partial against its
// final component and returns up to limit candidates, best first. Directories
// carry a trailing separator.
func Suggest(partial string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	dir, prefix := split(partial)
	entries, err := os.ReadDir(listDir(dir))
	if err != nil {
		return nil
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	ranks := fuzzy.RankFindNormalizedFold(prefix, names)
	sort.Stable(ranks)
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		candidate := dir + rank.Target
		if entries[rank.OriginalIndex].IsDir() {
			candidate += sep
		}
		out = append(out, candidate)
	}
	return out
}

// split cuts partial after its last separator. The directory part keeps the
// separator so matches can be rendered as dir+name.
func split(partial string) (dir, prefix string) {
	idx := strings.LastIndex(partial, sep)
	if idx < 0 {
		return "", partial
	}
	return partial[:idx+1], partial[idx+1:]
}

func listDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func commonPrefix(values []string) string {
	prefix := values[0]
	for _, v := range values[1:] {
		n := 0
		for n < len(prefix) && n < len(v) {
			r1, s1 := utf8.DecodeRuneInString(prefix[n:])
			r2, s2 := utf8.DecodeRuneInString(v[n:])
			if r1 != r2 || s1 != s2 {
				break
			}
			n += s1
		}
		prefix = prefix[:n]
		if prefix == "" {
			break
		}
	}
	return prefix
}
