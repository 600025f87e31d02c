package trigger

import (
	"errors"
	"regexp"
	"strconv"
)

// maxPatternSetBytes approximates the 512 MiB compiled-regex-program cap
// of the original's regex-set implementation. Go's regexp package does
// not expose a compiled program's size, so this sums each pattern's
// source length instead — a deliberately conservative stand-in for the
// same "stop a catastrophic pattern set before it grows unbounded" goal.
const maxPatternSetBytes = 512 * 1024 * 1024

// ErrPatternSetTooLarge is returned by a rebuild that would exceed
// maxPatternSetBytes.
var ErrPatternSetTooLarge = errors.New("trigger: pattern set exceeds size cap")

// compiledPattern is one member of a patternSet: a compiled regex plus
// the two parallel indices spec'd for a regex set — which owner (a
// trigger or alias, by position in the manager's slice) it belongs to,
// and which pattern slot within that owner it is.
type compiledPattern struct {
	re           *regexp.Regexp
	ownerIndex   int
	patternIndex int
}

// patternSet is the hand-rolled equivalent of a regex-set: it runs each
// member pattern against the line in turn and reports every match, each tagged
// with which owner and which pattern within that owner matched. Go's
// regexp package has no native RegexSet; compiledPattern's two parallel
// indices are exactly the index arrays the original regex-set crate
// exposes.
type patternSet struct {
	entries    []compiledPattern
	totalBytes int
}

// patternSetEntry groups a single owner's already-compiled patterns,
// keyed by that owner's index in the manager's trigger/alias slice.
type patternSetEntry struct {
	ownerIndex int
	patterns   []*regexp.Regexp
}

// newPatternSet assembles entries into a patternSet, enforcing
// maxPatternSetBytes over the sum of all member patterns' source
// lengths.
func newPatternSet(entries []patternSetEntry) (*patternSet, error) {
	ps := &patternSet{}
	for _, e := range entries {
		for patIdx, re := range e.patterns {
			ps.totalBytes += len(re.String())
			if ps.totalBytes > maxPatternSetBytes {
				return nil, ErrPatternSetTooLarge
			}
			ps.entries = append(ps.entries, compiledPattern{re: re, ownerIndex: e.ownerIndex, patternIndex: patIdx})
		}
	}
	return ps, nil
}

// hit is one matching member of a patternSet, along with the subject
// text it was matched against (so captures can be reconstructed later
// without re-running the match).
type hit struct {
	ownerIndex   int
	patternIndex int
	re           *regexp.Regexp
	subject      string
}

// match runs every member pattern against subject and returns every hit,
// in the set's member order.
func (ps *patternSet) match(subject string) []hit {
	if ps == nil {
		return nil
	}
	var hits []hit
	for _, e := range ps.entries {
		if e.re.MatchString(subject) {
			hits = append(hits, hit{ownerIndex: e.ownerIndex, patternIndex: e.patternIndex, re: e.re, subject: subject})
		}
	}
	return hits
}

// anyMatch reports whether any pattern in patterns matches subject; used
// for anti_patterns suppression, which is a plain "does anything match"
// check rather than a full regex-set dispatch.
func anyMatch(patterns []*regexp.Regexp, subject string) bool {
	for _, re := range patterns {
		if re.MatchString(subject) {
			return true
		}
	}
	return false
}

// firstHitByOwner groups hits by ownerIndex, keeping only the
// first-encountered hit per owner (the spec's "for each group take the
// first match's pattern index"), and returns the owners in ascending
// index order for deterministic processing.
func firstHitByOwner(hits []hit) (map[int]hit, []int) {
	byOwner := make(map[int]hit, len(hits))
	for _, h := range hits {
		if _, ok := byOwner[h.ownerIndex]; !ok {
			byOwner[h.ownerIndex] = h
		}
	}
	owners := make([]int, 0, len(byOwner))
	for idx := range byOwner {
		owners = append(owners, idx)
	}
	sortInts(owners)
	return byOwner, owners
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// buildCaptures reconstructs the ordered capture list for a single match
// of re against h's subject: "$0" the whole match, "$1".."$k" positional,
// named groups keeping their own name.
func buildCaptures(h hit) []Capture {
	m := h.re.FindStringSubmatch(h.subject)
	if m == nil {
		return nil
	}
	names := h.re.SubexpNames()
	caps := make([]Capture, len(m))
	for i, v := range m {
		if i == 0 {
			caps[i] = Capture{Key: "$0", Value: v}
			continue
		}
		if i < len(names) && names[i] != "" {
			caps[i] = Capture{Key: names[i], Value: v}
		} else {
			caps[i] = Capture{Key: "$" + strconv.Itoa(i), Value: v}
		}
	}
	return caps
}
