package termbuf

import (
	"strings"
	"testing"

	"smudgy/styledline"
)

func plain(s string) styledline.StyledLine {
	return styledline.New(s, nil)
}

func TestPushLineIncrementsLastLineNumber(t *testing.T) {
	b := New(10)
	b.PushLine(plain("one"))
	b.PushLine(plain("two"))
	if b.LastLineNumber() != 2 {
		t.Fatalf("expected last line number 2, got %d", b.LastLineNumber())
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", b.Len())
	}
}

func TestExtendLineAppendsToOpenTail(t *testing.T) {
	b := New(10)
	b.ExtendLine(plain("pro"))
	if b.LastLineNumber() != 1 {
		t.Fatalf("expected last line number 1 after first extend, got %d", b.LastLineNumber())
	}
	b.ExtendLine(plain("mpt> "))
	if b.LastLineNumber() != 1 {
		t.Fatalf("extending an open tail must not bump the line number, got %d", b.LastLineNumber())
	}
	if b.Len() != 1 {
		t.Fatalf("expected still 1 line, got %d", b.Len())
	}
	line, _, ok := b.Line(1)
	if !ok || line.Text != "prompt> " {
		t.Fatalf("unexpected tail text %q (ok=%v)", line.Text, ok)
	}
}

func TestExtendLineAfterPushLineStartsNewTail(t *testing.T) {
	b := New(10)
	b.PushLine(plain("closed"))
	b.ExtendLine(plain("open"))
	if b.LastLineNumber() != 2 {
		t.Fatalf("expected last line number 2, got %d", b.LastLineNumber())
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 lines, got %d", b.Len())
	}
}

func TestEvictionFromFrontAtCapacity(t *testing.T) {
	b := New(3)
	b.PushLine(plain("a"))
	b.PushLine(plain("b"))
	b.PushLine(plain("c"))
	b.PushLine(plain("d")) // evicts "a"

	if b.Len() != 3 {
		t.Fatalf("expected 3 lines retained, got %d", b.Len())
	}
	if b.LastLineNumber() != 4 {
		t.Fatalf("expected last line number 4 (monotonic through eviction), got %d", b.LastLineNumber())
	}
	if _, _, ok := b.Line(1); ok {
		t.Fatalf("line 1 should have been evicted")
	}
	line, _, ok := b.Line(4)
	if !ok || line.Text != "d" {
		t.Fatalf("expected line 4 to be \"d\", got %q (ok=%v)", line.Text, ok)
	}
}

func TestForwardAndReverseOrder(t *testing.T) {
	b := New(10)
	b.PushLine(plain("a"))
	b.PushLine(plain("b"))
	b.PushLine(plain("c"))

	var forward []string
	b.Forward(func(l styledline.StyledLine, _ bool) bool {
		forward = append(forward, l.Text)
		return true
	})
	if got := forward; len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("unexpected forward order %v", got)
	}

	var reverse []string
	b.Reverse(func(l styledline.StyledLine, _ bool) bool {
		reverse = append(reverse, l.Text)
		return true
	})
	if got := reverse; len(got) != 3 || got[0] != "c" || got[2] != "a" {
		t.Fatalf("unexpected reverse order %v", got)
	}
}

func TestReverseNumberedReconstructsAbsoluteNumbersAfterEviction(t *testing.T) {
	b := New(2)
	b.PushLine(plain("a")) // 1, evicted
	b.PushLine(plain("b")) // 2
	b.PushLine(plain("c")) // 3

	var nums []uint64
	var texts []string
	b.ReverseNumbered(func(n uint64, l styledline.StyledLine, _ bool) bool {
		nums = append(nums, n)
		texts = append(texts, l.Text)
		return true
	})
	if len(nums) != 2 || nums[0] != 3 || nums[1] != 2 {
		t.Fatalf("unexpected absolute numbers %v", nums)
	}
	if texts[0] != "c" || texts[1] != "b" {
		t.Fatalf("unexpected texts %v", texts)
	}
}

func TestPerformLineOperationGag(t *testing.T) {
	b := New(10)
	b.PushLine(plain("hello"))
	b.PushLine(plain("world"))

	if err := b.PerformLineOperation(1, styledline.LineOperation{Kind: styledline.OpGag}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, gagged, ok := b.Line(1)
	if !ok || !gagged {
		t.Fatalf("expected line 1 to be gagged")
	}
}

func TestPerformLineOperationOnEvictedLineFails(t *testing.T) {
	b := New(1)
	b.PushLine(plain("a"))
	b.PushLine(plain("b")) // evicts "a"

	err := b.PerformLineOperation(1, styledline.LineOperation{Kind: styledline.OpGag})
	if err != ErrLineNotAvailable {
		t.Fatalf("expected ErrLineNotAvailable, got %v", err)
	}
}

func TestPerformLineOperationUnknownLineFails(t *testing.T) {
	b := New(10)
	b.PushLine(plain("a"))

	err := b.PerformLineOperation(99, styledline.LineOperation{Kind: styledline.OpGag})
	if err != ErrLineNotAvailable {
		t.Fatalf("expected ErrLineNotAvailable, got %v", err)
	}
}

func TestExtractTextJoinsRange(t *testing.T) {
	b := New(10)
	b.PushLine(plain("one"))
	b.PushLine(plain("two"))
	b.PushLine(plain("three"))

	got := b.ExtractText(1, 3)
	want := "one\ntwo\nthree"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRecentWordsWithPrefixMatchesByPrefix(t *testing.T) {
	b := New(10)
	b.PushLine(plain("you see a northward exit"))
	b.PushLine(plain("a sword and a northlight lantern lie here"))

	results := b.RecentWordsWithPrefix("north", 5)
	found := map[string]bool{}
	for _, r := range results {
		found[r] = true
	}
	if !found["northward"] || !found["northlight"] {
		t.Fatalf("expected both north-prefixed words among results, got %v", results)
	}
	for _, r := range results {
		if !strings.HasPrefix(r, "north") {
			t.Fatalf("result %q does not share the requested prefix", r)
		}
	}
}

func TestRecentWordsWithPrefixDeduplicatesRepeatedWords(t *testing.T) {
	b := New(10)
	b.PushLine(plain("old gnarled tree"))
	b.PushLine(plain("new gnarled stump"))

	results := b.RecentWordsWithPrefix("gnarled", 5)
	if len(results) != 1 || results[0] != "gnarled" {
		t.Fatalf("expected a single deduplicated match, got %v", results)
	}
}

func TestRecentWordsWithPrefixEmptyPrefix(t *testing.T) {
	b := New(10)
	b.PushLine(plain("hello world"))
	if got := b.RecentWordsWithPrefix("", 5); got != nil {
		t.Fatalf("expected nil for empty prefix, got %v", got)
	}
}
