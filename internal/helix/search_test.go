package helix

import "testing"

func Test_findPattern(t *testing.T) {
	// ATCG occurs at 0, 4 and 8, its reverse complement CGAT at 2 and 6
	matches := findPattern("ATCGATCGATCG", "atcg", false)

	if len(matches) != 5 {
		t.Fatalf("findPattern() found %d matches, want 5", len(matches))
	}

	wantStarts := []int{0, 2, 4, 6, 8}
	wantComplement := []bool{false, true, false, true, false}
	for i, m := range matches {
		if m.Start != wantStarts[i] {
			t.Errorf("findPattern()[%d].Start = %d, want %d", i, m.Start, wantStarts[i])
		}
		if m.End != m.Start+4 {
			t.Errorf("findPattern()[%d].End = %d, want %d", i, m.End, m.Start+4)
		}
		if m.Complement != wantComplement[i] {
			t.Errorf("findPattern()[%d].Complement = %v, want %v", i, m.Complement, wantComplement[i])
		}
	}
}

// a palindromic pattern matches both strands at the same span: it's
// reported once
func Test_findPattern_palindrome(t *testing.T) {
	matches := findPattern("TTGAATTCTT", "GAATTC", false)

	if len(matches) != 1 {
		t.Fatalf("findPattern() found %d matches, want 1", len(matches))
	}
	if matches[0].Start != 2 || matches[0].End != 8 || matches[0].Complement {
		t.Errorf("findPattern()[0] = %+v, want a forward match at [2:8]", matches[0])
	}
}

// on a circular sequence a match can cross the origin, with End wrapping
// below Start
func Test_findPattern_circular(t *testing.T) {
	matches := findPattern("GGATCC", "CCGG", true)

	if len(matches) != 1 {
		t.Fatalf("findPattern() found %d matches, want 1", len(matches))
	}
	if matches[0].Start != 4 || matches[0].End != 2 {
		t.Errorf("findPattern()[0] span = [%d:%d], want [4:2] across the origin", matches[0].Start, matches[0].End)
	}

	// the same search on the linear sequence finds nothing
	if matches := findPattern("GGATCC", "CCGG", false); len(matches) != 0 {
		t.Errorf("findPattern() on the linear sequence found %d matches, want 0", len(matches))
	}
}

func Test_findPattern_empty(t *testing.T) {
	if matches := findPattern("", "ACGT", false); matches != nil {
		t.Errorf("findPattern() on an empty sequence = %v, want nil", matches)
	}
	if matches := findPattern("ACGT", "", false); matches != nil {
		t.Errorf("findPattern() with an empty pattern = %v, want nil", matches)
	}
}

func Test_findRegex(t *testing.T) {
	matches, err := findRegex("ATCGATAG", "at.g", false)
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 2 {
		t.Fatalf("findRegex() found %d matches, want 2", len(matches))
	}
	if matches[0].Start != 0 || matches[0].End != 4 || matches[0].Seq != "ATCG" {
		t.Errorf("findRegex()[0] = %+v, want ATCG at [0:4]", matches[0])
	}
	if matches[1].Start != 4 || matches[1].End != 8 || matches[1].Seq != "ATAG" {
		t.Errorf("findRegex()[1] = %+v, want ATAG at [4:8]", matches[1])
	}
}

func Test_findRegex_circular(t *testing.T) {
	matches, err := findRegex("GGATCC", "CCGG", true)
	if err != nil {
		t.Fatal(err)
	}

	if len(matches) != 1 {
		t.Fatalf("findRegex() found %d matches, want 1", len(matches))
	}
	if matches[0].Start != 4 || matches[0].End != 2 {
		t.Errorf("findRegex()[0] span = [%d:%d], want [4:2] across the origin", matches[0].Start, matches[0].End)
	}
}

func Test_findRegex_invalid(t *testing.T) {
	if _, err := findRegex("ACGT", "(", false); err == nil {
		t.Error("findRegex() with an invalid pattern should error")
	}
}
