package tape

import "strings"

// Tape is a finite ordered sequence of FatChars. All operations are
// non-destructive: they return new Tape values and never mutate the
// receiver's backing storage in place.
//
// The backing array is shared between a Tape and any prefix or suffix
// sliced from it, so Take, Uncons and SplitPrefix are cheap. Concat
// allocates, since the two operands are not generally adjacent in
// memory; this mirrors the copying strategy the design notes call out
// as correct but potentially O(n^2) on adversarial input.
type Tape struct {
	chars []FatChar
}

// Empty is the zero-length tape.
var Empty = Tape{}

// FromString builds a tape from s, assigning positions as though s were
// scanned left to right starting at (0,0,0).
func FromString(s string) Tape {
	runes := []rune(s)
	chars := make([]FatChar, len(runes))
	pos := Position{}
	for i, r := range runes {
		chars[i] = FatChar{Value: r, Position: pos}
		pos = pos.Advance(r)
	}
	return Tape{chars: chars}
}

// FromChars wraps an existing slice of FatChars as a tape. The slice is
// not copied, so callers must not mutate it afterward.
func FromChars(chars []FatChar) Tape {
	return Tape{chars: chars}
}

// Single returns a one-character tape.
func Single(c FatChar) Tape {
	return Tape{chars: []FatChar{c}}
}

// Chars exposes the underlying slice of FatChars. Callers must treat it
// as read-only.
func (t Tape) Chars() []FatChar {
	return t.chars
}

// Len returns the number of characters remaining in the tape.
func (t Tape) Len() uint64 {
	return uint64(len(t.chars))
}

// IsEmpty reports whether the tape has no characters left.
func (t Tape) IsEmpty() bool {
	return len(t.chars) == 0
}

// Head returns the first character without consuming it.
func (t Tape) Head() (FatChar, bool) {
	if t.IsEmpty() {
		return FatChar{}, false
	}
	return t.chars[0], true
}

// Last returns the final character in the tape.
func (t Tape) Last() (FatChar, bool) {
	if t.IsEmpty() {
		return FatChar{}, false
	}
	return t.chars[len(t.chars)-1], true
}

// Uncons splits the tape into its head character and the remaining tape.
func (t Tape) Uncons() (FatChar, Tape, bool) {
	if t.IsEmpty() {
		return FatChar{}, Tape{}, false
	}
	return t.chars[0], Tape{chars: t.chars[1:]}, true
}

// Take splits the tape into its first n characters and the remainder.
// If the tape is shorter than n, the whole tape is returned as the
// prefix and the remainder is empty.
func (t Tape) Take(n uint64) (prefix, remainder Tape) {
	if n >= uint64(len(t.chars)) {
		return t, Tape{}
	}
	return Tape{chars: t.chars[:n]}, Tape{chars: t.chars[n:]}
}

// SplitPrefix matches s character by character (comparing rune values
// only) against the head of the tape. On a full match it returns the
// matched prefix and the remainder; otherwise it returns false and the
// original tape is unchanged.
func (t Tape) SplitPrefix(s string) (prefix, remainder Tape, ok bool) {
	runes := []rune(s)
	if len(runes) > len(t.chars) {
		return Tape{}, t, false
	}
	for i, r := range runes {
		if t.chars[i].Value != r {
			return Tape{}, t, false
		}
	}
	return Tape{chars: t.chars[:len(runes)]}, Tape{chars: t.chars[len(runes):]}, true
}

// Concat appends other after t, copying into a freshly allocated slice.
func (t Tape) Concat(other Tape) Tape {
	if t.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return t
	}
	chars := make([]FatChar, 0, len(t.chars)+len(other.chars))
	chars = append(chars, t.chars...)
	chars = append(chars, other.chars...)
	return Tape{chars: chars}
}

// ConcatAll concatenates a sequence of tapes in order.
func ConcatAll(tapes ...Tape) Tape {
	result := Empty
	for _, t := range tapes {
		result = result.Concat(t)
	}
	return result
}

// Filter returns a tape containing only the characters for which pred
// returns true, preserving their original positions.
func (t Tape) Filter(pred func(FatChar) bool) Tape {
	chars := make([]FatChar, 0, len(t.chars))
	for _, c := range t.chars {
		if pred(c) {
			chars = append(chars, c)
		}
	}
	return Tape{chars: chars}
}

// MapLines splits the tape on newline characters (the newline itself is
// retained at the end of each line except possibly the last), applies f
// to each line, then concatenates the results back together.
func (t Tape) MapLines(f func(Tape) Tape) Tape {
	var lines []Tape
	start := 0
	for i, c := range t.chars {
		if c.Value == '\n' {
			lines = append(lines, Tape{chars: t.chars[start : i+1]})
			start = i + 1
		}
	}
	if start < len(t.chars) {
		lines = append(lines, Tape{chars: t.chars[start:]})
	}
	mapped := make([]Tape, len(lines))
	for i, line := range lines {
		mapped[i] = f(line)
	}
	return ConcatAll(mapped...)
}

// Equal compares two tapes by character value only, ignoring position.
// This is the notion of "semantic equality" used by the no-progress
// guard in the repetition combinators.
func (t Tape) Equal(other Tape) bool {
	if len(t.chars) != len(other.chars) {
		return false
	}
	for i := range t.chars {
		if t.chars[i].Value != other.chars[i].Value {
			return false
		}
	}
	return true
}

// TrimTrailingWhitespace splits the tape into a leading portion with any
// trailing run of whitespace (spaces, tabs, newlines) removed, and that
// trailing run itself, so it can be put back onto an outer stream.
func (t Tape) TrimTrailingWhitespace() (trimmed, trailing Tape) {
	end := len(t.chars)
	for end > 0 && isPutBackWhitespace(t.chars[end-1].Value) {
		end--
	}
	return Tape{chars: t.chars[:end]}, Tape{chars: t.chars[end:]}
}

func isPutBackWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// String reconstructs the text carried by the tape.
func (t Tape) String() string {
	var sb strings.Builder
	sb.Grow(len(t.chars))
	for _, c := range t.chars {
		sb.WriteRune(c.Value)
	}
	return sb.String()
}
