package prefix

import "strings"

// Delimiter separates the sequence letter from the rest of a file name.
const Delimiter = '_'

const alphabetSize = 'z' - 'a' + 1

// Letters is the set of sequence letters already taken for a date prefix.
type Letters [alphabetSize]bool

// Add marks letter as used. Anything outside 'a'..'z' is ignored.
func (l *Letters) Add(letter byte) {
	if letter >= 'a' && letter <= 'z' {
		l[letter-'a'] = true
	}
}

// Next returns the smallest unused letter. ok is false when all are taken.
func (l *Letters) Next() (letter byte, ok bool) {
	for i, used := range l {
		if !used {
			return byte('a' + i), true
		}
	}
	return 0, false
}

// Sorted returns the used letters in alphabetical order.
func (l *Letters) Sorted() []string {
	var out []string
	for i, used := range l {
		if used {
			out = append(out, string(rune('a'+i)))
		}
	}
	return out
}

// Match extracts the sequence letter from name when it has the form
// datePrefix + one lowercase ASCII letter + Delimiter + anything.
func Match(name, datePrefix string) (letter byte, ok bool) {
	rest, found := strings.CutPrefix(name, datePrefix)
	if !found || len(rest) < 2 {
		return 0, false
	}
	if rest[0] < 'a' || rest[0] > 'z' || rest[1] != Delimiter {
		return 0, false
	}
	return rest[0], true
}

// Collect builds the used-letter set for datePrefix from a list of names.
func Collect(names []string, datePrefix string) Letters {
	var used Letters
	for _, n := range names {
		if letter, ok := Match(n, datePrefix); ok {
			used.Add(letter)
		}
	}
	return used
}
