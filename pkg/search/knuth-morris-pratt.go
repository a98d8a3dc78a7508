package search

// KnuthMorrisPratt pre-analyzes the pattern into a failure table and then scans
// the text exactly once. On a mismatch it falls back through the table instead
// of moving the text cursor backwards, so the whole search is O(n+m). It pays
// off most when the table is computed once and reused across many texts.
type KnuthMorrisPratt struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPratt {
	return new(KnuthMorrisPratt)
}

func (kmp *KnuthMorrisPratt) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPratt) FindIndex(text, pattern []byte) int {
	return Compile(pattern).Index(text)
}

func (kmp *KnuthMorrisPratt) FindIndexString(text, pattern string) int {
	return CompileString(pattern).Index([]byte(text))
}

func (kmp *KnuthMorrisPratt) FindAll(text, pattern []byte) []int {
	return IndexAll(text, pattern)
}

func (kmp *KnuthMorrisPratt) FindAllString(text, pattern string) []int {
	return IndexAllString(text, pattern)
}

// FailureTable returns, for every prefix pattern[0..i], the length of the
// longest proper prefix of it that is also a suffix. The table has exactly
// len(pattern) entries and table[0] is always 0. An empty pattern yields an
// empty table.
func FailureTable[T comparable](pattern []T) []int {
	m := len(pattern)
	table := make([]int, m)
	length := 0
	for i := 1; i < m; {
		switch {
		case pattern[i] == pattern[length]:
			length++
			table[i] = length
			i++
		case length != 0:
			// retry the same position against a shorter border
			length = table[length-1]
		default:
			table[i] = 0
			i++
		}
	}
	return table
}

// FailureTableString is FailureTable over the bytes of a string.
func FailureTableString(pattern string) []int {
	return FailureTable([]byte(pattern))
}

// IndexAll returns the start offset of every occurrence of pattern in text,
// in ascending order and including overlapping occurrences. An empty pattern
// matches nowhere.
func IndexAll[T comparable](text, pattern []T) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}
	return scan(text, pattern, FailureTable(pattern), -1)
}

// IndexAllTable is IndexAll with a failure table computed beforehand by
// FailureTable. A table that does not belong to a pattern of this length is
// rebuilt instead of trusted.
func IndexAllTable[T comparable](text, pattern []T, table []int) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}
	if len(table) != len(pattern) {
		table = FailureTable(pattern)
	}
	return scan(text, pattern, table, -1)
}

// IndexAllString is IndexAll over the bytes of two strings.
func IndexAllString(text, pattern string) []int {
	return IndexAll([]byte(text), []byte(pattern))
}

// scan is the single pass over text. It stops after limit matches when
// limit is positive.
func scan[T comparable](text, pattern []T, table []int, limit int) []int {
	var matches []int
	n, m := len(text), len(pattern)
	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				matches = append(matches, i-j)
				if limit > 0 && len(matches) == limit {
					return matches
				}
				j = table[j-1]
			}
			continue
		}
		if j != 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return matches
}

// count walks the text like scan but only tallies the matches.
func count[T comparable](text, pattern []T, table []int) int {
	var c int
	n, m := len(text), len(pattern)
	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				c++
				j = table[j-1]
			}
			continue
		}
		if j != 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return c
}
