package search

// Pattern is a pattern whose failure table has already been built. It is
// never modified after Compile returns, so a single Pattern may be shared by
// any number of goroutines searching different texts.
type Pattern[T comparable] struct {
	symbols []T
	table   []int
}

// Compile copies pattern and builds its failure table.
func Compile[T comparable](pattern []T) *Pattern[T] {
	symbols := make([]T, len(pattern))
	copy(symbols, pattern)
	return &Pattern[T]{
		symbols: symbols,
		table:   FailureTable(symbols),
	}
}

// CompileString compiles the bytes of pattern.
func CompileString(pattern string) *Pattern[byte] {
	return &Pattern[byte]{
		symbols: []byte(pattern),
		table:   FailureTableString(pattern),
	}
}

// Len returns the number of symbols in the pattern.
func (p *Pattern[T]) Len() int {
	return len(p.symbols)
}

// Table returns a copy of the failure table.
func (p *Pattern[T]) Table() []int {
	table := make([]int, len(p.table))
	copy(table, p.table)
	return table
}

// IndexAll returns every (possibly overlapping) start offset of the pattern
// in text, in ascending order.
func (p *Pattern[T]) IndexAll(text []T) []int {
	if !p.fits(text) {
		return nil
	}
	return scan(text, p.symbols, p.table, -1)
}

// Index returns the offset of the first occurrence in text, or -1.
func (p *Pattern[T]) Index(text []T) int {
	if !p.fits(text) {
		return -1
	}
	if nn := scan(text, p.symbols, p.table, 1); len(nn) > 0 {
		return nn[0]
	}
	return -1
}

// Count returns the number of overlapping occurrences in text.
func (p *Pattern[T]) Count(text []T) int {
	if !p.fits(text) {
		return 0
	}
	return count(text, p.symbols, p.table)
}

func (p *Pattern[T]) fits(text []T) bool {
	return len(p.symbols) > 0 && len(p.symbols) <= len(text)
}
