package queries

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage clamps offset/limit pagination parameters: from to [0, ∞),
// size to [1, MaxPageSize] with a default when unset.
func NormalizePage(from, size int) (int, int) {
	if from < 0 {
		from = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return from, size
}
