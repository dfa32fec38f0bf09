package flatgrid

import "iter"

// FromSeq builds a grid from an iterator of rows, collecting them and
// delegating to [From]. Useful when rows arrive from a generator or
// pipeline.
func FromSeq[T any](seq iter.Seq[[]T]) *Grid {
	var data [][]T
	for row := range seq {
		data = append(data, row)
	}
	return From(data)
}

// FromChan builds a grid from a channel of rows. It is a thin wrapper around
// [FromSeq] and returns once the channel closes.
func FromChan[T any](ch <-chan []T) *Grid {
	return FromSeq(chanToSeq(ch))
}

func chanToSeq[T any](ch <-chan []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for row := range ch {
			if !yield(row) {
				return
			}
		}
	}
}
