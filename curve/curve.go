// Package curve validates and decodes the flattened piecewise response-curve
// encoding providers publish per endpoint.
//
// A curve is a sequence of segments laid out flat:
//
//	[len0, c0_0 .. c0_{len0-1}, end0, len1, c1_0 .., end1, ...]
//
// where each segment carries a strictly positive coefficient count, that many
// coefficients, and an end bound. End bounds are strictly increasing and the
// first must exceed 1.
package curve

// Curve is the flattened segment encoding. The validated flat form is what
// gets persisted; Validate never re-encodes.
type Curve []int64

// Segment is one decoded piece of a curve.
type Segment struct {
	Coeffs []int64
	End    int64
}

// Validate walks the flattened encoding and returns the first violation, or
// nil if the whole array parses as a well-formed segment sequence.
//
// The walk is all-or-nothing: callers must not persist a curve unless
// Validate returned nil. The empty curve is valid and means "unset".
func Validate(c Curve) error {
	n := int64(len(c))
	cursor := int64(0)
	prevEnd := int64(1)
	for cursor < n {
		length := c[cursor]
		if length <= 0 {
			return newError(KindNonPositiveSegmentLength, cursor,
				"segment length %d at index %d is not positive", length, cursor)
		}
		// Compared without the addition: a length near MaxInt64 would wrap
		// cursor+length+1 negative and slip past the bound check.
		if length >= n-cursor-1 {
			return newError(KindSegmentOverflow, cursor,
				"segment at index %d declares length %d but only %d values remain for coefficients and an end bound",
				cursor, length, n-cursor-1)
		}
		endIdx := cursor + length + 1
		end := c[endIdx]
		if end <= prevEnd {
			return newError(KindNonIncreasingBound, endIdx,
				"end bound %d at index %d does not exceed previous bound %d", end, endIdx, prevEnd)
		}
		prevEnd = end
		cursor += length + 2
	}
	return nil
}

// Segments decodes a curve into its segment sequence. The curve is validated
// first; an invalid curve decodes to nil and the validation error.
func Segments(c Curve) ([]Segment, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	var out []Segment
	cursor := int64(0)
	for cursor < int64(len(c)) {
		length := c[cursor]
		coeffs := make([]int64, length)
		copy(coeffs, c[cursor+1:cursor+1+length])
		out = append(out, Segment{Coeffs: coeffs, End: c[cursor+length+1]})
		cursor += length + 2
	}
	return out, nil
}
