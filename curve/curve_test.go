package curve

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		curve Curve
		kind  Kind // "" means valid
	}{
		{name: "Empty", curve: nil},
		{name: "MinimalValid", curve: Curve{1, 5, 10}},
		{name: "TwoSegments", curve: Curve{1, 5, 10, 2, -1, 7, 20}},
		{name: "FirstBoundJustAboveOne", curve: Curve{1, 0, 2}},
		{name: "NegativeCoefficientsAllowed", curve: Curve{3, -4, 0, 9, 100}},
		{name: "EndBoundAtFinalIndex", curve: Curve{2, 1, 2, 9}},
		{name: "LastSegmentBoundAtFinalIndex", curve: Curve{2, 1, 2, 4, 1, 3, 9}},

		{name: "BoundEqualsPrev", curve: Curve{1, 5, 1}, kind: KindNonIncreasingBound},
		{name: "BoundEqualsOne", curve: Curve{2, 1, 2, 5, 1, 3, 1}, kind: KindNonIncreasingBound},
		{name: "SecondBoundNotAbove", curve: Curve{1, 5, 10, 1, 6, 10}, kind: KindNonIncreasingBound},
		{name: "BoundBelowPrev", curve: Curve{1, 5, 10, 1, 6, 4}, kind: KindNonIncreasingBound},

		{name: "ZeroLength", curve: Curve{0, 10}, kind: KindNonPositiveSegmentLength},
		{name: "NegativeLength", curve: Curve{-2, 10}, kind: KindNonPositiveSegmentLength},
		{name: "ZeroLengthSecondSegment", curve: Curve{1, 5, 10, 0, 20}, kind: KindNonPositiveSegmentLength},

		{name: "LengthRunsPastEnd", curve: Curve{2, 1, 2}, kind: KindSegmentOverflow},
		{name: "EndBoundAtArrayLength", curve: Curve{2, 1, 2, 5, 1, 9}, kind: KindSegmentOverflow},
		{name: "LoneLength", curve: Curve{1}, kind: KindSegmentOverflow},
		{name: "HugeLength", curve: Curve{1 << 40, 5, 10}, kind: KindSegmentOverflow},
		{name: "MaxInt64Length", curve: Curve{math.MaxInt64, 5, 10}, kind: KindSegmentOverflow},
		{name: "MaxInt64LengthSecondSegment", curve: Curve{1, 5, 10, math.MaxInt64, 6, 20}, kind: KindSegmentOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.curve)
			if tc.kind == "" {
				if err != nil {
					t.Fatalf("Validate(%v): unexpected error %v", tc.curve, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate(%v): expected %s, got nil", tc.curve, tc.kind)
			}
			if !IsKind(err, tc.kind) {
				t.Fatalf("Validate(%v): got %v, want kind %s", tc.curve, err, tc.kind)
			}
		})
	}
}

func TestValidateErrorCursor(t *testing.T) {
	err := Validate(Curve{1, 5, 10, 0, 20})
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Cursor != 3 {
		t.Fatalf("cursor: got %d want 3", e.Cursor)
	}

	err = Validate(Curve{1, 5, 1})
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Cursor != 2 {
		t.Fatalf("bound cursor: got %d want 2", e.Cursor)
	}
}

func TestSegments(t *testing.T) {
	segs, err := Segments(Curve{1, 5, 10, 2, -1, 7, 20})
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("segment count: got %d want 2", len(segs))
	}
	if len(segs[0].Coeffs) != 1 || segs[0].Coeffs[0] != 5 || segs[0].End != 10 {
		t.Fatalf("segment 0: got %+v", segs[0])
	}
	if len(segs[1].Coeffs) != 2 || segs[1].Coeffs[0] != -1 || segs[1].Coeffs[1] != 7 || segs[1].End != 20 {
		t.Fatalf("segment 1: got %+v", segs[1])
	}

	if _, err := Segments(Curve{0, 10}); !IsKind(err, KindNonPositiveSegmentLength) {
		t.Fatalf("Segments of invalid curve: got %v", err)
	}
}

func TestSegmentsCopyCoefficients(t *testing.T) {
	c := Curve{1, 5, 10}
	segs, err := Segments(c)
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}
	segs[0].Coeffs[0] = 99
	if c[1] != 5 {
		t.Fatalf("Segments aliased the input curve")
	}
}
