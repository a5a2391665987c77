package keyspace

import (
	"strings"
	"testing"
)

func TestDeriveDeterministic(t *testing.T) {
	id, err := ParseIdentity("0x00112233445566778899aabbccddeeff00112233")
	if err != nil {
		t.Fatalf("ParseIdentity: %v", err)
	}
	a := Derive(Tag("oracles"), ID(id), Tag("title"))
	b := Derive(Tag("oracles"), ID(id), Tag("title"))
	if a == "" {
		t.Fatalf("Derive returned empty key")
	}
	if a != b {
		t.Fatalf("Derive not deterministic: %s vs %s", a, b)
	}
}

func TestDeriveBoundariesUnambiguous(t *testing.T) {
	// Concatenation must not erase segment boundaries.
	if Derive(Tag("ab"), Tag("c")) == Derive(Tag("a"), Tag("bc")) {
		t.Fatalf(`("ab","c") and ("a","bc") derived the same key`)
	}
	if Derive(Tag("abc")) == Derive(Tag("ab"), Tag("c")) {
		t.Fatalf(`("abc") and ("ab","c") derived the same key`)
	}
}

func TestDeriveKindsDistinct(t *testing.T) {
	// A tag and a label carrying the same bytes are different segments.
	var l Label
	copy(l[:], "title")
	if Derive(Tag(string(l[:]))) == Derive(Lbl(l)) {
		t.Fatalf("tag and label with identical bytes derived the same key")
	}
}

func TestDeriveDistinctPaths(t *testing.T) {
	idA, _ := ParseIdentity("0x0000000000000000000000000000000000000001")
	idB, _ := ParseIdentity("0x0000000000000000000000000000000000000002")
	seen := map[Key]string{}
	paths := map[string][]Segment{
		"index":     {Tag("oracleIndex")},
		"titleA":    {Tag("oracles"), ID(idA), Tag("title")},
		"titleB":    {Tag("oracles"), ID(idB), Tag("title")},
		"keyA":      {Tag("oracles"), ID(idA), Tag("publicKey")},
		"curveA":    {Tag("oracles"), ID(idA), Tag("curves"), Lbl(MustLabel("spot"))},
		"curveA2":   {Tag("oracles"), ID(idA), Tag("curves"), Lbl(MustLabel("stream"))},
		"epParamsA": {Tag("oracles"), ID(idA), Tag("endpointParams"), Lbl(MustLabel("spot"))},
	}
	for name, p := range paths {
		k := Derive(p...)
		if prev, ok := seen[k]; ok {
			t.Fatalf("paths %q and %q collided on %s", prev, name, k)
		}
		seen[k] = name
	}
}

func TestLabelRoundTrip(t *testing.T) {
	l, err := LabelFromString("on-chain")
	if err != nil {
		t.Fatalf("LabelFromString: %v", err)
	}
	if l.IsZero() {
		t.Fatalf("non-empty label reported zero")
	}
	if got := l.String(); got != "on-chain" {
		t.Fatalf("label round trip: got %q", got)
	}
	if _, err := LabelFromString(strings.Repeat("x", LabelSize+1)); err == nil {
		t.Fatalf("oversize label accepted")
	}
	var zero Label
	if !zero.IsZero() || zero.String() != "" {
		t.Fatalf("zero label misreported")
	}
}

func TestParseIdentity(t *testing.T) {
	id, err := ParseIdentity("00112233445566778899aabbccddeeff00112233")
	if err != nil {
		t.Fatalf("ParseIdentity without prefix: %v", err)
	}
	if id.String() != "0x00112233445566778899aabbccddeeff00112233" {
		t.Fatalf("identity string: got %s", id.String())
	}
	if _, err := ParseIdentity("0x1234"); err == nil {
		t.Fatalf("short identity accepted")
	}
	if _, err := ParseIdentity("zz112233445566778899aabbccddeeff00112233"); err == nil {
		t.Fatalf("non-hex identity accepted")
	}
}
