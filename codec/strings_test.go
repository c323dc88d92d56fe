package codec

import (
	"bytes"
	"testing"

	"github.com/wippyai/cql-codec/cqltype"
	"github.com/wippyai/cql-codec/errors"
	"github.com/wippyai/cql-codec/frame"
)

func TestText_RoundTrip(t *testing.T) {
	for _, typ := range []*cqltype.Type{cqltype.TypeText, cqltype.TypeVarchar} {
		for _, s := range []string{"", "hello", "Zażółć gęślą jaźń", "🦀"} {
			if got := roundTrip(t, Text, typ, s); got != s {
				t.Errorf("%v round trip %q = %q", typ, s, got)
			}
		}
	}
}

func TestText_AsciiRejectsNonAscii(t *testing.T) {
	// valid UTF-8, but not 7-bit
	_, err := decode[string](t, Text, cqltype.TypeAscii, []byte("Zażółć"))
	wantKind(t, err, errors.KindExpectedAscii)

	got, err := decode[string](t, Text, cqltype.TypeText, []byte("Zażółć"))
	if err != nil || got != "Zażółć" {
		t.Errorf("text decode = %q, %v", got, err)
	}

	if got := roundTrip(t, Text, cqltype.TypeAscii, "plain ascii"); got != "plain ascii" {
		t.Errorf("ascii round trip = %q", got)
	}

	w := frame.NewCellWriter()
	_, err = Text.Encode(cqltype.TypeAscii, "Zażółć", w)
	wantKind(t, err, errors.KindExpectedAscii)
}

func TestText_InvalidUTF8(t *testing.T) {
	_, err := decode[string](t, Text, cqltype.TypeText, []byte{0xff, 0xfe})
	wantKind(t, err, errors.KindInvalidUTF8)
}

func TestBlob_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	got, err := decode[[]byte](t, Blob, cqltype.TypeBlob, src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	src[0] = 99
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("decoded blob aliases the buffer: %v", got)
	}
}

func TestSharedBlob_Aliases(t *testing.T) {
	src := []byte{1, 2, 3}
	got, err := decode[frame.SharedBytes](t, SharedBlob, cqltype.TypeBlob, src)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	src[0] = 99
	if got[0] != 99 {
		t.Error("shared blob should alias the buffer")
	}
}

func TestBlob_EmptyIsAValue(t *testing.T) {
	got, err := decode[[]byte](t, Blob, cqltype.TypeBlob, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty blob = %v", got)
	}
}
