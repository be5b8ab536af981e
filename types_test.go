package typedstream

import "testing"

func TestReadTypeArrayForm(t *testing.T) {
	d := newDecoder([]byte{0x05, '[', '1', '6', 'c', ']'})
	tl, err := d.readType()
	if err != nil {
		t.Fatalf("readType() error = %v", err)
	}
	if len(tl) != 1 || tl[0].Kind != TypeArray || tl[0].ArrayLen != 16 {
		t.Fatalf("readType() = %+v; want [TypeArray len=16]", tl)
	}
}

func TestReadTypeArrayNoDigitsError(t *testing.T) {
	d := newDecoder([]byte{0x03, '[', 'c', ']'})
	_, err := d.readType()
	if _, ok := err.(*InvalidArrayError); !ok {
		t.Fatalf("readType() error = %T; want *InvalidArrayError", err)
	}
}

func TestReadTypeArrayNonPositiveLengthError(t *testing.T) {
	d := newDecoder([]byte{0x04, '[', '0', 'c', ']'})
	_, err := d.readType()
	if _, ok := err.(*InvalidArrayError); !ok {
		t.Fatalf("readType() error = %T; want *InvalidArrayError", err)
	}
}

// TestGetTypeBackReferenceWithCollapsedRepeat exercises the Types Table
// back-reference path: a freshly-interned type is looked up again through
// a run of repeated pointer-range bytes, which collapseRepeats must walk
// past before reading the actual pointer.
func TestGetTypeBackReferenceWithCollapsedRepeat(t *testing.T) {
	buf := []byte{tagStart, 0x01, 'i', referenceTag, referenceTag}
	d := newDecoder(buf)

	first, ok, err := d.getType(false)
	if err != nil || !ok {
		t.Fatalf("first getType() = %v, %v, %v", first, ok, err)
	}
	if len(first) != 1 || first[0].Kind != TypeSignedInt {
		t.Fatalf("first getType() = %+v; want [TypeSignedInt]", first)
	}

	second, ok, err := d.getType(false)
	if err != nil || !ok {
		t.Fatalf("second getType() = %v, %v, %v", second, ok, err)
	}
	if len(second) != 1 || second[0].Kind != TypeSignedInt {
		t.Fatalf("second getType() (back-reference) = %+v; want [TypeSignedInt]", second)
	}
	if !d.r.done() {
		t.Fatalf("reader not exhausted: cursor=%d len=%d", d.r.cursor, d.r.len())
	}
}

func TestGetTypeInvalidPointerBelowReferenceTag(t *testing.T) {
	d := newDecoder([]byte{0x10})
	_, _, err := d.getType(false)
	perr, ok := err.(*InvalidPointerError)
	if !ok {
		t.Fatalf("getType() error = %T; want *InvalidPointerError", err)
	}
	if perr.Byte != 0x10 {
		t.Fatalf("InvalidPointerError.Byte = 0x%02X; want 0x10", perr.Byte)
	}
}

// TestInternEmbeddedTypeOnlyOnce is a direct test of the interning
// invariant: a Types Table row visited more than once through an embedded
// context is appended to the Objects Table only the first time.
func TestInternEmbeddedTypeOnlyOnce(t *testing.T) {
	d := newDecoder(nil)
	d.types = []TypeList{{{Kind: TypeSignedInt}}}
	d.embeddedSeen = []bool{false}

	d.internEmbeddedType(0)
	d.internEmbeddedType(0)
	d.internEmbeddedType(0)

	if len(d.objects) != 1 {
		t.Fatalf("d.objects has %d entries after three interns of the same index; want 1", len(d.objects))
	}
	if d.objects[0].Kind != ArchivableType {
		t.Fatalf("d.objects[0].Kind = %v; want ArchivableType", d.objects[0].Kind)
	}
}

// TestDecodeEmbeddedDataInternsTypeExactlyOnce is the end-to-end version of
// the same invariant: two embedded_data records, the second one
// back-referencing the first's inner type, decode to independent data
// records while the interning happens only once underneath.
func TestDecodeEmbeddedDataInternsTypeExactlyOnce(t *testing.T) {
	body := []byte{
		// record 1: embedded_data wrapping a fresh signed_int type, value 7
		tagStart, 0x01, byteEmbeddedData,
		tagStart,
		tagStart, 0x01, 'i',
		0x07,
		// record 2: embedded_data wrapping a back-reference to the same
		// inner type, value 9
		tagStart, 0x01, byteEmbeddedData,
		tagStart,
		referenceTag + 1,
		0x09,
	}
	buf := append(append([]byte{}, minimalHeader...), body...)

	out, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("Decode() = %d records; want 2", len(out))
	}
	for i, want := range []int64{7, 9} {
		got := out[i]
		if got.Kind != ArchivableData {
			t.Fatalf("record %d Kind = %v; want ArchivableData", i, got.Kind)
		}
		if len(got.Values) != 1 || got.Values[0].SignedInteger != want {
			t.Fatalf("record %d values = %+v; want [signed_int %d]", i, got.Values, want)
		}
	}

	// Replay the same stream on an inspectable Decoder to see the tables.
	d := newDecoder(buf)
	if err := d.readHeader(); err != nil {
		t.Fatalf("readHeader() error = %v", err)
	}
	for !d.r.done() {
		tl, ok, err := d.getType(false)
		if err != nil || !ok {
			t.Fatalf("getType() = %v, %v, %v", tl, ok, err)
		}
		if _, _, err := d.readTypes(tl); err != nil {
			t.Fatalf("readTypes() error = %v", err)
		}
	}
	if len(d.objects) != 1 || d.objects[0].Kind != ArchivableType {
		t.Fatalf("d.objects = %+v; want exactly one ArchivableType entry", d.objects)
	}
}
