// Package codec provides alternate wire serializations of a decoded
// typedstream sequence, for shipping decoder output to another process
// or dumping it for a human to read.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/mattt/typedstream"
)

// mirrorObject and mirrorArchivable are CBOR/JSON-friendly projections of
// typedstream's closed sum types. typedstream.Archivable and
// typedstream.Object carry every union arm as a plain field gated by a
// Kind discriminant, which round-trips through both encoders without a
// custom Marshaler.
type mirrorObject struct {
	Kind            typedstream.ObjectKind `cbor:"kind" json:"kind"`
	Str             string                 `cbor:"str,omitempty" json:"str,omitempty"`
	SignedInteger   int64                  `cbor:"signed_integer,omitempty" json:"signed_integer,omitempty"`
	UnsignedInteger uint64                 `cbor:"unsigned_integer,omitempty" json:"unsigned_integer,omitempty"`
	Float32         float32                `cbor:"float32,omitempty" json:"float32,omitempty"`
	Float64         float64                `cbor:"float64,omitempty" json:"float64,omitempty"`
	Byte            byte                   `cbor:"byte,omitempty" json:"byte,omitempty"`
	Bytes           []byte                 `cbor:"bytes,omitempty" json:"bytes,omitempty"`
	ClassName       string                 `cbor:"class_name,omitempty" json:"class_name,omitempty"`
	ClassVersion    uint64                 `cbor:"class_version,omitempty" json:"class_version,omitempty"`
}

type mirrorArchivable struct {
	Kind         typedstream.ArchivableKind `cbor:"kind" json:"kind"`
	ClassName    string                     `cbor:"class_name,omitempty" json:"class_name,omitempty"`
	ClassVersion uint64                     `cbor:"class_version,omitempty" json:"class_version,omitempty"`
	Values       []mirrorObject             `cbor:"values,omitempty" json:"values,omitempty"`
}

func toMirror(a typedstream.Archivable) mirrorArchivable {
	m := mirrorArchivable{
		Kind:         a.Kind,
		ClassName:    a.Class.Name,
		ClassVersion: a.Class.Version,
	}
	for _, v := range a.Values {
		m.Values = append(m.Values, mirrorObject{
			Kind:            v.Kind,
			Str:             v.Str,
			SignedInteger:   v.SignedInteger,
			UnsignedInteger: v.UnsignedInteger,
			Float32:         v.Float32,
			Float64:         v.Float64,
			Byte:            v.Byte,
			Bytes:           v.Bytes,
			ClassName:       v.Class.Name,
			ClassVersion:    v.Class.Version,
		})
	}
	return m
}

func fromMirror(m mirrorArchivable) typedstream.Archivable {
	a := typedstream.Archivable{
		Kind:  m.Kind,
		Class: typedstream.Class{Name: m.ClassName, Version: m.ClassVersion},
	}
	for _, v := range m.Values {
		a.Values = append(a.Values, typedstream.Object{
			Kind:            v.Kind,
			Str:             v.Str,
			SignedInteger:   v.SignedInteger,
			UnsignedInteger: v.UnsignedInteger,
			Float32:         v.Float32,
			Float64:         v.Float64,
			Byte:            v.Byte,
			Bytes:           v.Bytes,
			Class:           typedstream.Class{Name: v.ClassName, Version: v.ClassVersion},
		})
	}
	return a
}

// EncodeCBOR serializes a decoded sequence to CBOR.
func EncodeCBOR(archivables []typedstream.Archivable) ([]byte, error) {
	mirrors := make([]mirrorArchivable, len(archivables))
	for i, a := range archivables {
		mirrors[i] = toMirror(a)
	}
	out, err := cbor.Marshal(mirrors)
	if err != nil {
		return nil, fmt.Errorf("codec: encode cbor: %w", err)
	}
	return out, nil
}

// DecodeCBOR deserializes a sequence previously written by EncodeCBOR.
func DecodeCBOR(buf []byte) ([]typedstream.Archivable, error) {
	var mirrors []mirrorArchivable
	if err := cbor.Unmarshal(buf, &mirrors); err != nil {
		return nil, fmt.Errorf("codec: decode cbor: %w", err)
	}
	out := make([]typedstream.Archivable, len(mirrors))
	for i, m := range mirrors {
		out[i] = fromMirror(m)
	}
	return out, nil
}

// EncodeJSON serializes a decoded sequence to indented JSON for human
// inspection. The stdlib encoder is the right tool here: this is a
// write-only debugging path, not a hot parse loop that would benefit
// from a SIMD reader.
func EncodeJSON(archivables []typedstream.Archivable) ([]byte, error) {
	mirrors := make([]mirrorArchivable, len(archivables))
	for i, a := range archivables {
		mirrors[i] = toMirror(a)
	}
	out, err := json.MarshalIndent(mirrors, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return out, nil
}
