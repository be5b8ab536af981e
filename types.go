package typedstream

import (
	"fmt"
	"strconv"
)

// TypeKind discriminates the kinds of symbol that can appear in a
// type-encoding string.
type TypeKind int

const (
	TypeUTF8String TypeKind = iota
	TypeEmbeddedData
	TypeObject
	TypeSignedInt
	TypeUnsignedInt
	TypeFloat
	TypeDouble
	TypeStringLiteral // an interned literal, e.g. a class-name interning slot
	TypeArray
	TypeUnknown
)

// Type is one symbol in a type-encoding string.
type Type struct {
	Kind TypeKind

	ArrayLen int    // TypeArray
	Literal  string // TypeStringLiteral
	Unknown  byte   // TypeUnknown
}

// TypeList is an ordered sequence of Types describing one record.
type TypeList []Type

// getType reads the next type reference at the cursor, either a fresh
// type-encoding string or a back-reference into the Types Table. embedded
// selects whether a freshly-seen Types Table row is also recorded into the
// Objects Table.
func (d *Decoder) getType(embedded bool) (TypeList, bool, error) {
	b, err := d.r.current()
	if err != nil {
		return nil, false, err
	}

	switch b {
	case tagStart:
		if err := d.r.advance(1); err != nil {
			return nil, false, err
		}
		tl, err := d.readType()
		if err != nil {
			return nil, false, err
		}
		index := len(d.types)
		d.types = append(d.types, tl)
		d.embeddedSeen = append(d.embeddedSeen, false)
		if embedded {
			d.internEmbeddedType(index)
		}
		return tl, true, nil

	case tagEnd:
		return nil, false, nil

	default:
		if err := d.collapseRepeats(); err != nil {
			return nil, false, err
		}
		p, err := d.r.readByte()
		if err != nil {
			return nil, false, err
		}
		if p < referenceTag {
			return nil, false, &InvalidPointerError{Byte: p}
		}
		index := int(p) - int(referenceTag)
		if index < 0 || index >= len(d.types) {
			return nil, false, &InvalidPointerError{Byte: p}
		}
		if embedded {
			d.internEmbeddedType(index)
		}
		return d.types[index], true, nil
	}
}

// internEmbeddedType appends type(row) to the Objects Table the first time
// a Types Table row is visited through an embedded context. Later visits to
// the same row through a back-reference are no-ops.
func (d *Decoder) internEmbeddedType(index int) {
	if d.embeddedSeen[index] {
		return
	}
	d.embeddedSeen[index] = true
	d.objects = append(d.objects, Archivable{Kind: ArchivableType, TypeList: d.types[index]})
}

// collapseRepeats advances past consecutive repeated bytes at the cursor
// before a back-reference pointer is read.
func (d *Decoder) collapseRepeats() error {
	for {
		cur, err := d.r.current()
		if err != nil {
			return err
		}
		nxt, err := d.r.next()
		if err != nil {
			return nil
		}
		if cur != nxt {
			return nil
		}
		if err := d.r.advance(1); err != nil {
			return err
		}
	}
}

// readType reads an unsigned length, that many raw bytes, and interprets
// them as either the `[N]` array form or a run of type-byte-table symbols.
func (d *Decoder) readType() (TypeList, error) {
	length, err := d.r.readUnsignedInt()
	if err != nil {
		return nil, err
	}
	raw, err := d.r.readExact(int(length))
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 && raw[0] == byteArrayOpen {
		n, err := parseArrayLength(raw[1:])
		if err != nil {
			return nil, err
		}
		return TypeList{{Kind: TypeArray, ArrayLen: n}}, nil
	}
	out := make(TypeList, 0, len(raw))
	for _, b := range raw {
		out = append(out, typeFromByte(b))
	}
	return out, nil
}

// parseArrayLength parses the decimal digits following `[` in an `[N]`
// array type-encoding.
func parseArrayLength(rest []byte) (int, error) {
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, &InvalidArrayError{Reason: "no digits follow '['"}
	}
	n, err := strconv.Atoi(string(rest[:i]))
	if err != nil {
		return 0, &InvalidArrayError{Reason: err.Error()}
	}
	if n <= 0 {
		return 0, &InvalidArrayError{Reason: fmt.Sprintf("non-positive array length %d", n)}
	}
	return n, nil
}

// typeFromByte maps one type-encoding byte through the type-byte table.
func typeFromByte(b byte) Type {
	switch b {
	case byteObject:
		return Type{Kind: TypeObject}
	case byteEmbeddedData:
		return Type{Kind: TypeEmbeddedData}
	case byteUTF8String:
		return Type{Kind: TypeUTF8String}
	case byteFloat:
		return Type{Kind: TypeFloat}
	case byteDouble:
		return Type{Kind: TypeDouble}
	}
	if isSignedIntByte(b) {
		return Type{Kind: TypeSignedInt}
	}
	if isUnsignedIntByte(b) {
		return Type{Kind: TypeUnsignedInt}
	}
	return Type{Kind: TypeUnknown, Unknown: b}
}
