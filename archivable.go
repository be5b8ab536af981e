package typedstream

// Class is an immutable class descriptor: a name paired with the archived
// version number the writer recorded for it.
type Class struct {
	Name    string
	Version uint64
}

// ObjectKind discriminates the primitive value union a decoded field can
// hold.
type ObjectKind int

const (
	KindString ObjectKind = iota
	KindSignedInteger
	KindUnsignedInteger
	KindFloat
	KindDouble
	KindByte
	KindByteArray
	KindClassRef
)

// Object is one decoded primitive value. Only the field matching Kind is
// meaningful.
type Object struct {
	Kind ObjectKind

	Str             string
	SignedInteger   int64
	UnsignedInteger uint64
	Float32         float32
	Float64         float64
	Byte            byte
	Bytes           []byte
	Class           Class
}

// ArchivableKind discriminates the union of things the decoder can produce,
// either as a top-level record or as a row of the Objects Table.
type ArchivableKind int

const (
	// ArchivableObject is an instance with its ordered, anonymous instance
	// data (typedstream does not store field names; order is positional).
	ArchivableObject ArchivableKind = iota
	// ArchivableData is a free-standing value list not attached to a class.
	ArchivableData
	// ArchivableClass is a bare class appearance.
	ArchivableClass
	// ArchivablePlaceholder is a reserved, temporarily-empty slot in the
	// Objects Table, later overwritten.
	ArchivablePlaceholder
	// ArchivableType is an embedded type list captured verbatim in the
	// Objects Table. Never emitted to callers of Decode.
	ArchivableType
)

// Archivable is one record produced by the decoder, or one row of the
// Objects Table.
type Archivable struct {
	Kind ArchivableKind

	Class    Class    // ArchivableObject, ArchivableClass
	Values   []Object // ArchivableObject, ArchivableData
	TypeList TypeList // ArchivableType
}
