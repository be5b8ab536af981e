package typedstream

// classResult is the outcome of a class-reader step: either a resolved
// back-reference index into the Objects Table, or a freshly-read chain of
// classes still to be interned by the caller.
type classResult struct {
	isIndex bool
	index   int
	chain   []Class
}

// readClass reads one class descriptor: a start marker (optionally
// repeated) introduces a name+version pair followed by a recursive walk of
// the parent class, an EMPTY byte terminates a chain, and any other byte is
// a back-reference pointer.
func (d *Decoder) readClass() (classResult, error) {
	b, err := d.r.current()
	if err != nil {
		return classResult{}, err
	}

	switch b {
	case tagStart:
		for {
			cur, err := d.r.current()
			if err != nil {
				return classResult{}, err
			}
			if cur != tagStart {
				break
			}
			if err := d.r.advance(1); err != nil {
				return classResult{}, err
			}
		}
		n, err := d.r.readUnsignedInt()
		if err != nil {
			return classResult{}, err
		}
		if n >= uint64(referenceTag) {
			return classResult{isIndex: true, index: int(n) - int(referenceTag)}, nil
		}
		name, err := d.r.readUTF8(int(n))
		if err != nil {
			return classResult{}, err
		}
		version, err := d.r.readUnsignedInt()
		if err != nil {
			return classResult{}, err
		}
		d.types = append(d.types, TypeList{{Kind: TypeStringLiteral, Literal: name}})
		d.embeddedSeen = append(d.embeddedSeen, false)

		parent, err := d.readClass()
		if err != nil {
			return classResult{}, err
		}
		chain := append([]Class{{Name: name, Version: version}}, parent.chain...)
		return classResult{chain: chain}, nil

	case tagEmpty:
		if err := d.r.advance(1); err != nil {
			return classResult{}, err
		}
		return classResult{}, nil

	default:
		p, err := d.r.readByte()
		if err != nil {
			return classResult{}, err
		}
		if p < referenceTag {
			return classResult{}, &InvalidPointerError{Byte: p}
		}
		return classResult{isIndex: true, index: int(p) - int(referenceTag)}, nil
	}
}

// readObject handles the object side of the class/object dispatch: it
// delegates entirely to the class reader, then either resolves a
// back-reference against the Objects Table or interns a freshly-read class
// hierarchy and reports none so the caller continues reading data into the
// reserved placeholder.
func (d *Decoder) readObject() (Archivable, bool, error) {
	result, err := d.readClass()
	if err != nil {
		return Archivable{}, false, err
	}
	if result.isIndex {
		if result.index < 0 || result.index >= len(d.objects) {
			return Archivable{}, false, &InvalidPointerError{Byte: byte(result.index + int(referenceTag))}
		}
		return d.objects[result.index], true, nil
	}
	if len(result.chain) == 0 {
		return Archivable{}, false, nil
	}
	for _, c := range result.chain {
		d.objects = append(d.objects, Archivable{Kind: ArchivableClass, Class: c})
	}
	return Archivable{}, false, nil
}
