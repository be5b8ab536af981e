package typedstream

// Decoder holds the mutable state of one decode call: the byte cursor and
// the two append-only interning tables. A Decoder is not safe for concurrent
// or repeated use; Decode constructs a fresh one per call.
type Decoder struct {
	r *reader

	types        []TypeList
	embeddedSeen []bool
	objects      []Archivable

	placeholderActive bool
	placeholderIndex  int
}

func newDecoder(buf []byte) *Decoder {
	return &Decoder{r: newReader(buf)}
}

// readTypes drives one record's object/value assembly. It reads one value
// per Type in list, integrating object-typed fields against the single
// active placeholder, and returns the completed Archivable, if any.
func (d *Decoder) readTypes(list TypeList) (Archivable, bool, error) {
	var local []Object
	isObject := false

	for _, t := range list {
		switch t.Kind {
		case TypeUTF8String:
			n, err := d.r.readUnsignedInt()
			if err != nil {
				return Archivable{}, false, err
			}
			s, err := d.r.readUTF8(int(n))
			if err != nil {
				return Archivable{}, false, err
			}
			local = append(local, Object{Kind: KindString, Str: s})

		case TypeEmbeddedData:
			b, err := d.r.current()
			if err != nil {
				return Archivable{}, false, err
			}
			if b != tagStart {
				return Archivable{}, false, &InvalidHeaderError{Reason: "embedded_data field not followed by START"}
			}
			if err := d.r.advance(1); err != nil {
				return Archivable{}, false, err
			}
			tl, ok, err := d.getType(true)
			if err != nil {
				return Archivable{}, false, err
			}
			if ok {
				arch, has, err := d.readTypes(tl)
				if err != nil {
					return Archivable{}, false, err
				}
				if has {
					return arch, true, nil
				}
			}

		case TypeObject:
			isObject = true
			placeholderIndex := len(d.objects)
			d.objects = append(d.objects, Archivable{Kind: ArchivablePlaceholder})
			d.placeholderActive = true
			d.placeholderIndex = placeholderIndex

			result, has, err := d.readObject()
			if err != nil {
				return Archivable{}, false, err
			}
			if has {
				switch result.Kind {
				case ArchivableObject:
					if len(result.Values) > 0 {
						d.objects = d.objects[:placeholderIndex]
						d.placeholderActive = false
						return result, true, nil
					}
					local = append(local, Object{Kind: KindClassRef, Class: result.Class})
				case ArchivableClass:
					local = append(local, Object{Kind: KindClassRef, Class: result.Class})
				case ArchivableData:
					local = append(local, result.Values...)
				}
			}

		case TypeSignedInt:
			n, err := d.r.readSignedInt()
			if err != nil {
				return Archivable{}, false, err
			}
			local = append(local, Object{Kind: KindSignedInteger, SignedInteger: n})

		case TypeUnsignedInt:
			n, err := d.r.readUnsignedInt()
			if err != nil {
				return Archivable{}, false, err
			}
			local = append(local, Object{Kind: KindUnsignedInteger, UnsignedInteger: n})

		case TypeFloat:
			f, err := d.r.readFloat()
			if err != nil {
				return Archivable{}, false, err
			}
			local = append(local, Object{Kind: KindFloat, Float32: f})

		case TypeDouble:
			f, err := d.r.readDouble()
			if err != nil {
				return Archivable{}, false, err
			}
			local = append(local, Object{Kind: KindDouble, Float64: f})

		case TypeUnknown:
			local = append(local, Object{Kind: KindByte, Byte: t.Unknown})

		case TypeStringLiteral:
			local = append(local, Object{Kind: KindString, Str: t.Literal})

		case TypeArray:
			raw, err := d.r.readExact(t.ArrayLen)
			if err != nil {
				return Archivable{}, false, err
			}
			local = append(local, Object{Kind: KindByteArray, Bytes: raw})
		}
	}

	return d.resolvePlaceholder(local, isObject)
}

// resolvePlaceholder implements the placeholder-resolution step that
// follows the type-list loop.
func (d *Decoder) resolvePlaceholder(local []Object, isObject bool) (Archivable, bool, error) {
	if !d.placeholderActive {
		if len(local) > 0 && !isObject {
			return Archivable{Kind: ArchivableData, Values: local}, true, nil
		}
		return Archivable{}, false, nil
	}
	if len(local) == 0 {
		return Archivable{}, false, nil
	}

	idx := d.placeholderIndex
	last := local[len(local)-1]

	if last.Kind == KindClassRef {
		d.objects[idx] = Archivable{Kind: ArchivableObject, Class: last.Class}
		return Archivable{}, false, nil
	}

	if idx+1 < len(d.objects) && d.objects[idx+1].Kind == ArchivableClass {
		obj := Archivable{Kind: ArchivableObject, Class: d.objects[idx+1].Class, Values: local}
		d.objects[idx] = obj
		d.placeholderActive = false
		return obj, true, nil
	}

	if d.objects[idx].Kind == ArchivableObject {
		obj := d.objects[idx]
		obj.Values = append(obj.Values, local...)
		d.objects[idx] = obj
		d.placeholderActive = false
		return obj, true, nil
	}

	data := Archivable{Kind: ArchivableData, Values: local}
	d.objects[idx] = data
	d.placeholderActive = false
	return data, true, nil
}
