// Package typedstream decodes Apple's `typedstream` binary archive format,
// the legacy NeXTSTEP/Cocoa object-graph serialization still found in the
// `attributedBody` column of the iMessage `chat.db` database. Decode is a
// single-pass, single-threaded operation: it never blocks on I/O and never
// retains state past the call that produced it.
package typedstream

const (
	headerVersion       = 4
	headerSignature     = "streamtyped"
	headerSystemVersion = 1000
)

// Decode parses a typedstream buffer and returns its top-level records in
// wire order. Every error aborts decoding immediately; there is no
// partial-result recovery.
func Decode(buf []byte) ([]Archivable, error) {
	d := newDecoder(buf)
	if err := d.readHeader(); err != nil {
		return nil, err
	}

	var out []Archivable
	for !d.r.done() {
		b, err := d.r.current()
		if err != nil {
			return nil, err
		}
		if b == tagEnd {
			if err := d.r.advance(1); err != nil {
				return nil, err
			}
			continue
		}
		tl, ok, err := d.getType(false)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		arch, has, err := d.readTypes(tl)
		if err != nil {
			return nil, err
		}
		if has {
			out = append(out, arch)
		}
	}
	return out, nil
}

// readHeader validates the fixed 16-byte prefix: version 4, the literal
// signature "streamtyped", and system version 1000.
func (d *Decoder) readHeader() error {
	version, err := d.r.readUnsignedInt()
	if err != nil {
		return err
	}
	if version != headerVersion {
		return &InvalidHeaderError{Reason: "unexpected typedstream version"}
	}

	length, err := d.r.readUnsignedInt()
	if err != nil {
		return err
	}
	signature, err := d.r.readUTF8(int(length))
	if err != nil {
		return err
	}
	if signature != headerSignature {
		return &InvalidHeaderError{Reason: "unexpected signature"}
	}

	systemVersion, err := d.r.readSignedInt()
	if err != nil {
		return err
	}
	if systemVersion != headerSystemVersion {
		return &InvalidHeaderError{Reason: "unexpected system version"}
	}
	return nil
}
