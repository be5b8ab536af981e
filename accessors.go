package typedstream

import "strings"

// StringValue returns the plain text of a decoded NSString/NSMutableString,
// filtering out the attribute-key metadata NSAttributedString interleaves
// with its visible text. The filter is a deliberate heuristic, not a bug:
// it is intentionally unparameterized since nothing in this module needs
// more than one caller's notion of "plain text".
func (a Archivable) StringValue() (string, bool) {
	if a.Kind != ArchivableObject {
		return "", false
	}
	if a.Class.Name != "NSString" && a.Class.Name != "NSMutableString" {
		return "", false
	}
	if len(a.Values) == 0 || a.Values[0].Kind != KindString {
		return "", false
	}
	text := a.Values[0].Str
	if strings.HasPrefix(text, "__k") {
		return "", false
	}
	if strings.Contains(text, "Attribute") {
		return "", false
	}
	if strings.Contains(text, "NS") {
		return "", false
	}
	if !containsLetterOrDigit(text) {
		return "", false
	}
	return text, true
}

// IntegerValue returns the signed integer payload of a decoded NSNumber.
func (a Archivable) IntegerValue() (int64, bool) {
	if a.Kind != ArchivableObject || a.Class.Name != "NSNumber" {
		return 0, false
	}
	if len(a.Values) == 0 || a.Values[0].Kind != KindSignedInteger {
		return 0, false
	}
	return a.Values[0].SignedInteger, true
}

// DoubleValue returns the double payload of a decoded NSNumber.
func (a Archivable) DoubleValue() (float64, bool) {
	if a.Kind != ArchivableObject || a.Class.Name != "NSNumber" {
		return 0, false
	}
	if len(a.Values) == 0 || a.Values[0].Kind != KindDouble {
		return 0, false
	}
	return a.Values[0].Float64, true
}

func containsLetterOrDigit(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}
