package imessage

import (
	"testing"

	"github.com/mattt/typedstream"
)

func TestExtractPlainTextConcatenatesInOrder(t *testing.T) {
	archivables := []typedstream.Archivable{
		{
			Kind:  typedstream.ArchivableObject,
			Class: typedstream.Class{Name: "NSString", Version: 1},
			Values: []typedstream.Object{
				{Kind: typedstream.KindString, Str: "Hello, "},
			},
		},
		{
			Kind:  typedstream.ArchivableObject,
			Class: typedstream.Class{Name: "NSString", Version: 1},
			Values: []typedstream.Object{
				{Kind: typedstream.KindString, Str: "__kIMMessagePartAttributeName"},
			},
		},
		{
			Kind:  typedstream.ArchivableObject,
			Class: typedstream.Class{Name: "NSString", Version: 1},
			Values: []typedstream.Object{
				{Kind: typedstream.KindString, Str: "world"},
			},
		},
	}

	got := ExtractPlainText(archivables)
	if got != "Hello, world" {
		t.Fatalf("ExtractPlainText() = %q; want %q", got, "Hello, world")
	}
}

func TestExtractPlainTextEmptyInput(t *testing.T) {
	if got := ExtractPlainText(nil); got != "" {
		t.Fatalf("ExtractPlainText(nil) = %q; want empty", got)
	}
}
