package main

import (
	"fmt"
	"os"

	"github.com/minio/simdjson-go"

	"github.com/mattt/typedstream"
)

type manifestEntry struct {
	Path      string
	WantCount int64
}

type batchCmd struct {
	Manifest string `arg:"" help:"Path to a JSON manifest of {path, want_count} entries."`
}

func (c *batchCmd) Run() error {
	data, err := os.ReadFile(c.Manifest)
	if err != nil {
		return fmt.Errorf("read manifest %s: %w", c.Manifest, err)
	}

	entries, err := parseManifest(data)
	if err != nil {
		return fmt.Errorf("parse manifest %s: %w", c.Manifest, err)
	}

	mismatches := 0
	for _, e := range entries {
		buf, err := os.ReadFile(e.Path)
		if err != nil {
			fmt.Printf("%s\tERROR\t%v\n", e.Path, err)
			mismatches++
			continue
		}
		archivables, err := typedstream.Decode(buf)
		if err != nil {
			fmt.Printf("%s\tERROR\t%v\n", e.Path, err)
			mismatches++
			continue
		}
		got := int64(len(archivables))
		if got != e.WantCount {
			fmt.Printf("%s\tMISMATCH\twant %d got %d\n", e.Path, e.WantCount, got)
			mismatches++
			continue
		}
		fmt.Printf("%s\tOK\t%d\n", e.Path, got)
	}
	if mismatches > 0 {
		return fmt.Errorf("batch: %d mismatch(es)", mismatches)
	}
	return nil
}

// parseManifest reads a JSON array of {"path": "...", "want_count": N}
// records with simdjson-go, which pays off on the large manifests batch
// runs are meant for.
func parseManifest(data []byte) ([]manifestEntry, error) {
	pj, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, fmt.Errorf("simdjson parse: %w", err)
	}

	iter := pj.Iter()
	if typ := iter.Advance(); typ != simdjson.TypeRoot {
		return nil, fmt.Errorf("unexpected root type %v", typ)
	}
	var root simdjson.Iter
	rootType, _, err := iter.Root(&root)
	if err != nil {
		return nil, fmt.Errorf("simdjson root: %w", err)
	}
	if rootType != simdjson.TypeArray {
		return nil, fmt.Errorf("manifest is not a JSON array")
	}

	arr, err := root.Array(nil)
	if err != nil {
		return nil, fmt.Errorf("simdjson array: %w", err)
	}

	var entries []manifestEntry
	elemIter := arr.Iter()
	for {
		typ := elemIter.Advance()
		if typ == simdjson.TypeNone {
			break
		}
		if typ != simdjson.TypeObject {
			return nil, fmt.Errorf("manifest entry is not an object")
		}
		obj, err := elemIter.Object(nil)
		if err != nil {
			return nil, fmt.Errorf("simdjson object: %w", err)
		}

		var pathElem simdjson.Element
		if obj.FindKey("path", &pathElem) == nil {
			return nil, fmt.Errorf("manifest entry missing \"path\"")
		}
		path, err := pathElem.Iter.String()
		if err != nil {
			return nil, fmt.Errorf("manifest entry \"path\": %w", err)
		}

		var countElem simdjson.Element
		if obj.FindKey("want_count", &countElem) == nil {
			return nil, fmt.Errorf("manifest entry missing \"want_count\"")
		}
		count, err := countElem.Iter.Int()
		if err != nil {
			return nil, fmt.Errorf("manifest entry \"want_count\": %w", err)
		}

		entries = append(entries, manifestEntry{Path: path, WantCount: count})
	}
	return entries, nil
}
