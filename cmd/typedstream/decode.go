package main

import (
	"fmt"
	"os"

	"github.com/mattt/typedstream"
	"github.com/mattt/typedstream/codec"
)

type decodeCmd struct {
	File string `arg:"" help:"Path to a raw typedstream file."`
	CBOR bool   `help:"Print CBOR instead of JSON."`
}

func (c *decodeCmd) Run() error {
	buf, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}

	archivables, err := typedstream.Decode(buf)
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.File, err)
	}

	if c.CBOR {
		out, err := codec.EncodeCBOR(archivables)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	out, err := codec.EncodeJSON(archivables)
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(out))
	return err
}
