// Command typedstream decodes raw typedstream blobs and iMessage
// chat.db attributed bodies from the command line.
package main

import (
	"log"

	"github.com/alecthomas/kong"
)

type cli struct {
	Decode   decodeCmd   `cmd:"" help:"Decode a raw typedstream file and print it as JSON or CBOR."`
	DumpChat dumpChatCmd `cmd:"" name:"dump-chat" help:"Decode attributed bodies out of a chat.db and print their plain text."`
	Batch    batchCmd    `cmd:"" help:"Decode every file named in a JSON manifest and check expected record counts."`
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("typedstream"),
		kong.Description("Decode Apple typedstream archives."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
