package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/mattt/typedstream"
	"github.com/mattt/typedstream/imessage"
)

type dumpChatCmd struct {
	DBPath string `arg:"" help:"Path to a chat.db file."`
	Limit  int    `help:"Maximum number of messages to read." default:"50"`
}

func (c *dumpChatCmd) Run() error {
	runID := uuid.New().String()

	store, err := imessage.Open(c.DBPath)
	if err != nil {
		return fmt.Errorf("dump-chat[%s]: %w", runID, err)
	}
	defer store.Close()

	ctx := context.Background()
	rows, err := store.Messages(ctx, c.Limit)
	if err != nil {
		return fmt.Errorf("dump-chat[%s]: %w", runID, err)
	}
	log.Printf("dump-chat[%s]: read %d messages", runID, len(rows))

	for _, row := range rows {
		if len(row.AttributedBody) == 0 {
			continue
		}
		archivables, err := typedstream.Decode(row.AttributedBody)
		if err != nil {
			log.Printf("dump-chat[%s]: skip row %d: %v", runID, row.RowID, err)
			continue
		}
		text := imessage.ExtractPlainText(archivables)
		if text == "" {
			continue
		}
		fmt.Printf("%s\t%s\n", row.GUID, text)
	}
	return nil
}
