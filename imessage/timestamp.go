package imessage

import "time"

// appleEpoch is 2001-01-01 00:00:00 UTC, the reference instant iMessage
// stores date columns relative to.
var appleEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// AppleEpochToTime converts a chat.db date column (nanoseconds since the
// Apple epoch) to a time.Time.
func AppleEpochToTime(nanoseconds int64) time.Time {
	return appleEpoch.Add(time.Duration(nanoseconds))
}
