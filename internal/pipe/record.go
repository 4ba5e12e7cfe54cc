package pipe

import (
	"fmt"
	"strings"

	"github.com/bft-labs/logshim/pkg/log"
)

// DefaultTagMarker in the tag position selects the pipe's default tag.
const DefaultTagMarker = "-"

// Record is one parsed input line.
type Record struct {
	Level   log.Level
	Tag     string
	Message string
}

// ParseRecord splits line into level, tag and message. A single space or tab
// after the tag is consumed; anything after it belongs to the message.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")

	levelText, rest, ok := cutField(line)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing tag in %q", ErrMalformedRecord, line)
	}
	level, err := log.ParseLevel(levelText)
	if err != nil {
		return Record{}, err
	}

	tag, msg, _ := cutField(rest)
	if tag == "" {
		return Record{}, fmt.Errorf("%w: missing tag in %q", ErrMalformedRecord, line)
	}

	return Record{Level: level, Tag: tag, Message: msg}, nil
}

// cutField returns the first whitespace-delimited field of s and the text
// after the single separator that ends it. ok is false when s holds no
// separator after the field.
func cutField(s string) (field, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
