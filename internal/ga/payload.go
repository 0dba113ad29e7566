// Package ga formats collected hits as analytics payloads and posts them in batches.
package ga

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/and161185/line-insight/model"
	"github.com/google/uuid"
)

// Envelope constants sent with every hit.
const (
	AppName      = "LINE Insight"
	AppVersion   = "1.0.0"
	ProtocolV    = 1
	queueTimeMs  = 30000
	batchLineSep = "\r\n"
)

// NewClientID returns a random version 4 UUID in lowercase 8-4-4-4-12 form.
func NewClientID() string {
	return uuid.NewString()
}

func envelope(bot model.Bot, clientID string) model.Payload {
	return model.Payload{
		"v":   ProtocolV,
		"aip": 1,
		"ds":  "app",
		"an":  AppName,
		"av":  AppVersion,
		"tid": bot.TrackingID,
		"cid": clientID,
	}
}

// BuildPayloads returns one screenview payload for the bot followed by one event payload per hit.
// Every payload shares the same client id.
func BuildPayloads(bot model.Bot, hits []model.Hit, clientID string) []model.Payload {
	payloads := make([]model.Payload, 0, len(hits)+1)

	sv := envelope(bot, clientID)
	sv["t"] = "screenview"
	sv["qt"] = queueTimeMs
	sv["cd"] = bot.Name
	payloads = append(payloads, sv)

	for _, h := range hits {
		ev := envelope(bot, clientID)
		ev["t"] = "event"
		ev["ec"] = bot.Name
		ev["ea"] = h.Action
		ev["el"] = h.Label
		ev["ev"] = h.Value
		payloads = append(payloads, ev)
	}
	return payloads
}

// Chunk splits payloads into consecutive groups of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Encode serializes a payload as a URL query string with keys in sorted order.
// Slice values are written as repeated key[] pairs.
func Encode(p model.Payload) string {
	q := url.Values{}
	for k, v := range p {
		switch val := v.(type) {
		case []string:
			for _, s := range val {
				q.Add(k+"[]", s)
			}
		case []any:
			for _, s := range val {
				q.Add(k+"[]", fmt.Sprint(s))
			}
		case nil:
			q.Set(k, "")
		default:
			q.Set(k, fmt.Sprint(val))
		}
	}
	return q.Encode()
}

// EncodeBatch joins the encoded payloads with CRLF into one request body.
func EncodeBatch(chunk []model.Payload) string {
	lines := make([]string, 0, len(chunk))
	for _, p := range chunk {
		lines = append(lines, Encode(p))
	}
	return strings.Join(lines, batchLineSep)
}
