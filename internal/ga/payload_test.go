package ga

import (
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/and161185/line-insight/model"
	"github.com/stretchr/testify/require"
)

var uuidShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestNewClientID(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := NewClientID()
		require.Regexp(t, uuidShape, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate client id %s", id)
		seen[id] = struct{}{}
	}
}

func TestBuildPayloads(t *testing.T) {
	bot := model.Bot{Name: "Shop Bot", AccessToken: "secret", TrackingID: "UA-1-1"}
	hits := []model.Hit{
		{Action: "followers-blocks", Label: "20240101", Value: 4},
		{Action: "messageDelivery-chat", Label: "20240101", Value: 9},
	}

	payloads := BuildPayloads(bot, hits, "cid-1")
	require.Len(t, payloads, 3)

	sv := payloads[0]
	require.Equal(t, "screenview", sv["t"])
	require.Equal(t, "Shop Bot", sv["cd"])
	require.Equal(t, 30000, sv["qt"])

	for _, p := range payloads {
		require.Equal(t, "UA-1-1", p["tid"])
		require.Equal(t, "cid-1", p["cid"])
		require.Equal(t, AppName, p["an"])
		require.Equal(t, AppVersion, p["av"])
		require.NotContains(t, p, "access_token")
	}

	ev := payloads[2]
	require.Equal(t, "event", ev["t"])
	require.Equal(t, "Shop Bot", ev["ec"])
	require.Equal(t, "messageDelivery-chat", ev["ea"])
	require.Equal(t, "20240101", ev["el"])
	require.EqualValues(t, 9, ev["ev"])
}

func TestChunk(t *testing.T) {
	items := make([]int, 45)
	chunks := Chunk(items, 20)
	require.Len(t, chunks, 3)
	require.Len(t, chunks[0], 20)
	require.Len(t, chunks[1], 20)
	require.Len(t, chunks[2], 5)

	require.Empty(t, Chunk([]int{}, 20))
	require.Len(t, Chunk(make([]int, 20), 20), 1)
	require.Len(t, Chunk(make([]int, 3), 0), 3)
}

func TestEncode(t *testing.T) {
	got := Encode(model.Payload{
		"t":   "event",
		"ea":  "demographic-areas-東京",
		"ev":  int64(123),
		"tag": []string{"a", "b c"},
	})
	require.Equal(t,
		"ea=demographic-areas-%E6%9D%B1%E4%BA%AC&ev=123&t=event&tag%5B%5D=a&tag%5B%5D=b+c",
		got)

	parsed, err := url.ParseQuery(got)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b c"}, parsed["tag[]"])
}

func TestEncodeBatch(t *testing.T) {
	body := EncodeBatch([]model.Payload{{"t": "screenview"}, {"t": "event", "ev": 1}})
	lines := strings.Split(body, "\r\n")
	require.Equal(t, []string{"t=screenview", "ev=1&t=event"}, lines)
}
