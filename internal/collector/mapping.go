package collector

import (
	"math"
	"strconv"

	"github.com/and161185/line-insight/internal/lineapi"
)

type deliveryField struct {
	name  string
	value func(*lineapi.MessageDeliveries) *int64
}

// deliveryFields is the allow-list of message delivery counters reported as hits.
var deliveryFields = []deliveryField{
	{"apiBroadcast", func(d *lineapi.MessageDeliveries) *int64 { return d.APIBroadcast }},
	{"apiMulticast", func(d *lineapi.MessageDeliveries) *int64 { return d.APIMulticast }},
	{"apiNarrowcast", func(d *lineapi.MessageDeliveries) *int64 { return d.APINarrowcast }},
	{"apiPush", func(d *lineapi.MessageDeliveries) *int64 { return d.APIPush }},
	{"apiReply", func(d *lineapi.MessageDeliveries) *int64 { return d.APIReply }},
	{"autoResponse", func(d *lineapi.MessageDeliveries) *int64 { return d.AutoResponse }},
	{"broadcast", func(d *lineapi.MessageDeliveries) *int64 { return d.Broadcast }},
	{"chat", func(d *lineapi.MessageDeliveries) *int64 { return d.Chat }},
	{"targeting", func(d *lineapi.MessageDeliveries) *int64 { return d.Targeting }},
	{"welcomeResponse", func(d *lineapi.MessageDeliveries) *int64 { return d.WelcomeResponse }},
}

type followerField struct {
	name  string
	value func(*lineapi.Followers) *int64
}

// followerFields is the allow-list of follower counters reported as hits.
var followerFields = []followerField{
	{"followers", func(f *lineapi.Followers) *int64 { return f.Followers }},
	{"targetedReaches", func(f *lineapi.Followers) *int64 { return f.TargetedReaches }},
	{"blocks", func(f *lineapi.Followers) *int64 { return f.Blocks }},
}

type tile struct {
	key        string
	percentage float64
}

type demographicDimension struct {
	name  string
	tiles func(*lineapi.Demographics) []tile
}

// demographicDimensions lists the demographic breakdowns reported as hits.
var demographicDimensions = []demographicDimension{
	{"genders", func(d *lineapi.Demographics) []tile {
		out := make([]tile, 0, len(d.Genders))
		for _, t := range d.Genders {
			out = append(out, tile{t.Gender, t.Percentage})
		}
		return out
	}},
	{"ages", func(d *lineapi.Demographics) []tile {
		out := make([]tile, 0, len(d.Ages))
		for _, t := range d.Ages {
			out = append(out, tile{t.Age, t.Percentage})
		}
		return out
	}},
	{"areas", func(d *lineapi.Demographics) []tile {
		out := make([]tile, 0, len(d.Areas))
		for _, t := range d.Areas {
			out = append(out, tile{t.Area, t.Percentage})
		}
		return out
	}},
	{"appTypes", func(d *lineapi.Demographics) []tile {
		out := make([]tile, 0, len(d.AppTypes))
		for _, t := range d.AppTypes {
			out = append(out, tile{t.AppType, t.Percentage})
		}
		return out
	}},
	{"subscriptionPeriods", func(d *lineapi.Demographics) []tile {
		out := make([]tile, 0, len(d.SubscriptionPeriods))
		for _, t := range d.SubscriptionPeriods {
			out = append(out, tile{t.SubscriptionPeriod, t.Percentage})
		}
		return out
	}},
}

// PermilleValue converts a percentage to tenths of a percent, rounded half up.
// The multiplication is done on the decimal representation so 12.35 gives 124, not 123.
func PermilleValue(percentage float64) int64 {
	shifted, err := strconv.ParseFloat(strconv.FormatFloat(percentage, 'g', -1, 64)+"e1", 64)
	if err != nil {
		shifted = percentage * 10
	}
	return int64(math.Floor(shifted + 0.5))
}
