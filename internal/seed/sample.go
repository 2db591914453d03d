// Package seed holds the fixed sample dataset behind the "import sample
// catches" convenience. Real fishing spots, plausible conditions, and a
// generated placeholder photo per catch.
package seed

import (
	"fmt"
	"net/url"

	"catch-log/internal/models"
)

func f(v float64) *float64 { return &v }

// fishSvg builds a small self-contained SVG data URI used as the sample
// photo payload. The store treats photos as opaque strings either way.
func fishSvg(color, bg, label string) *string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300">`+
		`<rect width="400" height="300" fill="%s" rx="12"/>`+
		`<g transform="translate(200,130)">`+
		`<ellipse cx="0" cy="0" rx="90" ry="45" fill="%s" opacity="0.9"/>`+
		`<polygon points="90,-30 130,0 90,30" fill="%s" opacity="0.8"/>`+
		`<circle cx="-50" cy="-10" r="7" fill="white"/>`+
		`<circle cx="-48" cy="-10" r="4" fill="#1e293b"/>`+
		`</g>`+
		`<text x="200" y="220" text-anchor="middle" fill="white" font-family="sans-serif" font-size="18" font-weight="bold" opacity="0.9">%s</text>`+
		`<text x="200" y="245" text-anchor="middle" fill="white" font-family="sans-serif" font-size="12" opacity="0.5">Catch Log</text>`+
		`</svg>`, bg, color, color, label)
	uri := "data:image/svg+xml," + url.PathEscape(svg)
	return &uri
}

// SampleCatches returns the demo dataset for Store.BulkAdd. Ordered oldest
// trip first so the assigned createdAt sequence lists recent trips on top.
func SampleCatches() []models.Catch {
	return []models.Catch{
		{
			Species: "King Salmon", Weight: f(9.3), WeightUnit: models.WeightLbs, Length: f(24), LengthUnit: models.LengthIn,
			Location: "Puget Sound, Seattle WA", Lat: f(47.6062), Lng: f(-122.3321),
			Date: "2026-01-15", Time: "05:30", Bait: "Herring cut plug - chartreuse",
			WaterCondition: "Clear", Weather: "Rain",
			Photo: fishSvg("#fb923c", "#2a1a1a", "King Salmon - 9.3 lbs"),
			Notes: "Trolling at 80ft with downrigger. Steady rain, air 42°F. Kept for smoking.",
		},
		{
			Species: "Northern Pike", Weight: f(8.7), WeightUnit: models.WeightLbs, Length: f(28), LengthUnit: models.LengthIn,
			Location: "Lake Minnetonka, MN", Lat: f(44.9333), Lng: f(-93.5833),
			Date: "2026-01-28", Time: "11:00", Bait: "Spinnerbait - white/chartreuse",
			WaterCondition: "Murky", Weather: "Overcast",
			Photo: fishSvg("#a3e635", "#1a2a1a", "Northern Pike - 8.7 lbs"),
			Notes: "Monster pike in the weed bed! 15 min fight. Water temp 45°F, wind 10mph NW.",
		},
		{
			Species: "Rainbow Trout", Weight: f(2.1), WeightUnit: models.WeightLbs, Length: f(14), LengthUnit: models.LengthIn,
			Location: "Blue River, Silverthorne CO", Lat: f(39.6333), Lng: f(-106.0703),
			Date: "2026-02-10", Time: "09:15", Bait: "Fly - Elk Hair Caddis #16",
			WaterCondition: "Clear", Weather: "Cloudy",
			Photo: fishSvg("#f472b6", "#2a1a2e", "Rainbow Trout - 2.1 lbs"),
			Notes: "Beautiful colors on this one. Catch & release. Air temp 38°F, light snow.",
		},
		{
			Species: "Largemouth Bass", Weight: f(4.2), WeightUnit: models.WeightLbs, Length: f(18), LengthUnit: models.LengthIn,
			Location: "Lake Travis, Austin TX", Lat: f(30.3935), Lng: f(-97.9003),
			Date: "2026-02-15", Time: "07:30", Bait: "Crankbait - shad pattern",
			WaterCondition: "Clear", Weather: "Sunny",
			Photo: fishSvg("#4ade80", "#1a3a2a", "Largemouth Bass - 4.2 lbs"),
			Notes: "Early morning topwater bite near the marina dock. Water temp 62°F.",
		},
		{
			Species: "Redfish", Weight: f(6.5), WeightUnit: models.WeightLbs, Length: f(22), LengthUnit: models.LengthIn,
			Location: "Galveston Bay, TX", Lat: f(29.2856), Lng: f(-94.8614),
			Date: "2026-02-18", Time: "10:30", Bait: "Live shrimp under popping cork",
			WaterCondition: "Murky", Weather: "Wind",
			Photo: fishSvg("#f87171", "#2a1a1a", "Redfish - 6.5 lbs"),
			Notes: "Slot red on the grass flat. Wind 15mph SE, incoming tide. Water temp 58°F.",
		},
		{
			Species: "Channel Catfish", Weight: f(12.5), WeightUnit: models.WeightLbs, Length: f(26), LengthUnit: models.LengthIn,
			Location: "Mississippi River, St. Louis MO", Lat: f(38.6270), Lng: f(-90.1994),
			Date: "2026-02-20", Time: "20:45", Bait: "Chicken liver on circle hook",
			WaterCondition: "Stained", Weather: "Wind",
			Photo: fishSvg("#a78bfa", "#1a1a2e", "Channel Catfish - 12.5 lbs"),
			Notes: "Night session on the bank. Strong current, had to use 3oz sinker. Air 52°F.",
		},
		{
			Species: "Walleye", Weight: f(3.8), WeightUnit: models.WeightLbs, Length: f(20), LengthUnit: models.LengthIn,
			Location: "Lake Erie, Cleveland OH", Lat: f(41.6839), Lng: f(-81.7286),
			Date: "2026-02-22", Time: "06:00", Bait: "Jig + live minnow",
			WaterCondition: "Stained", Weather: "Cloudy",
			Photo: fishSvg("#fbbf24", "#2a2a1a", "Walleye - 3.8 lbs"),
			Notes: "Jigging the reef edge at 18ft. Water temp 40°F, barometric pressure dropping.",
		},
		{
			Species: "Crappie", Weight: f(1.2), WeightUnit: models.WeightLbs, Length: f(11), LengthUnit: models.LengthIn,
			Location: "Lake Fork, East TX", Lat: f(32.8618), Lng: f(-95.5735),
			Date: "2026-02-25", Time: "16:00", Bait: "Small jig - chartreuse/white",
			WaterCondition: "Clear", Weather: "Sunny",
			Photo: fishSvg("#67e8f9", "#1a2a2e", "Crappie - 1.2 lbs"),
			Notes: "Found a school in 12ft near standing timber. Caught 8 total, kept 4 for dinner. 72°F.",
		},
		{
			Species: "Bluegill", Weight: f(0.6), WeightUnit: models.WeightLbs, Length: f(8), LengthUnit: models.LengthIn,
			Location: "Harris Farm Pond, Charlotte NC", Lat: f(35.2271), Lng: f(-80.8431),
			Date: "2026-02-26", Time: "14:00", Bait: "Red worm on bobber",
			WaterCondition: "Clear", Weather: "Sunny",
			Photo: fishSvg("#60a5fa", "#1a1a2e", "Bluegill - 0.6 lbs"),
			Notes: "Teaching the kids to fish - they loved it! Warm afternoon, 68°F, no wind.",
		},
		{
			Species: "Largemouth Bass", Weight: f(5.8), WeightUnit: models.WeightLbs, Length: f(21), LengthUnit: models.LengthIn,
			Location: "Sam Rayburn Reservoir, TX", Lat: f(31.0650), Lng: f(-94.1021),
			Date: "2026-02-27", Time: "08:00", Bait: "Texas rig - watermelon Senko",
			WaterCondition: "Stained", Weather: "Overcast",
			Photo: fishSvg("#34d399", "#1a2e2a", "Largemouth Bass - 5.8 lbs"),
			Notes: "Big girl off a submerged log in 6ft. Overcast, air 60°F, barometer steady.",
		},
	}
}
