package models

// Weight and length units as entered by the angler. Values are stored with
// the unit they were logged in; nothing is converted at rest.
const (
	WeightKg  = "kg"
	WeightLbs = "lbs"

	LengthCm = "cm"
	LengthIn = "in"
)

// Catch represents a single logged fishing event.
// CreatedAt is milliseconds since epoch, assigned once by the store at
// persist time, and is the sole ordering key for retrieval.
type Catch struct {
	ID             uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Species        string   `gorm:"size:64;index;not null" json:"species"`
	Weight         *float64 `json:"weight"`
	WeightUnit     string   `gorm:"size:8;default:lbs" json:"weightUnit"`
	Length         *float64 `json:"length"`
	LengthUnit     string   `gorm:"size:8;default:in" json:"lengthUnit"`
	Location       string   `gorm:"size:128;index" json:"location"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Date           string   `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Time           string   `gorm:"size:5" json:"time"`        // HH:MM
	Bait           string   `gorm:"size:128" json:"bait"`
	WaterCondition string   `gorm:"size:32" json:"waterCondition"`
	Weather        string   `gorm:"size:32" json:"weather"`
	Photo          *string  `gorm:"type:text" json:"photo"` // embedded payload (data URI), not a file path
	Notes          string   `gorm:"type:text" json:"notes"`
	CreatedAt      int64    `gorm:"index;not null" json:"createdAt"`
}

// CatchPatch is a partial update of a Catch. Only non-nil fields are applied.
// ID and CreatedAt are deliberately absent: neither can be changed after the
// record is persisted.
type CatchPatch struct {
	Species        *string  `json:"species"`
	Weight         *float64 `json:"weight"`
	WeightUnit     *string  `json:"weightUnit"`
	Length         *float64 `json:"length"`
	LengthUnit     *string  `json:"lengthUnit"`
	Location       *string  `json:"location"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Date           *string  `json:"date"`
	Time           *string  `json:"time"`
	Bait           *string  `json:"bait"`
	WaterCondition *string  `json:"waterCondition"`
	Weather        *string  `json:"weather"`
	Photo          *string  `json:"photo"`
	Notes          *string  `json:"notes"`
}

// Fields returns the patch as a column→value map for a partial UPDATE.
// An empty map means the patch sets nothing.
func (p CatchPatch) Fields() map[string]interface{} {
	m := make(map[string]interface{})
	if p.Species != nil {
		m["species"] = *p.Species
	}
	if p.Weight != nil {
		m["weight"] = *p.Weight
	}
	if p.WeightUnit != nil {
		m["weight_unit"] = *p.WeightUnit
	}
	if p.Length != nil {
		m["length"] = *p.Length
	}
	if p.LengthUnit != nil {
		m["length_unit"] = *p.LengthUnit
	}
	if p.Location != nil {
		m["location"] = *p.Location
	}
	if p.Lat != nil {
		m["lat"] = *p.Lat
	}
	if p.Lng != nil {
		m["lng"] = *p.Lng
	}
	if p.Date != nil {
		m["date"] = *p.Date
	}
	if p.Time != nil {
		m["time"] = *p.Time
	}
	if p.Bait != nil {
		m["bait"] = *p.Bait
	}
	if p.WaterCondition != nil {
		m["water_condition"] = *p.WaterCondition
	}
	if p.Weather != nil {
		m["weather"] = *p.Weather
	}
	if p.Photo != nil {
		m["photo"] = *p.Photo
	}
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}
	return m
}
