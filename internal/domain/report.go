package domain

import "time"

// CrimeType is the fixed enumeration of reportable crime categories.
type CrimeType string

const (
	CrimeTheft    CrimeType = "Theft"
	CrimeRobbery  CrimeType = "Robbery"
	CrimeFraud    CrimeType = "Fraud"
	CrimeViolence CrimeType = "Violence"
	CrimeOther    CrimeType = "Other"
)

// CrimeTypes lists every valid crime type, in UI presentation order.
var CrimeTypes = []CrimeType{CrimeTheft, CrimeRobbery, CrimeFraud, CrimeViolence, CrimeOther}

// crimeTypeDisplay maps crime types to their Indonesian display labels.
var crimeTypeDisplay = map[CrimeType]string{
	CrimeTheft:    "Pencurian",
	CrimeRobbery:  "Perampokan",
	CrimeFraud:    "Penipuan",
	CrimeViolence: "Kekerasan",
	CrimeOther:    "Lainnya",
}

// Valid reports whether c is one of the known crime types.
func (c CrimeType) Valid() bool {
	_, ok := crimeTypeDisplay[c]
	return ok
}

// DisplayName returns the localized label for c, or the raw value if unknown.
func (c CrimeType) DisplayName() string {
	if label, ok := crimeTypeDisplay[c]; ok {
		return label
	}
	return string(c)
}

// Area is the fixed enumeration of administrative zones covered by the service.
type Area string

const (
	AreaNorth   Area = "Makassar Utara"
	AreaSouth   Area = "Makassar Selatan"
	AreaEast    Area = "Makassar Timur"
	AreaWest    Area = "Makassar Barat"
	AreaCentral Area = "Makassar Pusat"
)

// Areas lists every valid administrative zone, in UI presentation order.
var Areas = []Area{AreaNorth, AreaSouth, AreaEast, AreaWest, AreaCentral}

// Valid reports whether a is one of the known zones.
func (a Area) Valid() bool {
	for _, zone := range Areas {
		if a == zone {
			return true
		}
	}
	return false
}

// Report is a persisted citizen-submitted incident record.
//
// DayOfWeek and Month are derived from OccurredDate exactly once, at
// submission, and stored with the record. Historical rows keep the values
// computed with the calendar in effect at insertion time; they are never
// recomputed on read.
type Report struct {
	ID           int64     `json:"id"`
	OccurredDate time.Time `json:"occurred_date"`
	OccurredTime TimeOfDay `json:"occurred_time"`
	CrimeType    CrimeType `json:"crime_type"`
	Description  string    `json:"description"`
	Area         Area      `json:"area"`
	Address      string    `json:"address,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	DayOfWeek    string    `json:"day_of_week"` // English weekday name, e.g. "Monday"
	Month        int       `json:"month"`       // 1-12
	EvidencePath string    `json:"evidence_path,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
