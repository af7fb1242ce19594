package listing

// Property is a catalog listing. Values are treated as immutable once the
// catalog has been built; use Clone before handing one to code that may
// modify slices.
type Property struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Price        int64    `json:"price"`
	BHK          int      `json:"bhk"`
	Sqft         int      `json:"sqft"`
	RERAApproved bool     `json:"reraApproved"`
	Image        string   `json:"image"`
	Amenities    []string `json:"amenities"`
	YearBuilt    int      `json:"yearBuilt"`
	Furnishing   string   `json:"furnishing"`
	Parking      int      `json:"parking"`
}

// Clone returns a copy that shares no slices with p.
func (p Property) Clone() Property {
	out := p
	if p.Amenities != nil {
		out.Amenities = append([]string(nil), p.Amenities...)
	}
	return out
}
