package models

// Region is one of the four catalog regions a tour belongs to.
type Region string

const (
	RegionEurope   Region = "Europe"
	RegionAsia     Region = "Asia"
	RegionAmericas Region = "Americas"
	RegionAfrica   Region = "Africa"
)

// Regions lists every valid region value.
var Regions = []Region{RegionEurope, RegionAsia, RegionAmericas, RegionAfrica}

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	switch r {
	case RegionEurope, RegionAsia, RegionAmericas, RegionAfrica:
		return true
	}
	return false
}

// Duration is the length of a tour. Days and nights are independently
// bounded; no day/night relation is enforced.
type Duration struct {
	Days   int `json:"days" validate:"required,min=1,max=30"`
	Nights int `json:"nights" validate:"min=0,max=29"`
}

// Tour is a single catalog record. The catalog is loaded once at startup
// and never mutated, so Tour values are shared freely across requests.
type Tour struct {
	ID                  string   `json:"id" validate:"required"`
	Slug                string   `json:"slug" validate:"required,tourslug"`
	Name                string   `json:"name" validate:"required,min=2,max=100"`
	Country             string   `json:"country" validate:"required,min=2"`
	Region              Region   `json:"region" validate:"required,oneof=Europe Asia Americas Africa"`
	Price               int      `json:"price" validate:"required,gt=0"`
	Currency            string   `json:"currency" validate:"required,len=3"`
	Duration            Duration `json:"duration" validate:"required"`
	Description         string   `json:"description" validate:"required,min=50,max=500"`
	ExtendedDescription string   `json:"extendedDescription" validate:"required,min=200,max=2000"`
	Images              []string `json:"images" validate:"required,min=1,max=5,dive,url"`
	Featured            bool     `json:"featured"`
	Highlights          []string `json:"highlights" validate:"required,min=3,max=8,dive,required"`
}

// CoverImage returns the primary image URL (first entry, catalog invariant
// guarantees at least one).
func (t *Tour) CoverImage() string {
	if len(t.Images) == 0 {
		return ""
	}
	return t.Images[0]
}

// PublicTourResponse is the listing-page representation of a tour.
type PublicTourResponse struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	Country    string   `json:"country"`
	Region     Region   `json:"region"`
	Price      int      `json:"price"`
	Currency   string   `json:"currency"`
	Duration   Duration `json:"duration"`
	Summary    string   `json:"summary"`
	CoverImage string   `json:"coverImage"`
	Featured   bool     `json:"featured"`
	Link       string   `json:"link"`
}

// ToPublicResponse converts a Tour to its listing representation.
func (t *Tour) ToPublicResponse(baseURL string) PublicTourResponse {
	return PublicTourResponse{
		ID:         t.ID,
		Slug:       t.Slug,
		Name:       t.Name,
		Country:    t.Country,
		Region:     t.Region,
		Price:      t.Price,
		Currency:   t.Currency,
		Duration:   t.Duration,
		Summary:    t.Description,
		CoverImage: t.CoverImage(),
		Featured:   t.Featured,
		Link:       baseURL + "/tours/" + t.Slug,
	}
}

// PriceRange is the min/max price across the catalog.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
