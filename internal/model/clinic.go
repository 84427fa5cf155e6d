package model

// Clinic is a mental-health service provider listing.
// Rating is stored in tenths of a star (48 = 4.8).
type Clinic struct {
	Base
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Website      *string  `json:"website"`
	Specialties  []string `json:"specialties"`
	Services     []string `json:"services"`
	Availability string   `json:"availability"`
	PriceRange   string   `json:"priceRange"`
	Rating       int      `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	Image        string   `json:"image"`
	Verified     bool     `json:"verified"`
}

// ClinicInput holds the client-supplied part of a clinic. Rating, review
// count and verification are assigned by the store.
type ClinicInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Website      *string  `json:"website" binding:"omitempty,url"`
	Specialties  []string `json:"specialties" binding:"required,dive,required"`
	Services     []string `json:"services" binding:"required,dive,required"`
	Availability string   `json:"availability" binding:"required"`
	PriceRange   string   `json:"priceRange" binding:"required"`
	Image        string   `json:"image" binding:"required"`
}

// ClinicFilter narrows ListClinics. Empty fields impose no constraint.
type ClinicFilter struct {
	Location  string `form:"location"`
	Specialty string `form:"specialty"`
	Service   string `form:"service"`
}

// Clone returns a deep copy so callers cannot alias stored slices.
func (c *Clinic) Clone() *Clinic {
	out := *c
	out.Specialties = cloneStrings(c.Specialties)
	out.Services = cloneStrings(c.Services)
	if c.Website != nil {
		w := *c.Website
		out.Website = &w
	}
	return &out
}
