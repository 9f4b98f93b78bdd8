package domain

// PPPRecord is one accepted row of the PPP dataset.
type PPPRecord struct {
	CountryName string  `json:"countryName"`
	CountryCode string  `json:"countryCode"`
	PPPFactor   float64 `json:"pppFactor"`
	Year        int     `json:"year"`
}

// Country is a selectable catalog entry: a PPP record joined with the currency reference table.
type Country struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Currency     string  `json:"currency"`
	CurrencyCode string  `json:"currencyCode"`
	Flag         string  `json:"flag,omitempty"`
	Region       string  `json:"region,omitempty"`
	PPPFactor    float64 `json:"pppFactor"`
}
