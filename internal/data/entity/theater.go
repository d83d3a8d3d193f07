package entity

type Theater struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Amenities []string `json:"amenities,omitempty"`
}
