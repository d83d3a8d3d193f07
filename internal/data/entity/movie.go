package entity

// Movie is immutable reference data once published. Field names on the wire
// follow the remote authority's camelCase JSON.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Rating      string   `json:"rating"` // content classification (PG, PG-13, R, ...)
	RatingScore float64  `json:"ratingScore"`
	Duration    int      `json:"duration"` // minutes
	Description string   `json:"description"`
	PosterURL   string   `json:"posterUrl"`
	TrailerURL  string   `json:"trailerUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Cast        []string `json:"cast,omitempty"`
}
