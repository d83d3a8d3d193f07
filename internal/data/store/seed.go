package store

import (
	"time"

	"quickshow-booking/internal/data/entity"
)

// The seed dataset is deterministic on purpose: the mirror must look the same
// on every first boot, and tests can rely on these ids.

var seedMovies = []entity.Movie{
	{
		ID:          "mv-1",
		Title:       "Edge of the Void",
		Genre:       "Sci-Fi",
		Rating:      "PG-13",
		RatingScore: 8.2,
		Duration:    142,
		Description: "A deep-space salvage crew answers a distress call from a station that should not exist.",
		PosterURL:   "https://images.quickshow.dev/posters/edge-of-the-void.jpg",
		TrailerURL:  "https://videos.quickshow.dev/trailers/edge-of-the-void.mp4",
		Tags:        []string{"space", "thriller"},
		Cast:        []string{"Mara Ellison", "Theo Akintola"},
	},
	{
		ID:          "mv-2",
		Title:       "The Last Projectionist",
		Genre:       "Drama",
		Rating:      "PG",
		RatingScore: 7.6,
		Duration:    118,
		Description: "The final week of a century-old single-screen cinema, told through its projectionist.",
		PosterURL:   "https://images.quickshow.dev/posters/the-last-projectionist.jpg",
	},
	{
		ID:          "mv-3",
		Title:       "Midnight Circuit",
		Genre:       "Action",
		Rating:      "R",
		RatingScore: 6.9,
		Duration:    104,
		Description: "An underground courier race across a blacked-out city, one night, no second place.",
		PosterURL:   "https://images.quickshow.dev/posters/midnight-circuit.jpg",
		Tags:        []string{"racing"},
	},
	{
		ID:          "mv-4",
		Title:       "Paper Lanterns",
		Genre:       "Animation",
		Rating:      "G",
		RatingScore: 8.8,
		Duration:    96,
		Description: "A river spirit guides a lost festival lantern home across three provinces.",
		PosterURL:   "https://images.quickshow.dev/posters/paper-lanterns.jpg",
		Cast:        []string{"Yuki Tanaka"},
	},
}

var seedTheaters = []entity.Theater{
	{
		ID:        "th-1",
		Name:      "QuickShow Grand Central",
		City:      "Metropolis",
		Amenities: []string{"IMAX", "Dolby Atmos", "Recliners"},
	},
	{
		ID:        "th-2",
		Name:      "QuickShow Riverside",
		City:      "Metropolis",
		Amenities: []string{"3D", "Parking"},
	},
}

var seedShows = []entity.Show{
	{ID: "sh-1", MovieID: "mv-1", TheaterID: "th-1", ShowDate: "2026-09-05", ShowTime: "18:30", ScreenNumber: "1", ShowType: "IMAX", TicketPrice: 18.50, TotalSeats: 100},
	{ID: "sh-2", MovieID: "mv-1", TheaterID: "th-2", ShowDate: "2026-09-05", ShowTime: "21:00", ScreenNumber: "3", ShowType: "2D", TicketPrice: 12.00, TotalSeats: 100},
	{ID: "sh-3", MovieID: "mv-2", TheaterID: "th-1", ShowDate: "2026-09-06", ShowTime: "17:15", ScreenNumber: "2", ShowType: "2D", TicketPrice: 11.00, TotalSeats: 80},
	{ID: "sh-4", MovieID: "mv-3", TheaterID: "th-2", ShowDate: "2026-09-06", ShowTime: "22:30", ScreenNumber: "1", ShowType: "2D", TicketPrice: 12.00, TotalSeats: 100},
	{ID: "sh-5", MovieID: "mv-4", TheaterID: "th-1", ShowDate: "2026-09-07", ShowTime: "14:00", ScreenNumber: "4", ShowType: "3D", TicketPrice: 14.00, TotalSeats: 100},
	{ID: "sh-6", MovieID: "mv-4", TheaterID: "th-2", ShowDate: "2026-09-08", ShowTime: "11:00", ScreenNumber: "2", ShowType: "2D", TicketPrice: 9.50, TotalSeats: 80},
}

var seedBookings = []entity.Booking{
	{
		ID:            "bk-seed-1",
		UserID:        "demo-user",
		ShowID:        "sh-1",
		SeatNumbers:   []string{"E5", "E6"},
		TotalAmount:   37.00,
		BookingStatus: entity.BookingStatusConfirmed,
		BookingDate:   time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC),
		ShowDateTime:  "2026-09-05T18:30",
	},
}

func seedDataset(collection string) (any, bool) {
	switch collection {
	case CollectionMovies:
		return seedMovies, true
	case CollectionTheaters:
		return seedTheaters, true
	case CollectionShows:
		return seedShows, true
	case CollectionBookings:
		return seedBookings, true
	default:
		return nil, false
	}
}
