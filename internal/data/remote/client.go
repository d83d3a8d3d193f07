package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quickshow-booking/internal/data/entity"
)

// Client talks to the remote booking authority. Every failure mode - network
// error, timeout, non-2xx status, undecodable body - is reported as
// entity.ErrRemoteUnavailable so the gateway can treat them uniformly.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateTicketRequest is the POST /tickets body.
type CreateTicketRequest struct {
	ShowID      string   `json:"showId"`
	UserID      string   `json:"userId"`
	SeatNumbers []string `json:"seatNumbers"`
	TotalAmount float64  `json:"totalAmount"`
}

func (c *Client) ListMovies(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := c.get(ctx, "/movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *Client) GetMovie(ctx context.Context, id string) (*entity.Movie, error) {
	var movie entity.Movie
	if err := c.get(ctx, "/movies/"+url.PathEscape(id), &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) SearchMovies(ctx context.Context, title string) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := c.get(ctx, "/movies/search?title="+url.QueryEscape(title), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (c *Client) GetShow(ctx context.Context, id string) (*entity.Show, error) {
	var show entity.Show
	if err := c.get(ctx, "/shows/"+url.PathEscape(id), &show); err != nil {
		return nil, err
	}
	return &show, nil
}

func (c *Client) ShowsForMovieOnDate(ctx context.Context, movieID, isoDate string) ([]entity.Show, error) {
	path := "/shows/movie/" + url.PathEscape(movieID) + "/date/" + url.PathEscape(isoDate)
	var shows []entity.Show
	if err := c.get(ctx, path, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

func (c *Client) TicketsByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := c.get(ctx, "/tickets/user/"+url.PathEscape(userID), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateTicket(ctx context.Context, req *CreateTicketRequest) (*entity.Booking, error) {
	var booking entity.Booking
	if err := c.do(ctx, http.MethodPost, "/tickets", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CancelTicket(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	if err := c.do(ctx, http.MethodPut, "/tickets/"+url.PathEscape(id)+"/cancel", nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build %s %s: %v", entity.ErrRemoteUnavailable, method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", entity.ErrRemoteUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: status %d", entity.ErrRemoteUnavailable, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode response: %v", entity.ErrRemoteUnavailable, method, path, err)
	}

	return nil
}
