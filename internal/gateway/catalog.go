package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

type lodgeWire struct {
	ID        flexID          `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Region    string          `json:"region"`
	District  string          `json:"district"`
	Services  string          `json:"services"`
	Rating    float64         `json:"rating"`
	Price     float64         `json:"price"`
	Photo     json.RawMessage `json:"photo"`
	Photos    json.RawMessage `json:"photos"`
	CreatedAt string          `json:"createdAt"`
}

func (w lodgeWire) model() models.Lodge {
	return models.Lodge{
		ID:        w.ID.Int64(),
		Name:      w.Name,
		Location:  w.Location,
		Region:    w.Region,
		District:  w.District,
		Services:  w.Services,
		Rating:    w.Rating,
		Price:     w.Price,
		Photo:     firstMedia(w.Photo),
		Gallery:   mediaURLs(w.Photos),
		CreatedAt: w.CreatedAt,
	}
}

type productWire struct {
	ID          flexID          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Currency    string          `json:"currency"`
	Rating      float64         `json:"rating"`
	Image       json.RawMessage `json:"image"`
}

func (w productWire) model() models.CatalogProduct {
	return models.CatalogProduct{
		ID:          w.ID.Int64(),
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		Currency:    w.Currency,
		Rating:      w.Rating,
		Image:       firstMedia(w.Image),
	}
}

type safariWire struct {
	ID           flexID          `json:"id"`
	SafariName   string          `json:"safariName"`
	Title        string          `json:"title"`
	Overview     string          `json:"overview"`
	Location     string          `json:"location"`
	Duration     flexID          `json:"duration"`
	OverallPrice float64         `json:"overralPrice"`
	Price        float64         `json:"price"`
	Image        json.RawMessage `json:"image"`
}

func (w safariWire) model() models.Safari {
	s := models.Safari{
		ID:          w.ID.Int64(),
		Title:       w.SafariName,
		Description: stripTags(w.Overview),
		Location:    w.Location,
		Price:       w.OverallPrice,
		Photo:       firstMedia(w.Image),
	}
	if s.Title == "" {
		s.Title = w.Title
	}
	if s.Price == 0 {
		s.Price = w.Price
	}
	if w.Duration != "" {
		s.Duration = string(w.Duration) + " Day(s)"
	}
	return s
}

type modeler[M any] interface {
	model() M
}

func list[W modeler[M], M any](ctx context.Context, c *Client, path, fallback string) ([]M, error) {
	raw, err := c.data(ctx, request{method: http.MethodGet, path: path, query: populateAll(), fallback: fallback})
	if err != nil {
		return nil, err
	}
	wires, err := decodeList[W](raw)
	if err != nil {
		return nil, &APIError{Message: fallback, Err: fmt.Errorf("decode %s: %w", path, err)}
	}
	out := make([]M, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.model())
	}
	return out, nil
}

func one[W modeler[M], M any](ctx context.Context, c *Client, path, fallback string) (M, error) {
	var zero M
	raw, err := c.data(ctx, request{method: http.MethodGet, path: path, query: populateAll(), fallback: fallback})
	if err != nil {
		return zero, err
	}
	var w W
	if err := decodeOne(raw, &w); err != nil {
		return zero, &APIError{Message: fallback, Err: fmt.Errorf("decode %s: %w", path, err)}
	}
	return w.model(), nil
}

func (c *Client) Lodges(ctx context.Context) ([]models.Lodge, error) {
	return list[lodgeWire, models.Lodge](ctx, c, "/lodges", "Failed to fetch lodges")
}

func (c *Client) Lodge(ctx context.Context, id int64) (models.Lodge, error) {
	return one[lodgeWire, models.Lodge](ctx, c, "/lodges/"+strconv.FormatInt(id, 10), "Failed to fetch lodge")
}

func (c *Client) Products(ctx context.Context) ([]models.CatalogProduct, error) {
	return list[productWire, models.CatalogProduct](ctx, c, "/products", "Failed to fetch products")
}

func (c *Client) Product(ctx context.Context, id int64) (models.CatalogProduct, error) {
	return one[productWire, models.CatalogProduct](ctx, c, "/products/"+strconv.FormatInt(id, 10), "Failed to fetch product")
}

func (c *Client) Safaris(ctx context.Context) ([]models.Safari, error) {
	return list[safariWire, models.Safari](ctx, c, "/safaris", "Failed to fetch safaris")
}

func (c *Client) Safari(ctx context.Context, id int64) (models.Safari, error) {
	return one[safariWire, models.Safari](ctx, c, "/safaris/"+strconv.FormatInt(id, 10), "Failed to fetch safari")
}
