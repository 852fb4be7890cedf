// Package catalog serves lodges, safaris and products with media links made absolute.
package catalog

import (
	"context"
	"net/url"
	"strings"

	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/logger"
)

type Gateway interface {
	Lodges(ctx context.Context) ([]models.Lodge, error)
	Lodge(ctx context.Context, id int64) (models.Lodge, error)
	LodgesGraphQL(ctx context.Context) ([]models.Lodge, error)
	Products(ctx context.Context) ([]models.CatalogProduct, error)
	Product(ctx context.Context, id int64) (models.CatalogProduct, error)
	Safaris(ctx context.Context) ([]models.Safari, error)
	Safari(ctx context.Context, id int64) (models.Safari, error)
}

const placeholderImage = "https://placehold.co/600x400?text=No+Image"

type Service struct {
	gw    Gateway
	media *url.URL
}

func New(gw Gateway, mediaBaseURL string) *Service {
	log := logger.Get()
	base, err := url.Parse(strings.TrimRight(mediaBaseURL, "/") + "/")
	if err != nil {
		log.Error().Err(err).Str("media", mediaBaseURL).Msg("bad media base url, media links stay relative")
		base = nil
	}
	return &Service{gw: gw, media: base}
}

// MediaURL makes an uploaded file path absolute against the media host.
func (s *Service) MediaURL(path string) string {
	if path == "" || s.media == nil {
		return path
	}
	ref, err := url.Parse(path)
	if err != nil || ref.IsAbs() {
		return path
	}
	return s.media.ResolveReference(&url.URL{Path: strings.TrimPrefix(ref.Path, "/"), RawQuery: ref.RawQuery}).String()
}

func (s *Service) lodge(l models.Lodge) models.Lodge {
	l.Photo = s.MediaURL(l.Photo)
	gallery := make([]string, 0, len(l.Gallery))
	for _, p := range l.Gallery {
		gallery = append(gallery, s.MediaURL(p))
	}
	if len(gallery) == 0 && l.Photo != "" {
		gallery = append(gallery, l.Photo)
	}
	l.Gallery = gallery
	return l
}

func (s *Service) product(p models.CatalogProduct) models.CatalogProduct {
	if p.Image == "" {
		p.Image = placeholderImage
		return p
	}
	p.Image = s.MediaURL(p.Image)
	return p
}

func (s *Service) safari(sf models.Safari) models.Safari {
	sf.Photo = s.MediaURL(sf.Photo)
	return sf
}

func (s *Service) Lodges(ctx context.Context) ([]models.Lodge, error) {
	list, err := s.gw.Lodges(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, s.lodge), nil
}

// LodgesGraphQL lists lodges through the GraphQL endpoint.
func (s *Service) LodgesGraphQL(ctx context.Context) ([]models.Lodge, error) {
	list, err := s.gw.LodgesGraphQL(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, s.lodge), nil
}

func (s *Service) Lodge(ctx context.Context, id int64) (models.Lodge, error) {
	l, err := s.gw.Lodge(ctx, id)
	if err != nil {
		return models.Lodge{}, err
	}
	return s.lodge(l), nil
}

func (s *Service) Products(ctx context.Context) ([]models.CatalogProduct, error) {
	list, err := s.gw.Products(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, s.product), nil
}

func (s *Service) Product(ctx context.Context, id int64) (models.CatalogProduct, error) {
	p, err := s.gw.Product(ctx, id)
	if err != nil {
		return models.CatalogProduct{}, err
	}
	return s.product(p), nil
}

func (s *Service) Safaris(ctx context.Context) ([]models.Safari, error) {
	list, err := s.gw.Safaris(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, s.safari), nil
}

func (s *Service) Safari(ctx context.Context, id int64) (models.Safari, error) {
	sf, err := s.gw.Safari(ctx, id)
	if err != nil {
		return models.Safari{}, err
	}
	return s.safari(sf), nil
}

func mapAll[T any](in []T, fn func(T) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
