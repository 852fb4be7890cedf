package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

type stubGateway struct {
	lodges   []models.Lodge
	products []models.CatalogProduct
	safaris  []models.Safari
	err      error
}

func (s stubGateway) Lodges(context.Context) ([]models.Lodge, error) { return s.lodges, s.err }
func (s stubGateway) Lodge(_ context.Context, id int64) (models.Lodge, error) {
	for _, l := range s.lodges {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lodge{}, errors.New("Failed to fetch lodge")
}
func (s stubGateway) LodgesGraphQL(context.Context) ([]models.Lodge, error) { return s.lodges, s.err }
func (s stubGateway) Products(context.Context) ([]models.CatalogProduct, error) {
	return s.products, s.err
}
func (s stubGateway) Product(_ context.Context, id int64) (models.CatalogProduct, error) {
	return s.products[0], s.err
}
func (s stubGateway) Safaris(context.Context) ([]models.Safari, error) { return s.safaris, s.err }
func (s stubGateway) Safari(context.Context, int64) (models.Safari, error) {
	return s.safaris[0], s.err
}

func TestMediaURL(t *testing.T) {
	s := New(stubGateway{}, "https://cms.visitruboni.com")
	assert.Equal(t, "https://cms.visitruboni.com/uploads/cover.jpg", s.MediaURL("/uploads/cover.jpg"))
	assert.Equal(t, "https://cms.visitruboni.com/uploads/a.jpg", s.MediaURL("uploads/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/x.jpg", s.MediaURL("https://cdn.example.com/x.jpg"))
	assert.Equal(t, "", s.MediaURL(""))

	sub := New(stubGateway{}, "http://localhost:1337/media/")
	assert.Equal(t, "http://localhost:1337/media/uploads/b.jpg?w=200", sub.MediaURL("/uploads/b.jpg?w=200"))
}

func TestLodge_GalleryFallsBackToCover(t *testing.T) {
	gw := stubGateway{lodges: []models.Lodge{
		{ID: 1, Name: "Ruboni Lodge", Photo: "/uploads/cover.jpg"},
		{ID: 2, Name: "Rwenzori Camp", Photo: "/uploads/c2.jpg", Gallery: []string{"/uploads/g1.jpg"}},
	}}
	s := New(gw, "https://cms.visitruboni.com")

	l, err := s.Lodge(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cms.visitruboni.com/uploads/cover.jpg"}, l.Gallery)

	all, err := s.Lodges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cms.visitruboni.com/uploads/g1.jpg"}, all[1].Gallery)
}

func TestProducts_Placeholder(t *testing.T) {
	gw := stubGateway{products: []models.CatalogProduct{{ID: 3, Name: "Wild Honey"}, {ID: 4, Name: "Coffee", Image: "/uploads/c.jpg"}}}
	s := New(gw, "https://cms.visitruboni.com")

	list, err := s.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, placeholderImage, list[0].Image)
	assert.Equal(t, "https://cms.visitruboni.com/uploads/c.jpg", list[1].Image)
}

func TestErrorsPassThrough(t *testing.T) {
	s := New(stubGateway{err: errors.New("Failed to fetch safaris")}, "https://cms.visitruboni.com")
	_, err := s.Safaris(context.Background())
	assert.EqualError(t, err, "Failed to fetch safaris")
}
