package devcms

import (
	"github.com/gin-gonic/gin"

	"github.com/azaliaz/ruboni/internal/devcms/store"
)

// Lodges and safaris are served flat, products nested under attributes,
// the two shapes the CMS has used across versions.

func lodgeJSON(l store.Lodge, withMedia bool) gin.H {
	out := gin.H{
		"id":         l.ID,
		"documentId": l.DocumentID,
		"name":       l.Name,
		"location":   l.Location,
		"region":     l.Region,
		"district":   l.District,
		"services":   l.Services,
		"rating":     l.Rating,
		"price":      l.Price,
		"createdAt":  l.CreatedAt,
	}
	if withMedia {
		photos := make([]gin.H, 0, len(l.Photos))
		for _, p := range l.Photos {
			photos = append(photos, media(p))
		}
		out["photo"] = media(l.Photo)
		out["photos"] = photos
	}
	return out
}

func productJSON(p store.Product, withMedia bool) gin.H {
	attrs := gin.H{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"currency":    p.Currency,
		"rating":      p.Rating,
	}
	if withMedia {
		var image gin.H
		if p.Image != "" {
			image = gin.H{"id": p.ID, "attributes": media(p.Image)}
		}
		attrs["image"] = gin.H{"data": image}
	}
	return gin.H{"id": p.ID, "documentId": p.DocumentID, "attributes": attrs}
}

func safariJSON(s store.Safari, withMedia bool) gin.H {
	out := gin.H{
		"id":           s.ID,
		"documentId":   s.DocumentID,
		"safariName":   s.SafariName,
		"overview":     s.Overview,
		"location":     s.Location,
		"duration":     s.Duration,
		"overralPrice": s.OverallPrice,
	}
	if withMedia {
		out["image"] = media(s.Image)
	}
	return out
}

func mapAll[T any](items []T, render func(T, bool) gin.H, withMedia bool) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, render(it, withMedia))
	}
	return out
}

func (s *Server) lodges(ctx *gin.Context) {
	respondList(ctx, mapAll(s.storage.Lodges(), lodgeJSON, populated(ctx)))
}

func (s *Server) lodge(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	l, err := s.storage.Lodge(id)
	if err != nil {
		notFound(ctx)
		return
	}
	respondOne(ctx, lodgeJSON(l, populated(ctx)))
}

func (s *Server) products(ctx *gin.Context) {
	respondList(ctx, mapAll(s.storage.Products(), productJSON, populated(ctx)))
}

func (s *Server) product(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	p, err := s.storage.Product(id)
	if err != nil {
		notFound(ctx)
		return
	}
	respondOne(ctx, productJSON(p, populated(ctx)))
}

func (s *Server) safaris(ctx *gin.Context) {
	respondList(ctx, mapAll(s.storage.Safaris(), safariJSON, populated(ctx)))
}

func (s *Server) safari(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	sf, err := s.storage.Safari(id)
	if err != nil {
		notFound(ctx)
		return
	}
	respondOne(ctx, safariJSON(sf, populated(ctx)))
}
