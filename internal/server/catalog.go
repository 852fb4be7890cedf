package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) lodges(ctx *gin.Context) {
	fetch := s.deps.Catalog.Lodges
	if ctx.Query("source") == "graphql" {
		fetch = s.deps.Catalog.LodgesGraphQL
	}
	list, err := fetch(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (s *Server) lodge(ctx *gin.Context) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	l, err := s.deps.Catalog.Lodge(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, l)
}

func (s *Server) products(ctx *gin.Context) {
	list, err := s.deps.Catalog.Products(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (s *Server) product(ctx *gin.Context) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	p, err := s.deps.Catalog.Product(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

type productCartRequest struct {
	Quantity int `json:"quantity" validate:"omitempty,gte=1,lte=99"`
}

// addProductToCart is the product page's quantity picker: it resolves the
// product by id and adds it n times.
func (s *Server) addProductToCart(ctx *gin.Context) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	var req productCartRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			bindErr(ctx, err)
			return
		}
		if err := s.valid.Struct(req); err != nil {
			bindErr(ctx, err)
			return
		}
	}
	p, err := s.deps.Catalog.Product(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	n := max(req.Quantity, 1)
	s.deps.Cart.AddToCartQuantity(ctx.Request.Context(), p.AsCartProduct(), n)
	s.deps.Notify.Success(addedMessage(p.Name, n))
	s.cartInfo(ctx)
}

func (s *Server) safaris(ctx *gin.Context) {
	list, err := s.deps.Catalog.Safaris(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (s *Server) safari(ctx *gin.Context) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	sf, err := s.deps.Catalog.Safari(ctx.Request.Context(), id)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sf)
}
