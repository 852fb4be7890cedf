package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azaliaz/ruboni/internal/domain/models"
)

type addToCartRequest struct {
	Product struct {
		ID       int64   `json:"id" validate:"required,gt=0"`
		Title    string  `json:"title" validate:"required"`
		Price    float64 `json:"price" validate:"gte=0"`
		Currency string  `json:"currency"`
	} `json:"product"`
	Quantity int `json:"quantity" validate:"omitempty,gte=1,lte=99"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (s *Server) cartInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"items":      s.deps.Cart.Items(),
		"totalItems": s.deps.Cart.TotalItems(),
		"totalPrice": s.deps.Cart.TotalPrice(),
	})
}

func (s *Server) addToCart(ctx *gin.Context) {
	var req addToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	if err := s.valid.Struct(req); err != nil {
		bindErr(ctx, err)
		return
	}
	n := max(req.Quantity, 1)
	s.deps.Cart.AddToCartQuantity(ctx.Request.Context(), models.Product{
		ID:       req.Product.ID,
		Title:    req.Product.Title,
		Price:    req.Product.Price,
		Currency: req.Product.Currency,
	}, n)
	s.deps.Notify.Success(addedMessage(req.Product.Title, n))
	s.cartInfo(ctx)
}

func addedMessage(title string, n int) string {
	if n > 1 {
		return fmt.Sprintf("%s (x%d) added to cart!", title, n)
	}
	return title + " added to cart!"
}

func (s *Server) updateQuantity(ctx *gin.Context) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	var req quantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindErr(ctx, err)
		return
	}
	if err := s.valid.Struct(req); err != nil {
		bindErr(ctx, err)
		return
	}
	s.deps.Cart.UpdateQuantity(ctx.Request.Context(), id, *req.Quantity)
	s.cartInfo(ctx)
}

func (s *Server) removeFromCart(ctx *gin.Context) {
	id, err := paramID(ctx)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	s.deps.Cart.RemoveFromCart(ctx.Request.Context(), id)
	s.deps.Notify.Error("Item removed from cart")
	s.cartInfo(ctx)
}

func (s *Server) clearCart(ctx *gin.Context) {
	s.deps.Cart.ClearCart(ctx.Request.Context())
	s.deps.Notify.Success("Cart cleared!")
	s.cartInfo(ctx)
}

func (s *Server) checkout(ctx *gin.Context) {
	snap, err := s.deps.Cart.Checkout(ctx.Request.Context())
	if err != nil {
		s.deps.Notify.Error(err.Error())
		respondErr(ctx, err)
		return
	}
	s.deps.Notify.Success("Proceeding to checkout...")
	ctx.JSON(http.StatusOK, snap)
}
