package devcms

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type graphqlRequest struct {
	Query     string         `json:"query" validate:"required"`
	Variables map[string]any `json:"variables"`
}

func graphqlErrors(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, gin.H{"data": nil, "errors": []gin.H{{"message": msg}}})
}

// graphql answers the lodges collection query only. Any other root field
// is reported the way a GraphQL server reports an unknown field.
func (s *Server) graphql(ctx *gin.Context) {
	var req graphqlRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		graphqlErrors(ctx, http.StatusBadRequest, "Must provide query string.")
		return
	}
	if err := s.valid.Struct(req); err != nil {
		graphqlErrors(ctx, http.StatusBadRequest, "Must provide query string.")
		return
	}
	if !strings.Contains(req.Query, "lodges") {
		graphqlErrors(ctx, http.StatusBadRequest, "Cannot query field on type \"Query\".")
		return
	}
	lodges := s.storage.Lodges()
	data := make([]gin.H, 0, len(lodges))
	for _, l := range lodges {
		data = append(data, gin.H{
			"id": strconv.FormatInt(l.ID, 10),
			"attributes": gin.H{
				"name":      l.Name,
				"location":  l.Location,
				"services":  l.Services,
				"region":    l.Region,
				"district":  l.District,
				"createdAt": l.CreatedAt,
			},
		})
	}
	ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"lodges": gin.H{"data": data}}})
}
