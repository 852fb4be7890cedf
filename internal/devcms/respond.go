package devcms

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

func respondOne(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, gin.H{"data": data, "meta": gin.H{}})
}

// respondList wraps a whole collection as a single page.
func respondList[T any](ctx *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	pageSize := max(len(data), 25)
	ctx.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{"pagination": pagination{Page: 1, PageSize: pageSize, PageCount: 1, Total: len(data)}},
	})
}

func fail(ctx *gin.Context, status int, name, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{
		"data": nil,
		"error": gin.H{
			"status":  status,
			"name":    name,
			"message": message,
			"details": gin.H{},
		},
	})
}

func validationFailed(ctx *gin.Context, message string) {
	fail(ctx, http.StatusBadRequest, "ValidationError", message)
}

func unauthorized(ctx *gin.Context) {
	fail(ctx, http.StatusUnauthorized, "UnauthorizedError", "Missing or invalid credentials")
}

func forbidden(ctx *gin.Context) {
	fail(ctx, http.StatusForbidden, "ForbiddenError", "Forbidden")
}

func notFound(ctx *gin.Context) {
	fail(ctx, http.StatusNotFound, "NotFoundError", "Not Found")
}

func internalErr(ctx *gin.Context) {
	fail(ctx, http.StatusInternalServerError, "InternalServerError", "Internal Server Error")
}

func paramID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		notFound(ctx)
		return 0, false
	}
	return id, true
}

func populated(ctx *gin.Context) bool {
	return ctx.Query("populate") != ""
}

func media(url string) gin.H {
	if url == "" {
		return nil
	}
	return gin.H{"url": url}
}
