// Package handlers wires HTTP requests to the service layer. Handlers
// bind input, call one service method, and translate the typed error to
// a status code; no business rules live here.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"prompt-hub/cmd/api/middleware"
	"prompt-hub/errs"
)

// respondError maps a service error onto the uniform error body.
func respondError(c *gin.Context, err error) {
	httpErr := errs.MapToHTTP(err)
	c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// actorUID returns the authenticated uid placed by the auth middleware,
// or "" on unauthenticated routes.
func actorUID(c *gin.Context) string {
	return c.GetString(middleware.ContextUID)
}

// paging parses the page and page_size query parameters. Out-of-range
// values are normalized by the services, not here.
func paging(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	return page, pageSize
}
