package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-hub/dto"
	"prompt-hub/services"
)

// GetStatsHandler godoc
// @Summary      Dashboard statistics
// @Description  Full-scan rollup of user and prompt counts by status
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.StatsDTO
// @Failure      403  {object}  errs.ErrorResponse
// @Failure      500  {object}  errs.ErrorResponse
// @Router       /admin/stats [get]
func GetStatsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.GetStats(c.Request.Context(), actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// ListPendingPromptsHandler godoc
// @Summary      Moderation queue
// @Description  Pending prompts, newest first
// @Tags         admin
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.PromptListResponseDTO
// @Failure      403  {object}  errs.ErrorResponse
// @Router       /admin/prompts/pending [get]
func ListPendingPromptsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := paging(c)
		result, err := svc.ListPendingPrompts(c.Request.Context(), actorUID(c), page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.PromptListResponseDTO{
			Prompts:    result.Items,
			Pagination: dto.NewPaginationMetaDTO(result),
		})
	}
}

// ApprovePromptHandler godoc
// @Summary      Approve a pending prompt
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Prompt ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PromptDTO
// @Failure      409  {object}  errs.ErrorResponse
// @Router       /admin/prompts/{id}/approve [post]
func ApprovePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Approve(c.Request.Context(), c.Param("id"), actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// RejectPromptHandler godoc
// @Summary      Reject a pending prompt
// @Description  Rejected is terminal; the prompt never becomes publicly visible
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Prompt ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PromptDTO
// @Failure      409  {object}  errs.ErrorResponse
// @Router       /admin/prompts/{id}/reject [post]
func RejectPromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Reject(c.Request.Context(), c.Param("id"), actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// ListUsersHandler godoc
// @Summary      List user profiles
// @Tags         admin
// @Security     BearerAuth
// @Param        page       query  int  false  "Page number (1-based)"
// @Param        page_size  query  int  false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  pagination.Page[dto.UserDTO]
// @Failure      403  {object}  errs.ErrorResponse
// @Router       /admin/users [get]
func ListUsersHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := paging(c)
		result, err := svc.ListUsers(c.Request.Context(), actorUID(c), page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
