package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-hub/config"
	"prompt-hub/dto"
	"prompt-hub/models"
	"prompt-hub/services"
)

// ListPromptsHandler godoc
// @Summary      List approved prompts
// @Description  List prompts with optional category filter and pagination, newest first
// @Tags         prompts
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        category   query  string  false  "Category name"
// @Produce      json
// @Success      200  {object}  dto.PromptListResponseDTO
// @Router       /prompts [get]
func ListPromptsHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := paging(c)
		in := services.ListPromptsInput{
			Status:   models.PromptStatusApproved,
			Category: c.Query("category"),
			Page:     page,
			PageSize: pageSize,
		}

		result, err := svc.List(c.Request.Context(), in)
		if err != nil {
			// The public catalog never surfaces an unstructured failure:
			// clients get the listing shape with zero prompts and a 500.
			config.Log.Errorf("prompt listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.PromptListResponseDTO{
				Prompts:    []dto.PromptDTO{},
				Pagination: dto.EmptyPaginationMetaDTO(page, pageSize),
			})
			return
		}

		c.JSON(http.StatusOK, dto.PromptListResponseDTO{
			Prompts:    result.Items,
			Pagination: dto.NewPaginationMetaDTO(result),
		})
	}
}

// GetPromptHandler godoc
// @Summary      Get prompt by slug
// @Tags         prompts
// @Param        slug  path  string  true  "Prompt slug"
// @Produce      json
// @Success      200  {object}  dto.PromptDTO
// @Failure      404  {object}  errs.ErrorResponse
// @Router       /prompts/{slug} [get]
func GetPromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type createPromptRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	FullPrompt  string   `json:"full_prompt" binding:"required"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// CreatePromptHandler godoc
// @Summary      Submit a prompt
// @Description  Contributors land in the moderation queue; admins are approved immediately
// @Tags         prompts
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  createPromptRequest  true  "Prompt fields"
// @Produce      json
// @Success      201  {object}  dto.PromptDTO
// @Failure      400  {object}  errs.ErrorResponse
// @Router       /prompts [post]
func CreatePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPromptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), services.CreatePromptInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			FullPrompt:  req.FullPrompt,
			Tags:        req.Tags,
			Images:      req.Images,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

type updatePromptRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	FullPrompt  *string  `json:"full_prompt"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// UpdatePromptHandler godoc
// @Summary      Update a prompt
// @Description  Merge the provided fields; creator or admin only
// @Tags         prompts
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string               true  "Prompt ObjectID"
// @Param        request  body  updatePromptRequest  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  errs.ErrorResponse
// @Router       /prompts/{id} [put]
func UpdatePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePromptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := svc.Update(c.Request.Context(), c.Param("id"), services.UpdatePromptInput{
			Title:       req.Title,
			Description: req.Description,
			FullPrompt:  req.FullPrompt,
			Tags:        req.Tags,
			Images:      req.Images,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "prompt updated successfully"})
	}
}

// DeletePromptHandler godoc
// @Summary      Delete a prompt
// @Tags         prompts
// @Security     BearerAuth
// @Param        id  path  string  true  "Prompt ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  errs.ErrorResponse
// @Router       /prompts/{id} [delete]
func DeletePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "prompt deleted successfully"})
	}
}

type voteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// VotePromptHandler godoc
// @Summary      Vote on a prompt
// @Tags         prompts
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string       true  "Prompt ObjectID"
// @Param        request  body  voteRequest  true  "Vote direction"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  errs.ErrorResponse
// @Router       /prompts/{id}/vote [post]
func VotePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req voteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Vote(c.Request.Context(), c.Param("id"), req.Direction == "up"); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "vote recorded successfully"})
	}
}
