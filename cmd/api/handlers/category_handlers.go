package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-hub/dto"
	"prompt-hub/services"
)

// ListCategoriesHandler godoc
// @Summary      List prompt categories
// @Description  Active categories with denormalized prompt counts
// @Tags         categories
// @Param        include_inactive  query  bool  false  "Include inactive categories (admin UI)"
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		includeInactive := c.Query("include_inactive") == "true"
		categories, err := svc.ListCategories(c.Request.Context(), includeInactive)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategoryHandler godoc
// @Summary      Create a prompt category
// @Tags         categories-admin
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  createCategoryRequest  true  "Category fields"
// @Produce      json
// @Success      201  {object}  dto.CategoryDTO
// @Failure      409  {object}  errs.ErrorResponse
// @Router       /admin/categories [post]
func CreateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category, err := svc.CreateCategory(c.Request.Context(), services.CreateCategoryInput{
			Name:        req.Name,
			Description: req.Description,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

type updateCategoryRequest struct {
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateCategoryHandler godoc
// @Summary      Update a prompt category
// @Description  Only description and is_active may change; name and slug are immutable
// @Tags         categories-admin
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                 true  "Category ObjectID"
// @Param        request  body  updateCategoryRequest  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/categories/{id} [put]
func UpdateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := svc.UpdateCategory(c.Request.Context(), c.Param("id"), services.UpdateCategoryInput{
			Description: req.Description,
			IsActive:    req.IsActive,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "category updated successfully"})
	}
}

// DeleteCategoryHandler godoc
// @Summary      Delete a prompt category
// @Tags         categories-admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Category ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/categories/{id} [delete]
func DeleteCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCategory(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "category deleted successfully"})
	}
}

// ListBlogCategoriesHandler godoc
// @Summary      List blog categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.BlogCategoryDTO
// @Router       /blog/categories [get]
func ListBlogCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.ListBlogCategories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

type createBlogCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateBlogCategoryHandler godoc
// @Summary      Create a blog category
// @Tags         categories-admin
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  createBlogCategoryRequest  true  "Category fields"
// @Produce      json
// @Success      201  {object}  dto.BlogCategoryDTO
// @Failure      409  {object}  errs.ErrorResponse
// @Router       /admin/blog/categories [post]
func CreateBlogCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBlogCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		category, err := svc.CreateBlogCategory(c.Request.Context(), services.CreateBlogCategoryInput{
			Name:        req.Name,
			Description: req.Description,
			Color:       req.Color,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// DeleteBlogCategoryHandler godoc
// @Summary      Delete a blog category
// @Tags         categories-admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog category ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/blog/categories/{id} [delete]
func DeleteBlogCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBlogCategory(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "category deleted successfully"})
	}
}
