package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-hub/config"
	"prompt-hub/dto"
	"prompt-hub/models"
	"prompt-hub/services"
)

// ListBlogPostsHandler godoc
// @Summary      List published blog posts
// @Description  List posts with optional category filter and pagination, newest first. Full content is omitted from list items.
// @Tags         blog
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        category   query  string  false  "Blog category slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPostListResponseDTO
// @Router       /blog/posts [get]
func ListBlogPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := paging(c)
		in := services.ListBlogPostsInput{
			Status:   models.BlogPostStatusPublished,
			Category: c.Query("category"),
			Page:     page,
			PageSize: pageSize,
		}

		result, err := svc.List(c.Request.Context(), in)
		if err != nil {
			// Same degrade path as the prompt catalog.
			config.Log.Errorf("blog listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.BlogPostListResponseDTO{
				Posts:      []dto.BlogPostDTO{},
				Pagination: dto.EmptyPaginationMetaDTO(page, pageSize),
			})
			return
		}

		c.JSON(http.StatusOK, dto.BlogPostListResponseDTO{
			Posts:      result.Items,
			Pagination: dto.NewPaginationMetaDTO(result),
		})
	}
}

// ListBlogPostsAdminHandler godoc
// @Summary      List blog posts in any status
// @Description  Admin view of the blog catalog. Defaults to drafts so the publish queue is the first thing an editor sees.
// @Tags         admin
// @Security     BearerAuth
// @Param        status     query  string  false  "draft, published or archived (default draft)"
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        category   query  string  false  "Blog category slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPostListResponseDTO
// @Failure      400  {object}  errs.ErrorResponse
// @Router       /admin/blog/posts [get]
func ListBlogPostsAdminHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := paging(c)
		in := services.ListBlogPostsInput{
			Status:   c.DefaultQuery("status", models.BlogPostStatusDraft),
			Category: c.Query("category"),
			Page:     page,
			PageSize: pageSize,
		}

		result, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.BlogPostListResponseDTO{
			Posts:      result.Items,
			Pagination: dto.NewPaginationMetaDTO(result),
		})
	}
}

// GetBlogPostHandler godoc
// @Summary      Get published post by slug
// @Description  Returns the full post and counts the view
// @Tags         blog
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPostDTO
// @Failure      404  {object}  errs.ErrorResponse
// @Router       /blog/posts/{slug} [get]
func GetBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type createBlogPostRequest struct {
	Title         string     `json:"title" binding:"required"`
	Content       string     `json:"content" binding:"required"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	Category      string     `json:"category" binding:"required"`
	Tags          []string   `json:"tags"`
	SEO           models.SEO `json:"seo"`
	ReadTime      int        `json:"read_time"`
}

// CreateBlogPostHandler godoc
// @Summary      Create a blog post
// @Description  Admin only; the post starts in draft
// @Tags         blog-admin
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  createBlogPostRequest  true  "Post fields"
// @Produce      json
// @Success      201  {object}  dto.BlogPostDTO
// @Failure      403  {object}  errs.ErrorResponse
// @Router       /admin/blog/posts [post]
func CreateBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), services.CreateBlogPostInput{
			Title:         req.Title,
			Content:       req.Content,
			Excerpt:       req.Excerpt,
			FeaturedImage: req.FeaturedImage,
			Category:      req.Category,
			Tags:          req.Tags,
			SEO:           req.SEO,
			ReadTime:      req.ReadTime,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// PublishBlogPostHandler godoc
// @Summary      Publish a draft post
// @Tags         blog-admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      409  {object}  errs.ErrorResponse
// @Router       /admin/blog/posts/{id}/publish [post]
func PublishBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Publish(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post published successfully"})
	}
}

// UnpublishBlogPostHandler godoc
// @Summary      Revert a published post to draft
// @Tags         blog-admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      409  {object}  errs.ErrorResponse
// @Router       /admin/blog/posts/{id}/unpublish [post]
func UnpublishBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Unpublish(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post unpublished successfully"})
	}
}

// ArchiveBlogPostHandler godoc
// @Summary      Archive a post
// @Tags         blog-admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/blog/posts/{id}/archive [post]
func ArchiveBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Archive(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post archived successfully"})
	}
}

type updateBlogPostRequest struct {
	Title         *string     `json:"title"`
	Content       *string     `json:"content"`
	Excerpt       *string     `json:"excerpt"`
	FeaturedImage *string     `json:"featured_image"`
	Tags          []string    `json:"tags"`
	SEO           *models.SEO `json:"seo"`
	ReadTime      *int        `json:"read_time"`
}

// UpdateBlogPostHandler godoc
// @Summary      Update a blog post
// @Tags         blog-admin
// @Security     BearerAuth
// @Accept       json
// @Param        id       path  string                 true  "Post ObjectID"
// @Param        request  body  updateBlogPostRequest  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/blog/posts/{id} [put]
func UpdateBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateBlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := svc.Update(c.Request.Context(), c.Param("id"), services.UpdateBlogPostInput{
			Title:         req.Title,
			Content:       req.Content,
			Excerpt:       req.Excerpt,
			FeaturedImage: req.FeaturedImage,
			Tags:          req.Tags,
			SEO:           req.SEO,
			ReadTime:      req.ReadTime,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post updated successfully"})
	}
}

// DeleteBlogPostHandler godoc
// @Summary      Delete a blog post
// @Tags         blog-admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/blog/posts/{id} [delete]
func DeleteBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id"), actorUID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "post deleted successfully"})
	}
}
