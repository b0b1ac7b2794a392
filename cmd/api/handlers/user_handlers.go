package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prompt-hub/dto"
	"prompt-hub/models"
	"prompt-hub/services"
)

type ensureProfileRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
}

// EnsureProfileHandler godoc
// @Summary      Ensure the caller's profile exists
// @Description  Creates the profile on first authenticated touch and refreshes provider-sourced fields on later sign-ins
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        request  body  ensureProfileRequest  true  "Provider-sourced profile fields"
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Router       /users/me [post]
func EnsureProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ensureProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		u, err := svc.EnsureProfile(c.Request.Context(), services.EnsureProfileInput{
			UID:         actorUID(c),
			Email:       req.Email,
			DisplayName: req.DisplayName,
			Avatar:      req.Avatar,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// GetMeHandler godoc
// @Summary      Get the caller's profile
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserDTO
// @Failure      404  {object}  errs.ErrorResponse
// @Router       /users/me [get]
func GetMeHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.Get(c.Request.Context(), actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

type updateProfileRequest struct {
	DisplayName *string             `json:"display_name"`
	Bio         *string             `json:"bio"`
	Avatar      *string             `json:"avatar"`
	SocialMedia *models.SocialMedia `json:"social_media"`
}

// UpdateProfileHandler godoc
// @Summary      Update a profile
// @Description  Users edit their own profile; admins may edit anyone's
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Param        uid      path  string                true  "Provider uid"
// @Param        request  body  updateProfileRequest  true  "Fields to change"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      403  {object}  errs.ErrorResponse
// @Router       /users/{uid} [put]
func UpdateProfileHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := svc.UpdateProfile(c.Request.Context(), c.Param("uid"), services.UpdateProfileInput{
			DisplayName: req.DisplayName,
			Bio:         req.Bio,
			Avatar:      req.Avatar,
			SocialMedia: req.SocialMedia,
		}, actorUID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "profile updated successfully"})
	}
}
