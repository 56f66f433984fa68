package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"MemberDirectory_UnityProject/internal/models"
	"MemberDirectory_UnityProject/internal/storage"
)

const profileTimeLayout = "2006-01-02 15:04:05"

type CreateProfileRequest struct {
	Nickname     string `json:"nickname"`
	Location     string `json:"location"`
	Hobby        string `json:"hobby"`
	Tweet        string `json:"tweet"`
	Introduction string `json:"introduction"`
}

type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname"`
	Location     *string `json:"location"`
	Hobby        *string `json:"hobby"`
	Tweet        *string `json:"tweet"`
	Introduction *string `json:"introduction"`
}

// ProfileResponse renders timestamps the way the front-end already
// parses them.
type ProfileResponse struct {
	User         string `json:"user"`
	Nickname     string `json:"nickname"`
	Location     string `json:"location"`
	Hobby        string `json:"hobby"`
	Tweet        string `json:"tweet"`
	Introduction string `json:"introduction"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func profileResponse(profile models.Profile) ProfileResponse {
	return ProfileResponse{
		User:         profile.UserID,
		Nickname:     profile.Nickname,
		Location:     profile.Location,
		Hobby:        profile.Hobby,
		Tweet:        profile.Tweet,
		Introduction: profile.Introduction,
		CreatedAt:    profile.CreatedAt.Format(profileTimeLayout),
		UpdatedAt:    profile.UpdatedAt.Format(profileTimeLayout),
	}
}

// CreateProfile godoc
// @Summary      Create a user's profile
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                       true  "local user id"
// @Param        request  body  handler.CreateProfileRequest true  "profile fields"
// @Success      200 {object} handler.ProfileResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/profiles/{user_id} [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	userID := c.Param("user_id")

	var request CreateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(request.Nickname) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nickname cannot be empty"})
		return
	}

	if _, err := storage.GetUserByID(userID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] GetUserByID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	profile, err := storage.CreateProfile(models.Profile{
		UserID:       userID,
		Nickname:     request.Nickname,
		Location:     request.Location,
		Hobby:        request.Hobby,
		Tweet:        request.Tweet,
		Introduction: request.Introduction,
	})
	if err != nil {
		if errors.Is(err, storage.ErrProfileExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Profile already exists"})
			return
		}
		log.Printf("[ERROR] CreateProfile failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

// GetProfile godoc
// @Summary      Retrieve a user's profile
// @Tags         Profiles
// @Produce      json
// @Param        user_id  path  string  true  "local user id"
// @Success      200 {object} handler.ProfileResponse
// @Failure      404 {object} map[string]string
// @Router       /api/profiles/{user_id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := storage.GetProfileByUserID(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		log.Printf("[ERROR] GetProfileByUserID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(profile))
}

// UpdateProfile godoc
// @Summary      Update a user's profile
// @Description  Partial update; omitted fields keep their value.
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                       true  "local user id"
// @Param        request  body  handler.UpdateProfileRequest true  "fields to change"
// @Success      200 {object} handler.ProfileResponse
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/profiles/{user_id} [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	profile, err := storage.GetProfileByUserID(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		log.Printf("[ERROR] GetProfileByUserID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var request UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if request.Nickname != nil {
		if strings.TrimSpace(*request.Nickname) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nickname cannot be empty"})
			return
		}
		profile.Nickname = *request.Nickname
	}
	if request.Location != nil {
		profile.Location = *request.Location
	}
	if request.Hobby != nil {
		profile.Hobby = *request.Hobby
	}
	if request.Tweet != nil {
		profile.Tweet = *request.Tweet
	}
	if request.Introduction != nil {
		profile.Introduction = *request.Introduction
	}

	updated, err := storage.UpdateProfile(profile)
	if err != nil {
		log.Printf("[ERROR] UpdateProfile failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, profileResponse(updated))
}

// DeleteProfile godoc
// @Summary      Delete is not allowed
// @Description  Accounts are deactivated by an operator instead of deleted through the API.
// @Tags         Profiles
// @Produce      json
// @Param        user_id  path  string  true  "local user id"
// @Failure      400 {object} map[string]string
// @Router       /api/profiles/{user_id} [delete]
func (h *Handler) DeleteProfile(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Delete is not allowed !"})
}
