package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"MemberDirectory_UnityProject/internal/kaonavi"
	"MemberDirectory_UnityProject/internal/models"
	"MemberDirectory_UnityProject/internal/storage"
)

// DirectoryService is the pipeline surface the handlers call into.
type DirectoryService interface {
	ListUsers(query kaonavi.ListQuery) kaonavi.Result[*kaonavi.Page[kaonavi.ListItem]]
	GetUser(userID string) kaonavi.Result[kaonavi.Detail]
	UpsertSelfIntroduction(userID string, contents kaonavi.SheetContents) kaonavi.Result[kaonavi.Ack]
	ListMembers() kaonavi.Result[[]kaonavi.MemberSummary]
	GetMember(code string) kaonavi.Result[[]kaonavi.MemberSummary]
}

type Handler struct {
	directory DirectoryService
}

func New(directory DirectoryService) *Handler {
	return &Handler{directory: directory}
}

// /users/create request body
type CreateUserRequest struct {
	Email       string `json:"email" example:"taro@example.com"`
	Password    string `json:"password" example:"password123"`
	Username    string `json:"username" example:"taro"`
	KaonaviCode string `json:"kaonavi_code" example:"A0001"`
	ChatworkID  string `json:"chatwork_id" example:"1234567"`
}

type UpdateAccountRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Username    *string `json:"username"`
	KaonaviCode *string `json:"kaonavi_code"`
	ChatworkID  *string `json:"chatwork_id"`
}

type UpdateSelfIntroductionRequest struct {
	Contents kaonavi.SheetContents `json:"contents"`
}

// ListUsers godoc
// @Summary      Member directory user list
// @Description  Filters, normalizes and paginates the upstream member list joined with local accounts.
// @Tags         Users
// @Produce      json
// @Param        name          query  string  false  "substring match on name"
// @Param        headquarters  query  string  false  "substring match on the department path"
// @Param        department    query  string  false  "substring match on the department path"
// @Param        group         query  string  false  "substring match on the department path"
// @Param        gender        query  string  false  "substring match on gender"
// @Param        per_page      query  int     false  "page size (default 30)"
// @Param        page          query  int     false  "page number (default 1)"
// @Success      200 {object} kaonavi.Page[kaonavi.ListItem]
// @Failure      404 {object} map[string][]string "no such page"
// @Failure      500 {object} map[string][]string
// @Router       /api/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	query := kaonavi.ListQuery{
		Criteria: kaonavi.FilterCriteria{
			Name:         c.Query("name"),
			Headquarters: c.Query("headquarters"),
			Department:   c.Query("department"),
			Group:        c.Query("group"),
			Gender:       c.Query("gender"),
		},
	}

	var err error
	if query.PerPage, err = intQuery(c, "per_page"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"per_page must be a number"}})
		return
	}
	if query.Page, err = intQuery(c, "page"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"page must be a number"}})
		return
	}

	result := h.directory.ListUsers(query)
	if !result.IsSuccess() {
		h.respondPipelineError(c, result.Err(), result.ErrorMessages())
		return
	}
	if result.Data() == nil {
		// nothing matched the filter; the front-end expects a bare
		// empty array here, not an empty page object
		c.JSON(http.StatusOK, []kaonavi.ListItem{})
		return
	}
	c.JSON(http.StatusOK, result.Data())
}

// GetUserDetail godoc
// @Summary      Member directory user detail
// @Description  Overview, tags and self-introduction sheet of one user.
// @Tags         Users
// @Produce      json
// @Param        id  path  string  true  "local user id"
// @Success      200 {object} kaonavi.Detail
// @Failure      500 {object} map[string][]string
// @Router       /api/users/{id} [get]
func (h *Handler) GetUserDetail(c *gin.Context) {
	result := h.directory.GetUser(c.Param("id"))
	if !result.IsSuccess() {
		h.respondPipelineError(c, result.Err(), result.ErrorMessages())
		return
	}
	c.JSON(http.StatusOK, result.Data())
}

// UpdateSelfIntroduction godoc
// @Summary      Create or update a user's self-introduction sheet
// @Description  Writes the seven sheet fields upstream. Creates the sheet entry when the member has none, updates it otherwise.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "local user id"
// @Param        request  body  handler.UpdateSelfIntroductionRequest true "sheet contents"
// @Success      200 {object} map[string]any "user_id, success"
// @Failure      422 {object} map[string]any "user_id, success, errors (upstream list verbatim)"
// @Failure      500 {object} map[string]any
// @Router       /api/users/{id} [patch]
func (h *Handler) UpdateSelfIntroduction(c *gin.Context) {
	userID := c.Param("id")

	var request UpdateSelfIntroductionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"user_id": userID, "success": false, "errors": []string{"invalid request body"}})
		return
	}

	result := h.directory.UpsertSelfIntroduction(userID, request.Contents)
	if !result.IsSuccess() {
		status := http.StatusUnprocessableEntity
		var notFound *kaonavi.NotFoundError
		if errors.As(result.Err(), &notFound) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"user_id": userID, "success": false, "errors": result.ErrorMessages()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": userID, "success": true})
}

// CreateUser godoc
// @Summary      Create a local user
// @Description  Registers the local account row that member records are joined against.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body handler.CreateUserRequest true "new user"
// @Success      200 {object} models.User
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/users/create [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var request CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(request.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email cannot be empty"})
		return
	}
	if len(request.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		ID:           uuid.New().String(),
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: string(hashedPassword),
		KaonaviCode:  request.KaonaviCode,
		ChatworkID:   request.ChatworkID,
		IsActive:     true,
	}
	if err := storage.CreateUser(user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		} else {
			log.Printf("[ERROR] Failed to create user (database error): %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user (database error)"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAccount godoc
// @Summary      Retrieve a local account row
// @Tags         Users
// @Produce      json
// @Param        id  path  string  true  "local user id"
// @Success      200 {object} models.User
// @Failure      404 {object} map[string]string
// @Router       /api/users/{id}/account [get]
func (h *Handler) GetAccount(c *gin.Context) {
	user, err := storage.GetUserByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] GetUserByID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAccount godoc
// @Summary      Update a local account row
// @Description  Partial update; omitted fields keep their value. A new password is re-hashed.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "local user id"
// @Param        request  body  handler.UpdateAccountRequest true  "fields to change"
// @Success      200 {object} models.User
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/users/{id}/account [patch]
func (h *Handler) UpdateAccount(c *gin.Context) {
	user, err := storage.GetUserByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] GetUserByID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var request UpdateAccountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if request.Email != nil {
		if strings.TrimSpace(*request.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email cannot be empty"})
			return
		}
		user.Email = *request.Email
	}
	if request.Username != nil {
		user.Username = *request.Username
	}
	if request.KaonaviCode != nil {
		user.KaonaviCode = *request.KaonaviCode
	}
	if request.ChatworkID != nil {
		user.ChatworkID = *request.ChatworkID
	}
	if request.Password != nil {
		if len(*request.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
			return
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := storage.UpdateUser(user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}
		log.Printf("[ERROR] UpdateUser failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// respondPipelineError maps a pipeline failure to its status: the
// page validation failure is the caller's mistake, everything else
// (auth, upstream, broken join) is a server-side failure.
func (h *Handler) respondPipelineError(c *gin.Context, err error, messages []string) {
	status := http.StatusInternalServerError
	var pageErr *kaonavi.PageOutOfRangeError
	if errors.As(err, &pageErr) {
		status = http.StatusNotFound
	} else {
		log.Printf("[ERROR] directory pipeline failed: %v", err)
	}
	c.JSON(status, gin.H{"errors": messages})
}

// intQuery returns nil when the parameter is absent so the service
// can tell "not given" apart from an explicit 0, which pagination
// must reject.
func intQuery(c *gin.Context, key string) (*int, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
