package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListMembers godoc
// @Summary      Raw member list proxy
// @Description  Every upstream member record, flattened, without the local-account join.
// @Tags         Members
// @Produce      json
// @Success      200 {array} kaonavi.MemberSummary
// @Failure      500 {array} string
// @Router       /kaonavi-api/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	result := h.directory.ListMembers()
	if !result.IsSuccess() {
		log.Printf("[ERROR] member list proxy failed: %v", result.Err())
		c.JSON(http.StatusInternalServerError, result.ErrorMessages())
		return
	}
	c.JSON(http.StatusOK, result.Data())
}

// GetMember godoc
// @Summary      Raw member proxy by code
// @Description  The member record matching the given code, as a one-element list.
// @Tags         Members
// @Produce      json
// @Param        code  path  string  true  "member code"
// @Success      200 {array} kaonavi.MemberSummary
// @Failure      500 {array} string
// @Router       /kaonavi-api/members/{code} [get]
func (h *Handler) GetMember(c *gin.Context) {
	result := h.directory.GetMember(c.Param("code"))
	if !result.IsSuccess() {
		log.Printf("[ERROR] member proxy failed: %v", result.Err())
		c.JSON(http.StatusInternalServerError, result.ErrorMessages())
		return
	}
	c.JSON(http.StatusOK, result.Data())
}
