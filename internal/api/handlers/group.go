package handlers

import (
	"net/http"

	"students-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// GetGroupsWithFewerOrEqualStudents lists groups by size
// @Summary Groups with at most n students
// @Description List groups having n or fewer students with their student count, largest first
// @Tags groups
// @Produce json
// @Param n path int true "Maximum number of students"
// @Success 200 {object} service.GroupCountListResponse "Successfully retrieved groups"
// @Failure 400 {object} ErrorResponse "Invalid n"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups_LE/{n}/ [get]
func (h *GroupHandler) GetGroupsWithFewerOrEqualStudents(c *gin.Context) {
	n, ok := intParam(c, "n")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid n"})
		return
	}

	groups, err := h.service.GetWithFewerOrEqualStudents(n)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}
