package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"groomslot/internal/auth"
	"groomslot/internal/availability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBlockNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Working block not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Working block belongs to another groomer"})
	case errors.Is(err, ErrInvalidTimes), errors.Is(err, availability.ErrBadClock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// CreateBlock godoc
// @Summary      Create working block
// @Description  Adds a weekly working block. Groomers manage their own schedule, admins any.
// @Tags         schedule
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        groomer_id  query     int                 false  "Target groomer (admin only, defaults to caller)"
// @Param        request     body      CreateBlockRequest  true   "Block data"
// @Success      201         {object}  WorkingBlock
// @Failure      400         {object}  gin.H
// @Failure      403         {object}  gin.H
// @Router       /schedule [post]
func (h *Handler) CreateBlock(c *gin.Context) {
	actorID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	actorRole, _ := auth.GetUserRole(c)

	groomerID := actorID
	if idStr := c.Query("groomer_id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid groomer_id"})
			return
		}
		groomerID = id
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block, err := h.service.Create(c.Request.Context(), actorID, actorRole, groomerID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

// ListMyBlocks godoc
// @Summary      List own working blocks
// @Description  Returns the authenticated groomer's weekly schedule.
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   WorkingBlock
// @Failure      401  {object}  gin.H
// @Router       /schedule [get]
func (h *Handler) ListMyBlocks(c *gin.Context) {
	actorID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	blocks, err := h.service.ListForGroomer(c.Request.Context(), actorID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// ListGroomerBlocks godoc
// @Summary      List groomer schedule
// @Description  Returns the active weekly working blocks of a groomer.
// @Tags         schedule
// @Produce      json
// @Param        groomerID  path      int  true  "Groomer ID"
// @Success      200        {array}   WorkingBlock
// @Failure      400        {object}  gin.H
// @Router       /groomers/{groomerID}/schedule [get]
func (h *Handler) ListGroomerBlocks(c *gin.Context) {
	groomerID, err := strconv.Atoi(c.Param("groomerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid groomer ID"})
		return
	}

	blocks, err := h.service.ListActiveForGroomer(c.Request.Context(), groomerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, blocks)
}

// UpdateBlock godoc
// @Summary      Update working block
// @Tags         schedule
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        blockID  path      int                 true  "Block ID"
// @Param        request  body      UpdateBlockRequest  true  "Block data"
// @Success      200      {object}  WorkingBlock
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /schedule/{blockID} [put]
func (h *Handler) UpdateBlock(c *gin.Context) {
	actorID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	actorRole, _ := auth.GetUserRole(c)

	blockID, err := strconv.Atoi(c.Param("blockID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid block ID"})
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	block, err := h.service.Update(c.Request.Context(), actorID, actorRole, blockID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, block)
}

// DeleteBlock godoc
// @Summary      Delete working block
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Param        blockID  path      int  true  "Block ID"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /schedule/{blockID} [delete]
func (h *Handler) DeleteBlock(c *gin.Context) {
	actorID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	actorRole, _ := auth.GetUserRole(c)

	blockID, err := strconv.Atoi(c.Param("blockID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid block ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), actorID, actorRole, blockID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working block deleted successfully"})
}
