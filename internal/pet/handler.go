package pet

import (
	"errors"
	"net/http"
	"strconv"

	"groomslot/internal/auth"

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
	case errors.Is(err, ErrPetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found"})
	case errors.Is(err, ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Pet belongs to another user"})
	case errors.Is(err, ErrPetHasAppointments):
		c.JSON(http.StatusConflict, gin.H{"error": "Pet has upcoming appointments"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// CreatePet godoc
// @Summary      Register a pet
// @Description  Adds a pet to the authenticated client's account.
// @Tags         pets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePetRequest  true  "Pet data"
// @Success      201      {object}  Pet
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /pets [post]
func (h *Handler) CreatePet(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// ListPets godoc
// @Summary      List my pets
// @Description  Returns pets of the authenticated client. Admins see every pet.
// @Tags         pets
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Pet
// @Failure      401  {object}  gin.H
// @Router       /pets [get]
func (h *Handler) ListPets(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var pets []Pet
	var err error
	if role, _ := auth.GetUserRole(c); role == auth.RoleAdmin {
		pets, err = h.service.ListAll(c.Request.Context())
	} else {
		pets, err = h.service.List(c.Request.Context(), userID)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pets)
}

// GetPet godoc
// @Summary      Get pet
// @Description  Returns one pet of the authenticated client.
// @Tags         pets
// @Security     BearerAuth
// @Produce      json
// @Param        petID  path      int  true  "Pet ID"
// @Success      200    {object}  Pet
// @Failure      403    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Router       /pets/{petID} [get]
func (h *Handler) GetPet(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	petID, err := strconv.Atoi(c.Param("petID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return
	}

	pet, err := h.service.Get(c.Request.Context(), userID, petID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

// UpdatePet godoc
// @Summary      Update pet
// @Description  Updates one pet of the authenticated client.
// @Tags         pets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        petID    path      int               true  "Pet ID"
// @Param        request  body      UpdatePetRequest  true  "Pet data"
// @Success      200      {object}  Pet
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /pets/{petID} [put]
func (h *Handler) UpdatePet(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	petID, err := strconv.Atoi(c.Param("petID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pet, err := h.service.Update(c.Request.Context(), userID, petID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

// DeletePet godoc
// @Summary      Delete pet
// @Description  Removes one pet of the authenticated client.
// @Tags         pets
// @Security     BearerAuth
// @Produce      json
// @Param        petID  path      int  true  "Pet ID"
// @Success      200    {object}  gin.H
// @Failure      403    {object}  gin.H
// @Failure      404    {object}  gin.H
// @Failure      409    {object}  gin.H
// @Router       /pets/{petID} [delete]
func (h *Handler) DeletePet(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	petID, err := strconv.Atoi(c.Param("petID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pet ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, petID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted successfully"})
}
