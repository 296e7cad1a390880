package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListServices godoc
// @Summary      List active services
// @Description  Returns the services currently offered by the salon.
// @Tags         services
// @Produce      json
// @Success      200  {array}   GroomingService
// @Failure      500  {object}  gin.H
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ListAllServices godoc
// @Summary      List all services
// @Description  Returns every service including deactivated ones. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   GroomingService
// @Failure      500  {object}  gin.H
// @Router       /admin/services [get]
func (h *Handler) ListAllServices(c *gin.Context) {
	services, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService godoc
// @Summary      Create service
// @Description  Adds a new service to the catalog. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateServiceRequest  true  "Service data"
// @Success      201      {object}  GroomingService
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// UpdateService godoc
// @Summary      Update service
// @Description  Updates a catalog service. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        serviceID  path      int                   true  "Service ID"
// @Param        request    body      UpdateServiceRequest  true  "Service data"
// @Success      200        {object}  GroomingService
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /admin/services/{serviceID} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, err := h.service.Update(c.Request.Context(), serviceID, req)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeleteService godoc
// @Summary      Delete service
// @Description  Deletes a service, or deactivates it when appointments reference it. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID  path      int  true  "Service ID"
// @Success      200        {object}  gin.H
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	deactivated, err := h.service.Remove(c.Request.Context(), serviceID)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}

	if deactivated {
		c.JSON(http.StatusOK, gin.H{"message": "Service has past appointments and was deactivated instead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
