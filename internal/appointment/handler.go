package appointment

import (
	"errors"
	"net/http"
	"strconv"

	"groomslot/internal/auth"
	"groomslot/internal/availability"
	"groomslot/internal/catalog"
	"groomslot/internal/pet"

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
	case errors.Is(err, ErrAppointmentNotFound),
		errors.Is(err, pet.ErrPetNotFound),
		errors.Is(err, catalog.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotYours), errors.Is(err, ErrNotYourPet):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrSlotTaken),
		errors.Is(err, ErrPetDoubleBooked),
		errors.Is(err, ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrBadDate),
		errors.Is(err, availability.ErrBadClock),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrNotAGroomer),
		errors.Is(err, ErrServiceInactive),
		errors.Is(err, ErrOutsideSchedule),
		errors.Is(err, ErrNotReschedulable),
		errors.Is(err, ErrNotFinishedYet),
		errors.Is(err, ErrNotStartedYet):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// GetAvailability godoc
// @Summary      Availability for a groomer and date
// @Description  Returns the candidate start times for a service, with occupied and current flags.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        groomer_id              query     int     true   "Groomer ID"
// @Param        service_id              query     int     true   "Service ID"
// @Param        date                    query     string  true   "Date (YYYY-MM-DD)"
// @Param        exclude_appointment_id  query     int     false  "Appointment being rescheduled"
// @Success      200                     {object}  AvailabilityResponse
// @Failure      400                     {object}  gin.H
// @Failure      404                     {object}  gin.H
// @Router       /availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	groomerID, err := strconv.Atoi(c.Query("groomer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groomer_id is required"})
		return
	}

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_id is required"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	excludeID := 0
	if v := c.Query("exclude_appointment_id"); v != "" {
		excludeID, err = strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exclude_appointment_id"})
			return
		}
	}

	resp, err := h.service.Availability(c.Request.Context(), groomerID, serviceID, date, excludeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateAppointment godoc
// @Summary      Book appointment
// @Description  Books a grooming appointment for one of the client's pets.
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateAppointmentRequest  true  "Appointment data"
// @Success      201      {object}  AppointmentWithDetails
// @Failure      400      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /appointments [post]
func (h *Handler) CreateAppointment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// ListAppointments godoc
// @Summary      List appointments
// @Description  Clients see their own appointments, groomers their calendar, admins everything.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   AppointmentWithDetails
// @Failure      401  {object}  gin.H
// @Router       /appointments [get]
func (h *Handler) ListAppointments(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	appts, err := h.service.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appts)
}

// GetAppointment godoc
// @Summary      Get appointment
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  AppointmentWithDetails
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Router       /appointments/{appointmentID} [get]
func (h *Handler) GetAppointment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	appt, err := h.service.Get(c.Request.Context(), userID, role, appointmentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointment godoc
// @Summary      Reschedule appointment
// @Description  Moves a pending appointment to a new date and time.
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        appointmentID  path      int                true  "Appointment ID"
// @Param        request        body      RescheduleRequest  true  "New date and time"
// @Success      200            {object}  AppointmentWithDetails
// @Failure      400            {object}  gin.H
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      409            {object}  gin.H
// @Router       /appointments/{appointmentID}/reschedule [post]
func (h *Handler) RescheduleAppointment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.service.Reschedule(c.Request.Context(), userID, role, appointmentID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

func (h *Handler) transition(c *gin.Context, fn func(userID int, role string, id int) error, message string) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	appointmentID, err := strconv.Atoi(c.Param("appointmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	if err := fn(userID, role, appointmentID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// CancelAppointment godoc
// @Summary      Cancel appointment
// @Description  Cancels a pending or confirmed appointment. Groomer or admin only.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      409            {object}  gin.H
// @Router       /appointments/{appointmentID}/cancel [post]
func (h *Handler) CancelAppointment(c *gin.Context) {
	h.transition(c, func(userID int, role string, id int) error {
		return h.service.Cancel(c.Request.Context(), userID, role, id)
	}, "Appointment cancelled successfully")
}

// ConfirmAppointment godoc
// @Summary      Confirm appointment
// @Description  Confirms a pending appointment. Groomer or admin only.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      409            {object}  gin.H
// @Router       /appointments/{appointmentID}/confirm [post]
func (h *Handler) ConfirmAppointment(c *gin.Context) {
	h.transition(c, func(userID int, role string, id int) error {
		return h.service.Confirm(c.Request.Context(), userID, role, id)
	}, "Appointment confirmed")
}

// CompleteAppointment godoc
// @Summary      Complete appointment
// @Description  Marks a confirmed appointment as completed once it has finished. Groomer or admin only.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      409            {object}  gin.H
// @Router       /appointments/{appointmentID}/complete [post]
func (h *Handler) CompleteAppointment(c *gin.Context) {
	h.transition(c, func(userID int, role string, id int) error {
		return h.service.Complete(c.Request.Context(), userID, role, id)
	}, "Appointment completed")
}

// MarkNoShow godoc
// @Summary      Mark no-show
// @Description  Marks an appointment as a no-show after its start time. Groomer or admin only.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        appointmentID  path      int  true  "Appointment ID"
// @Success      200            {object}  gin.H
// @Failure      400            {object}  gin.H
// @Failure      403            {object}  gin.H
// @Failure      404            {object}  gin.H
// @Failure      409            {object}  gin.H
// @Router       /appointments/{appointmentID}/no-show [post]
func (h *Handler) MarkNoShow(c *gin.Context) {
	h.transition(c, func(userID int, role string, id int) error {
		return h.service.NoShow(c.Request.Context(), userID, role, id)
	}, "Appointment marked as no-show")
}

// DayView godoc
// @Summary      Groomer day view
// @Description  Returns the groomer's appointments for one date, ordered by start time.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        date        query     string  true   "Date (YYYY-MM-DD)"
// @Param        groomer_id  query     int     false  "Target groomer (admin only, defaults to caller)"
// @Success      200         {array}   AppointmentWithDetails
// @Failure      400         {object}  gin.H
// @Router       /appointments/day [get]
func (h *Handler) DayView(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	groomerID := userID
	if v := c.Query("groomer_id"); v != "" && role == auth.RoleAdmin {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid groomer_id"})
			return
		}
		groomerID = id
	}

	appts, err := h.service.DayView(c.Request.Context(), groomerID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appts)
}

// Upcoming godoc
// @Summary      Upcoming appointments
// @Description  Returns the groomer's live appointments starting within the next hours (default 24).
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        hours  query     int  false  "Window in hours"
// @Success      200    {array}   AppointmentWithDetails
// @Failure      400    {object}  gin.H
// @Router       /appointments/upcoming [get]
func (h *Handler) Upcoming(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := auth.GetUserRole(c)

	hours := 24
	if v := c.Query("hours"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hours"})
			return
		}
		hours = parsed
	}

	groomerID := userID
	if role == auth.RoleAdmin {
		groomerID = 0
	}

	appts, err := h.service.Upcoming(c.Request.Context(), groomerID, hours)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appts)
}

// GenerateReminders godoc
// @Summary      Generate reminders
// @Description  Creates reminder notifications for live appointments in the next 24 hours.
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /notifications/reminders [post]
func (h *Handler) GenerateReminders(c *gin.Context) {
	created, err := h.service.GenerateReminders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminders generated", "created": created})
}
