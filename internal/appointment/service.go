package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"groomslot/internal/auth"
	"groomslot/internal/availability"
	"groomslot/internal/catalog"
	"groomslot/internal/email"
	"groomslot/internal/logger"
	"groomslot/internal/metrics"
	"groomslot/internal/notification"
	"groomslot/internal/pet"
	"groomslot/internal/schedule"
	"groomslot/internal/user"
)

var (
	ErrBadDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrPastDate         = errors.New("cannot book in the past")
	ErrNotYourPet       = errors.New("pet belongs to another client")
	ErrNotAGroomer      = errors.New("user is not a groomer")
	ErrServiceInactive  = errors.New("service is not available")
	ErrOutsideSchedule  = errors.New("time is outside the groomer's working hours")
	ErrSlotTaken        = errors.New("time slot is already booked")
	ErrPetDoubleBooked  = errors.New("pet already has an appointment on this date")
	ErrNotYours         = errors.New("appointment belongs to another user")
	ErrNotReschedulable = errors.New("only pending appointments can be rescheduled")
	ErrNotFinishedYet   = errors.New("appointment has not finished yet")
	ErrNotStartedYet    = errors.New("appointment has not started yet")
)

type Service interface {
	Create(ctx context.Context, clientID int, req CreateAppointmentRequest) (*AppointmentWithDetails, error)
	Availability(ctx context.Context, groomerID, serviceID int, date string, excludeAppointmentID int) (*AvailabilityResponse, error)
	Get(ctx context.Context, actorID int, actorRole string, id int) (*AppointmentWithDetails, error)
	ListForUser(ctx context.Context, actorID int, actorRole string) ([]AppointmentWithDetails, error)
	Reschedule(ctx context.Context, actorID int, actorRole string, id int, req RescheduleRequest) (*AppointmentWithDetails, error)
	Cancel(ctx context.Context, actorID int, actorRole string, id int) error
	Confirm(ctx context.Context, actorID int, actorRole string, id int) error
	Complete(ctx context.Context, actorID int, actorRole string, id int) error
	NoShow(ctx context.Context, actorID int, actorRole string, id int) error
	DayView(ctx context.Context, groomerID int, date string) ([]AppointmentWithDetails, error)
	Upcoming(ctx context.Context, groomerID, hours int) ([]AppointmentWithDetails, error)
	GenerateReminders(ctx context.Context) (int, error)
}

type service struct {
	repo          Repository
	petRepo       pet.Repository
	userRepo      user.Repository
	catalogRepo   catalog.Repository
	scheduleRepo  schedule.Repository
	notifications notification.Service
	emailService  *email.Service

	now func() time.Time
}

func NewService(
	repo Repository,
	petRepo pet.Repository,
	userRepo user.Repository,
	catalogRepo catalog.Repository,
	scheduleRepo schedule.Repository,
	notifications notification.Service,
	emailService *email.Service,
) Service {
	return &service{
		repo:          repo,
		petRepo:       petRepo,
		userRepo:      userRepo,
		catalogRepo:   catalogRepo,
		scheduleRepo:  scheduleRepo,
		notifications: notifications,
		emailService:  emailService,
		now:           time.Now,
	}
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return date, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}

// scheduleBlocks loads the groomer's active blocks for the date's
// weekday, converted to minute intervals.
func (s *service) scheduleBlocks(ctx context.Context, groomerID int, date time.Time) ([]availability.Block, error) {
	blocks, err := s.scheduleRepo.ListActiveForDay(ctx, groomerID, availability.WeekdayIndex(date))
	if err != nil {
		return nil, err
	}

	result := make([]availability.Block, 0, len(blocks))
	for _, b := range blocks {
		start, err := availability.ParseClock(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := availability.ParseClock(b.EndTime)
		if err != nil {
			return nil, err
		}
		result = append(result, availability.Block{Start: start, End: end})
	}
	return result, nil
}

// bookedIntervals loads the groomer's live appointments for the date
// as minute intervals, skipping excludeID when non-zero.
func (s *service) bookedIntervals(ctx context.Context, groomerID int, date time.Time, excludeID int) ([]availability.Interval, error) {
	appts, err := s.repo.ListLiveForGroomerDate(ctx, groomerID, date, excludeID)
	if err != nil {
		return nil, err
	}

	intervals := make([]availability.Interval, 0, len(appts))
	for _, a := range appts {
		start, err := availability.ParseClock(a.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := availability.ParseClock(a.EndTime)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, availability.Interval{Start: start, End: end})
	}
	return intervals, nil
}

// validateSlot checks that a start time is bookable: in the future,
// on the slot grid inside an active working block, free of collisions
// with other live appointments, and that the pet is free that day.
func (s *service) validateSlot(ctx context.Context, petID, groomerID int, date time.Time, startMin, durationMinutes, excludeID int) error {
	now := s.now()
	today := now.Format(DateLayout)
	if date.Format(DateLayout) < today {
		return ErrPastDate
	}
	if sameDay(date, now) && startMin <= now.Hour()*60+now.Minute() {
		return ErrPastDate
	}

	endMin := startMin + durationMinutes

	blocks, err := s.scheduleBlocks(ctx, groomerID, date)
	if err != nil {
		return err
	}

	fits := false
	for _, b := range blocks {
		if startMin >= b.Start && endMin <= b.End && (startMin-b.Start)%availability.SlotStep == 0 {
			fits = true
			break
		}
	}
	if !fits {
		return ErrOutsideSchedule
	}

	booked, err := s.bookedIntervals(ctx, groomerID, date, excludeID)
	if err != nil {
		return err
	}
	for _, interval := range booked {
		if startMin < interval.End && endMin > interval.Start {
			return ErrSlotTaken
		}
	}

	doubleBooked, err := s.repo.PetHasLiveOnDate(ctx, petID, date, excludeID)
	if err != nil {
		return err
	}
	if doubleBooked {
		return ErrPetDoubleBooked
	}

	return nil
}

func (s *service) Create(ctx context.Context, clientID int, req CreateAppointmentRequest) (*AppointmentWithDetails, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	startMin, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	p, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, pet.ErrPetNotFound
	}
	if p.OwnerID != clientID {
		return nil, ErrNotYourPet
	}

	groomer, err := s.userRepo.FindByID(ctx, req.GroomerID)
	if err != nil || groomer.Role != auth.RoleGroomer {
		return nil, ErrNotAGroomer
	}

	svc, err := s.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, catalog.ErrServiceNotFound
	}
	if !svc.Active {
		return nil, ErrServiceInactive
	}

	if err := s.validateSlot(ctx, req.PetID, req.GroomerID, date, startMin, svc.DurationMinutes, 0); err != nil {
		return nil, err
	}

	appt, err := s.repo.Create(ctx, NewAppointment{
		ClientID:   clientID,
		PetID:      req.PetID,
		GroomerID:  req.GroomerID,
		ServiceID:  req.ServiceID,
		Date:       date,
		StartTime:  availability.FormatClock(startMin),
		EndTime:    availability.FormatClock(startMin + svc.DurationMinutes),
		Notes:      req.Notes,
		PriceCents: svc.PriceCents,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAppointment(StatusPending)

	details, err := s.repo.GetDetails(ctx, appt.ID)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New appointment: %s for %s on %s at %s",
		details.ServiceName, details.PetName, req.Date, details.StartTime)
	if _, err := s.notifications.Notify(ctx, appt.GroomerID, &appt.ID, notification.TypeNewAppointment, message); err != nil {
		logger.Errorf("Failed to notify groomer %d: %v", appt.GroomerID, err)
	}

	if err := s.emailService.SendAppointmentConfirmation(ctx,
		details.ClientEmail, details.ClientName, details.PetName,
		details.ServiceName, req.Date, details.StartTime); err != nil {
		logger.Errorf("Failed to queue confirmation email: %v", err)
	}

	return details, nil
}

func (s *service) Availability(ctx context.Context, groomerID, serviceID int, date string, excludeAppointmentID int) (*AvailabilityResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	groomer, err := s.userRepo.FindByID(ctx, groomerID)
	if err != nil || groomer.Role != auth.RoleGroomer {
		return nil, ErrNotAGroomer
	}

	svc, err := s.catalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, catalog.ErrServiceNotFound
	}

	blocks, err := s.scheduleBlocks(ctx, groomerID, day)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookedIntervals(ctx, groomerID, day, excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	nowMinutes := -1
	if sameDay(day, now) {
		nowMinutes = now.Hour()*60 + now.Minute()
	}

	currentStart := -1
	if excludeAppointmentID > 0 {
		current, err := s.repo.GetByID(ctx, excludeAppointmentID)
		if err == nil && sameDay(current.Date, day) {
			if start, err := availability.ParseClock(current.StartTime); err == nil {
				currentStart = start
			}
		}
	}

	metrics.RecordAvailabilityRequest()

	return &AvailabilityResponse{
		GroomerID: groomerID,
		ServiceID: serviceID,
		Date:      date,
		Slots: availability.Slots(availability.Request{
			Blocks:          blocks,
			Booked:          booked,
			DurationMinutes: svc.DurationMinutes,
			NowMinutes:      nowMinutes,
			CurrentStart:    currentStart,
		}),
	}, nil
}

// canAccess reports whether the actor may see an appointment.
func canAccess(actorID int, actorRole string, appt *Appointment) bool {
	switch actorRole {
	case auth.RoleAdmin:
		return true
	case auth.RoleGroomer:
		return appt.GroomerID == actorID
	default:
		return appt.ClientID == actorID
	}
}

func (s *service) Get(ctx context.Context, actorID int, actorRole string, id int) (*AppointmentWithDetails, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	if !canAccess(actorID, actorRole, appt) {
		return nil, ErrNotYours
	}

	return s.repo.GetDetails(ctx, id)
}

func (s *service) ListForUser(ctx context.Context, actorID int, actorRole string) ([]AppointmentWithDetails, error) {
	switch actorRole {
	case auth.RoleAdmin:
		return s.repo.ListAll(ctx)
	case auth.RoleGroomer:
		return s.repo.ListByGroomer(ctx, actorID)
	default:
		return s.repo.ListByClient(ctx, actorID)
	}
}

func (s *service) Reschedule(ctx context.Context, actorID int, actorRole string, id int, req RescheduleRequest) (*AppointmentWithDetails, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	if !canAccess(actorID, actorRole, appt) {
		return nil, ErrNotYours
	}

	if appt.Status != StatusPending {
		return nil, ErrNotReschedulable
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	startMin, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalogRepo.GetByID(ctx, appt.ServiceID)
	if err != nil {
		return nil, catalog.ErrServiceNotFound
	}

	if err := s.validateSlot(ctx, appt.PetID, appt.GroomerID, date, startMin, svc.DurationMinutes, id); err != nil {
		return nil, err
	}

	endTime := availability.FormatClock(startMin + svc.DurationMinutes)
	if err := s.repo.Reschedule(ctx, id, date, availability.FormatClock(startMin), endTime); err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Appointment for %s moved to %s at %s",
		details.PetName, req.Date, details.StartTime)
	if _, err := s.notifications.Notify(ctx, appt.GroomerID, &appt.ID, notification.TypeAppointmentRescheduled, message); err != nil {
		logger.Errorf("Failed to notify groomer %d: %v", appt.GroomerID, err)
	}

	if err := s.emailService.SendRescheduled(ctx,
		details.ClientEmail, details.ClientName, details.PetName,
		details.ServiceName, req.Date, details.StartTime); err != nil {
		logger.Errorf("Failed to queue reschedule email: %v", err)
	}

	return details, nil
}

// canManage reports whether the actor may change an appointment's
// status. Groomers manage their own calendar, admins any.
func canManage(actorID int, actorRole string, appt *Appointment) bool {
	if actorRole == auth.RoleAdmin {
		return true
	}
	return actorRole == auth.RoleGroomer && appt.GroomerID == actorID
}

func (s *service) Cancel(ctx context.Context, actorID int, actorRole string, id int) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if !canManage(actorID, actorRole, appt) {
		return ErrNotYours
	}

	if err := s.repo.Transition(ctx, id, StatusCancelled, StatusPending, StatusConfirmed); err != nil {
		return err
	}

	metrics.RecordAppointmentCancellation()

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil
	}

	message := fmt.Sprintf("Appointment for %s on %s at %s was cancelled",
		details.PetName, details.Date.Format(DateLayout), details.StartTime)
	if _, err := s.notifications.Notify(ctx, appt.GroomerID, &appt.ID, notification.TypeAppointmentCancelled, message); err != nil {
		logger.Errorf("Failed to notify groomer %d: %v", appt.GroomerID, err)
	}

	if err := s.emailService.SendCancellation(ctx,
		details.ClientEmail, details.ClientName, details.PetName,
		details.ServiceName, details.Date.Format(DateLayout), details.StartTime); err != nil {
		logger.Errorf("Failed to queue cancellation email: %v", err)
	}

	return nil
}

func (s *service) Confirm(ctx context.Context, actorID int, actorRole string, id int) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if !canManage(actorID, actorRole, appt) {
		return ErrNotYours
	}

	if err := s.repo.Transition(ctx, id, StatusConfirmed, StatusPending); err != nil {
		return err
	}

	metrics.RecordAppointment(StatusConfirmed)

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil
	}

	message := fmt.Sprintf("Appointment for %s on %s at %s confirmed",
		details.PetName, details.Date.Format(DateLayout), details.StartTime)
	if _, err := s.notifications.Notify(ctx, appt.GroomerID, &appt.ID, notification.TypeAppointmentConfirmed, message); err != nil {
		logger.Errorf("Failed to notify groomer %d: %v", appt.GroomerID, err)
	}

	if err := s.emailService.SendAppointmentConfirmed(ctx,
		details.ClientEmail, details.ClientName, details.PetName,
		details.ServiceName, details.Date.Format(DateLayout), details.StartTime); err != nil {
		logger.Errorf("Failed to queue confirmation email: %v", err)
	}

	return nil
}

// hasEnded reports whether the appointment's end time has passed.
func (s *service) hasEnded(appt *Appointment) bool {
	return s.clockPassed(appt.Date, appt.EndTime)
}

// hasStarted reports whether the appointment's start time has passed.
func (s *service) hasStarted(appt *Appointment) bool {
	return s.clockPassed(appt.Date, appt.StartTime)
}

func (s *service) clockPassed(date time.Time, clock string) bool {
	now := s.now()
	today := now.Format(DateLayout)
	day := date.Format(DateLayout)
	if day != today {
		return day < today
	}

	minutes, err := availability.ParseClock(clock)
	if err != nil {
		return false
	}
	return now.Hour()*60+now.Minute() >= minutes
}

func (s *service) Complete(ctx context.Context, actorID int, actorRole string, id int) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if !canManage(actorID, actorRole, appt) {
		return ErrNotYours
	}

	if !s.hasEnded(appt) {
		return ErrNotFinishedYet
	}

	if err := s.repo.Transition(ctx, id, StatusCompleted, StatusConfirmed); err != nil {
		return err
	}

	metrics.RecordAppointment(StatusCompleted)
	return nil
}

func (s *service) NoShow(ctx context.Context, actorID int, actorRole string, id int) error {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrAppointmentNotFound
	}

	if !canManage(actorID, actorRole, appt) {
		return ErrNotYours
	}

	if !s.hasStarted(appt) {
		return ErrNotStartedYet
	}

	if err := s.repo.Transition(ctx, id, StatusNoShow, StatusPending, StatusConfirmed); err != nil {
		return err
	}

	metrics.RecordAppointment(StatusNoShow)
	return nil
}

func (s *service) DayView(ctx context.Context, groomerID int, date string) ([]AppointmentWithDetails, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	return s.repo.ListForGroomerDate(ctx, groomerID, day)
}

func (s *service) Upcoming(ctx context.Context, groomerID, hours int) ([]AppointmentWithDetails, error) {
	if hours <= 0 {
		hours = 24
	}

	now := s.now()
	until := now.Add(time.Duration(hours) * time.Hour)

	fromDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC)

	appts, err := s.repo.ListLiveBetween(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	result := make([]AppointmentWithDetails, 0, len(appts))
	for _, a := range appts {
		if groomerID > 0 && a.GroomerID != groomerID {
			continue
		}
		start, err := availability.ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		startAt := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(),
			start/60, start%60, 0, 0, now.Location())
		if startAt.After(now) && startAt.Before(until) {
			result = append(result, a)
		}
	}

	return result, nil
}

// GenerateReminders creates a reminder notification and queues a
// reminder email for every live appointment starting within the next
// 24 hours that does not have one yet.
func (s *service) GenerateReminders(ctx context.Context) (int, error) {
	appts, err := s.Upcoming(ctx, 0, 24)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, a := range appts {
		exists, err := s.notifications.ReminderExists(ctx, a.ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		message := fmt.Sprintf("Upcoming appointment: %s for %s on %s at %s",
			a.ServiceName, a.PetName, a.Date.Format(DateLayout), a.StartTime)
		apptID := a.ID
		if _, err := s.notifications.Notify(ctx, a.GroomerID, &apptID, notification.TypeReminder, message); err != nil {
			return created, err
		}

		if err := s.emailService.SendReminder(ctx,
			a.ClientEmail, a.ClientName, a.PetName,
			a.ServiceName, a.Date.Format(DateLayout), a.StartTime); err != nil {
			logger.Errorf("Failed to queue reminder email: %v", err)
		}

		created++
	}

	return created, nil
}
