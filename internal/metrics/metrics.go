package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groomslot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "groomslot_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groomslot_appointments_total",
			Help: "Total number of appointments by status",
		},
		[]string{"status"},
	)

	AppointmentCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "groomslot_appointment_cancellations_total",
			Help: "Total number of appointment cancellations",
		},
	)

	AvailabilityRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "groomslot_availability_requests_total",
			Help: "Total number of availability lookups",
		},
	)

	NotificationsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groomslot_notifications_created_total",
			Help: "Total number of groomer notifications created",
		},
		[]string{"type"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groomslot_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "groomslot_email_queue_length",
			Help: "Current number of emails waiting in the queue",
		},
	)
)

// RecordHTTPRequest records metrics for a completed HTTP request.
func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordAppointment records an appointment event with its status.
func RecordAppointment(status string) {
	AppointmentsTotal.WithLabelValues(status).Inc()
}

// RecordAppointmentCancellation records a cancelled appointment.
func RecordAppointmentCancellation() {
	AppointmentCancellationsTotal.Inc()
}

// RecordAvailabilityRequest records an availability lookup.
func RecordAvailabilityRequest() {
	AvailabilityRequestsTotal.Inc()
}

// RecordNotification records a created groomer notification.
func RecordNotification(notificationType string) {
	NotificationsCreatedTotal.WithLabelValues(notificationType).Inc()
}

// RecordEmail records an email delivery attempt.
func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
