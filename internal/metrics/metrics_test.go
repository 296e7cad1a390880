package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	// Сбрасываем метрики перед тестом
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	method := "GET"
	path := "/api/appointments"
	status := "200"
	duration := 0.5

	RecordHTTPRequest(method, path, status, duration)

	// Проверяем счетчик запросов
	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(method, path, status))
	assert.Equal(t, float64(1), count)

	// Для histogram проверяем количество наблюдений через метрику _count
	metric := HTTPRequestDuration.WithLabelValues(method, path).(prometheus.Histogram)
	// Просто проверяем что метод был вызван без ошибки
	metric.Observe(duration)
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/api/login", "200", 0.1)
	RecordHTTPRequest("POST", "/api/login", "200", 0.2)
	RecordHTTPRequest("POST", "/api/login", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/login", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/login", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordAppointment(t *testing.T) {
	AppointmentsTotal.Reset()

	RecordAppointment("pending")

	count := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("pending"))
	assert.Equal(t, float64(1), count)
}

func TestRecordAppointmentMultipleStatuses(t *testing.T) {
	AppointmentsTotal.Reset()

	RecordAppointment("pending")
	RecordAppointment("pending")
	RecordAppointment("confirmed")

	pendingCount := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("pending"))
	confirmedCount := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("confirmed"))

	assert.Equal(t, float64(2), pendingCount)
	assert.Equal(t, float64(1), confirmedCount)
}

func TestRecordAppointmentCancellation(t *testing.T) {
	// Создаем новый счетчик для теста
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "groomslot_appointment_cancellations_total_test",
			Help: "Total number of appointment cancellations",
		},
	)

	// Временно подменяем глобальную переменную
	oldCounter := AppointmentCancellationsTotal
	AppointmentCancellationsTotal = testCounter
	defer func() { AppointmentCancellationsTotal = oldCounter }()

	RecordAppointmentCancellation()
	RecordAppointmentCancellation()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(2), count)
}

func TestRecordAvailabilityRequest(t *testing.T) {
	testCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "groomslot_availability_requests_total_test",
			Help: "Total number of availability lookups",
		},
	)

	oldCounter := AvailabilityRequestsTotal
	AvailabilityRequestsTotal = testCounter
	defer func() { AvailabilityRequestsTotal = oldCounter }()

	RecordAvailabilityRequest()
	RecordAvailabilityRequest()
	RecordAvailabilityRequest()

	count := testutil.ToFloat64(testCounter)
	assert.Equal(t, float64(3), count)
}

func TestRecordNotification(t *testing.T) {
	NotificationsCreatedTotal.Reset()

	RecordNotification("new_appointment")
	RecordNotification("new_appointment")
	RecordNotification("reminder")

	newCount := testutil.ToFloat64(NotificationsCreatedTotal.WithLabelValues("new_appointment"))
	reminderCount := testutil.ToFloat64(NotificationsCreatedTotal.WithLabelValues("reminder"))

	assert.Equal(t, float64(2), newCount)
	assert.Equal(t, float64(1), reminderCount)
}

func TestRecordEmail(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("appointment_confirmation", "success")

	count := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_confirmation", "success"))
	assert.Equal(t, float64(1), count)
}

func TestRecordEmailMultipleTypes(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("appointment_confirmation", "success")
	RecordEmail("appointment_confirmation", "failed")
	RecordEmail("reminder", "success")

	confirmSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_confirmation", "success"))
	confirmFailed := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_confirmation", "failed"))
	reminderSuccess := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("reminder", "success"))

	assert.Equal(t, float64(1), confirmSuccess)
	assert.Equal(t, float64(1), confirmFailed)
	assert.Equal(t, float64(1), reminderSuccess)
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	value := testutil.ToFloat64(EmailQueueLength)
	assert.Equal(t, float64(10), value)

	EmailQueueLength.Set(5)
	value = testutil.ToFloat64(EmailQueueLength)
	assert.Equal(t, float64(5), value)

	EmailQueueLength.Set(0)
	value = testutil.ToFloat64(EmailQueueLength)
	assert.Equal(t, float64(0), value)
}

func TestMetricsIntegration(t *testing.T) {
	// Сбрасываем все метрики
	HTTPRequestsTotal.Reset()
	AppointmentsTotal.Reset()
	EmailsSentTotal.Reset()
	NotificationsCreatedTotal.Reset()

	// Имитируем реальный сценарий использования
	RecordHTTPRequest("POST", "/api/appointments", "201", 0.25)
	RecordAppointment("pending")
	RecordNotification("new_appointment")
	RecordEmail("appointment_confirmation", "success")

	httpCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/appointments", "201"))
	apptCount := testutil.ToFloat64(AppointmentsTotal.WithLabelValues("pending"))
	notifCount := testutil.ToFloat64(NotificationsCreatedTotal.WithLabelValues("new_appointment"))
	emailCount := testutil.ToFloat64(EmailsSentTotal.WithLabelValues("appointment_confirmation", "success"))

	assert.Equal(t, float64(1), httpCount)
	assert.Equal(t, float64(1), apptCount)
	assert.Equal(t, float64(1), notifCount)
	assert.Equal(t, float64(1), emailCount)
}
