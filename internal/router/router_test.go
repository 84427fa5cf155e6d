package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHandler "github.com/jwalitptl/clinic-directory/internal/handler/booking"
	clinicHandler "github.com/jwalitptl/clinic-directory/internal/handler/clinic"
	contactHandler "github.com/jwalitptl/clinic-directory/internal/handler/contact"
	"github.com/jwalitptl/clinic-directory/internal/handler/health"
	workshopHandler "github.com/jwalitptl/clinic-directory/internal/handler/workshop"
	"github.com/jwalitptl/clinic-directory/internal/middleware"
	"github.com/jwalitptl/clinic-directory/internal/model"
	"github.com/jwalitptl/clinic-directory/internal/repository/memory"
	bookingService "github.com/jwalitptl/clinic-directory/internal/service/booking"
	clinicService "github.com/jwalitptl/clinic-directory/internal/service/clinic"
	contactService "github.com/jwalitptl/clinic-directory/internal/service/contact"
	workshopService "github.com/jwalitptl/clinic-directory/internal/service/workshop"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
	"github.com/jwalitptl/clinic-directory/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type discardQueue struct{}

func (discardQueue) Enqueue(string, interface{}) bool { return true }

type recordingMailer struct {
	sent []model.ContactMessage
}

func (m *recordingMailer) SendContact(_ context.Context, msg model.ContactMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

type testServer struct {
	engine *gin.Engine
	store  *memory.Store
	mailer *recordingMailer
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()

	store := memory.NewStore()
	if seed {
		memory.Seed(context.Background(), store)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New("directory_test", reg)
	logger := zerolog.Nop()
	mailer := &recordingMailer{}

	api := []Handler{
		clinicHandler.NewHandler(clinicService.NewService(store)),
		workshopHandler.NewHandler(workshopService.NewService(store, store)),
		bookingHandler.NewHandler(bookingService.NewService(store, store, discardQueue{}, m, logger)),
		contactHandler.NewHandler(contactService.NewService(mailer, m, logger)),
	}

	r := NewRouter(RouterConfig{
		CORSConfig:  middleware.DefaultCORSConfig(),
		CacheConfig: middleware.DefaultCacheConfig(),
		SizeLimit:   middleware.DefaultSizeLimitConfig(),
	}, api, health.NewHandler(nil), m, reg, logger)
	r.Setup()

	return &testServer{engine: r.Engine(), store: store, mailer: mailer}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func bookingBody(workshopID string) string {
	return `{"workshopId":"` + workshopID + `","userName":"Asha Menon","userEmail":"asha@example.com","userPhone":"9876543210"}`
}

const workshopBody = `{
	"title": "Mindful Mornings",
	"description": "Start the day calmly",
	"category": "Mindfulness",
	"instructor": "Anita Desai",
	"date": "2024-10-05",
	"time": "7:00 AM",
	"duration": "1 hour",
	"price": 0,
	"maxParticipants": 20,
	"location": "Online",
	"image": "mornings.jpg",
	"tags": ["morning"]
}`

func TestClinics_FilterByLocation(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/api/clinics?location=Mumbai", "")
	require.Equal(t, http.StatusOK, w.Code)

	clinics := decode[[]model.Clinic](t, w)
	require.Len(t, clinics, 1)
	assert.Contains(t, clinics[0].Location, "Mumbai")
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))
}

func TestClinics_GetUnknown(t *testing.T) {
	s := newTestServer(t, true)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		w := s.do(t, http.MethodGet, "/api/clinics/"+id, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Clinic not found"}`, w.Body.String())
	}
}

func TestClinics_CreateValidation(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/clinics", `{"name":"Only a name","email":"nope"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[httputil.ErrorResponse](t, w)
	assert.Equal(t, "Invalid clinic data", resp.Message)
	fields := map[string]bool{}
	for _, e := range resp.Errors {
		fields[e.Field] = true
	}
	assert.True(t, fields["email"])
	assert.True(t, fields["location"])
}

func TestWorkshops_SortedByDate(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/api/workshops", "")
	require.Equal(t, http.StatusOK, w.Code)

	workshops := decode[[]model.Workshop](t, w)
	require.Len(t, workshops, 4)
	for i := 1; i < len(workshops); i++ {
		assert.LessOrEqual(t, workshops[i-1].Date, workshops[i].Date)
	}
}

func TestWorkshops_CreateAndPatch(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/workshops", workshopBody)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Workshop](t, w)
	assert.Zero(t, created.CurrentParticipants)

	w = s.do(t, http.MethodPatch, "/api/workshops/"+created.ID.String(), `{"price":250}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 250, decode[model.Workshop](t, w).Price)

	w = s.do(t, http.MethodPatch, "/api/workshops/"+created.ID.String(), `{"currentParticipants":21}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/api/workshops/"+uuid.NewString(), `{"price":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookings_SeatExhaustion(t *testing.T) {
	s := newTestServer(t, false)
	ctx := context.Background()

	w := s.store.CreateWorkshop(ctx, model.WorkshopInput{
		Title: "Anxiety Toolkit", Description: "d", Category: "Anxiety", Instructor: "i",
		Date: "2024-10-20", Time: "5:00 PM", Duration: "2 hours", Price: 200,
		MaxParticipants: 20, Location: "Delhi", Image: "img",
	})
	_, _, err := s.store.UpdateWorkshop(ctx, w.ID, model.WorkshopUpdate{CurrentParticipants: intPtr(3)})
	require.NoError(t, err)

	for i := 0; i < 17; i++ {
		resp := s.do(t, http.MethodPost, "/api/bookings", bookingBody(w.ID.String()))
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	}

	got, ok := s.store.GetWorkshop(ctx, w.ID)
	require.True(t, ok)
	assert.Equal(t, 20, got.CurrentParticipants)

	resp := s.do(t, http.MethodPost, "/api/bookings", bookingBody(w.ID.String()))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"message":"Workshop is fully booked"}`, resp.Body.String())

	got, _ = s.store.GetWorkshop(ctx, w.ID)
	assert.Equal(t, 20, got.CurrentParticipants)
	assert.Len(t, s.store.ListBookings(ctx), 17)

	list := s.do(t, http.MethodGet, "/api/workshops/"+w.ID.String()+"/bookings", "")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Len(t, decode[[]model.Booking](t, list), 17)
}

func TestBookings_UnknownWorkshop(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/api/bookings", bookingBody(uuid.NewString()))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Workshop not found"}`, w.Body.String())
	assert.Empty(t, s.store.ListBookings(context.Background()))
}

func TestBookings_Validation(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/api/bookings", `{"workshopId":"x","userName":"A","userEmail":"bad","userPhone":"123"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[httputil.ErrorResponse](t, w)
	assert.Equal(t, "Invalid booking data", resp.Message)
	require.Len(t, resp.Errors, 3)
	assert.Equal(t, "userName", resp.Errors[0].Field)
	assert.Equal(t, "userEmail", resp.Errors[1].Field)
	assert.Equal(t, "userPhone", resp.Errors[2].Field)
}

func TestBookings_GetAndList(t *testing.T) {
	s := newTestServer(t, true)

	workshops := decode[[]model.Workshop](t, s.do(t, http.MethodGet, "/api/workshops", ""))
	var open *model.Workshop
	for i := range workshops {
		if !workshops[i].IsFull() {
			open = &workshops[i]
			break
		}
	}
	require.NotNil(t, open)

	w := s.do(t, http.MethodPost, "/api/bookings", bookingBody(open.ID.String()))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Booking](t, w)
	assert.Equal(t, model.BookingStatusConfirmed, created.Status)

	w = s.do(t, http.MethodGet, "/api/bookings/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, decode[model.Booking](t, w).ID)

	w = s.do(t, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Booking](t, w), 1)

	w = s.do(t, http.MethodGet, "/api/bookings/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Booking not found"}`, w.Body.String())
}

func TestContact(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodPost, "/api/contact", `{"name":"Ravi","email":"ravi@example.com","subject":"Hello"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[httputil.ErrorResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "message", resp.Errors[0].Field)
	assert.Empty(t, s.mailer.sent)

	w = s.do(t, http.MethodPost, "/api/contact", `{"name":"Ravi","email":"ravi@example.com","subject":"Hello","message":"I would like to know more."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Message sent successfully"}`, w.Body.String())
	assert.Len(t, s.mailer.sent, 1)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t, false)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/health/live", "").Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/health/ready", "").Code)

	s.do(t, http.MethodGet, "/api/clinics", "")
	w := s.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "directory_test_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Route not found"}`, w.Body.String())
}

func intPtr(v int) *int { return &v }

func TestCacheHeaders(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/api/workshops", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))

	w = s.do(t, http.MethodGet, "/api/clinics/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	w = s.do(t, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	workshops := decode[[]model.Workshop](t, s.do(t, http.MethodGet, "/api/workshops", ""))
	w = s.do(t, http.MethodGet, "/api/workshops/"+workshops[0].ID.String()+"/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
