//go:build e2e

package field_test

import (
	"net/http"
	"testing"

	"canchacontrol/internal/domain/user"
	"canchacontrol/internal/handler/dto/request"
	"canchacontrol/internal/handler/dto/response"
	"canchacontrol/tests/common/authtest"
	"canchacontrol/tests/common/builder"
	"canchacontrol/tests/common/httptest"
	"canchacontrol/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	fieldsURL          = "/api/fields"
	availabilityURLFmt = "/api/fields/%s/availability"
)

type FieldSuite struct {
	e2e.SharedSuite
}

func TestFieldSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FieldSuite))
}

func (s *FieldSuite) adminToken() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

// =============================================================================
// TestCreateField - Field creation API tests
// =============================================================================

func (s *FieldSuite) TestCreateField() {
	s.Run("Normal case: Admin creates a field", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewFieldBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.FieldResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.NotEqual(t, uuid.Nil, actual.ID)

		expected := &response.FieldResponse{
			Name:            "Cancha Central",
			Type:            "futbol5",
			HourlyRateCents: 250000,
			Capacity:        10,
			Indoor:          false,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.FieldResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Field response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Duplicate name is a conflict", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewFieldBuilder().BuildCreateRequestDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("Error case: Whitespace name fails domain validation", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewFieldBuilder().
			With(func(b *builder.FieldBuilder) { b.Name = "   " }).
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Auth test: Operator cannot create fields", func() {
		t := s.T()
		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleOperator))

		reqBody := builder.NewFieldBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, reqBody, operatorToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestListFields - Listing and type filter
// =============================================================================

func (s *FieldSuite) TestListFields() {
	s.Run("Normal case: Type filter narrows the list", func() {
		t := s.T()
		token := s.adminToken()

		for _, f := range []struct {
			name string
			typ  string
		}{
			{"Cancha Central", "futbol5"},
			{"Cancha Norte", "futbol5"},
			{"Padel Uno", "padel"},
		} {
			reqBody := builder.NewFieldBuilder().
				With(func(b *builder.FieldBuilder) {
					b.Name = f.name
					b.Type = f.typ
				}).
				BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fieldsURL+"?type=padel", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.FieldResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 1)
		require.Equal(t, "Padel Uno", listed[0].Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fieldsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 3)
	})
}

// =============================================================================
// TestUpdateField - Partial updates
// =============================================================================

func (s *FieldSuite) TestUpdateField() {
	s.Run("Normal case: Rate change applies to new bookings only", func() {
		t := s.T()
		token := s.adminToken()
		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleOperator))

		createReq := builder.NewFieldBuilder().BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)
		var field response.FieldResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &field))

		// book one hour at the original 250000 rate
		bookReq := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.FieldID = field.ID
				b.StartTime = "10:00"
				b.EndTime = "11:00"
			}).
			BuildCreateRequestDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", bookReq, operatorToken)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())
		var before response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &before))
		require.Equal(t, int64(250000), before.TotalPriceCents)

		newRate := int64(300000)
		updateReq := request.UpdateFieldRequest{HourlyRateCents: &newRate}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, fieldsURL+"/"+field.ID.String(), updateReq, token)
		require.Equal(t, http.StatusOK, uw.Code, uw.Body.String())

		// existing booking keeps its stored price
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations/"+before.ID.String(), nil, operatorToken)
		require.Equal(t, http.StatusOK, gw.Code)
		var kept response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &kept))
		require.Equal(t, int64(250000), kept.TotalPriceCents)

		// a new booking prices at the new rate
		rebook := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.FieldID = field.ID
				b.StartTime = "12:00"
				b.EndTime = "13:00"
			}).
			BuildCreateRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", rebook, operatorToken)
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
		var after response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &after))
		require.Equal(t, int64(300000), after.TotalPriceCents)
	})

	s.Run("Error case: Unknown field returns 404", func() {
		t := s.T()
		token := s.adminToken()

		name := "Renamed"
		updateReq := request.UpdateFieldRequest{Name: &name}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fieldsURL+"/"+uuid.NewString(), updateReq, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestDeleteField - Deletion detaches reservations
// =============================================================================

func (s *FieldSuite) TestDeleteField() {
	s.Run("Normal case: Reservations survive field deletion without a field", func() {
		t := s.T()
		token := s.adminToken()
		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleOperator))

		createReq := builder.NewFieldBuilder().BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)
		var field response.FieldResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &field))

		bookReq := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.FieldID = field.ID }).
			BuildCreateRequestDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", bookReq, operatorToken)
		require.Equal(t, http.StatusCreated, bw.Code)
		var booked response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &booked))

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, fieldsURL+"/"+field.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fieldsURL+"/"+field.ID.String(), nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code)

		// the booking remains, detached from the deleted field
		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations/"+booked.ID.String(), nil, operatorToken)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())
		var orphaned response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &orphaned))
		require.Nil(t, orphaned.FieldID)
		require.Equal(t, booked.TotalPriceCents, orphaned.TotalPriceCents)
	})
}

// =============================================================================
// TestAvailability - Occupied and free slot derivation
// =============================================================================

func (s *FieldSuite) TestAvailability() {
	s.Run("Normal case: Free slots surround the bookings within opening hours", func() {
		t := s.T()
		token := s.adminToken()
		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleOperator))

		createReq := builder.NewFieldBuilder().BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)
		var field response.FieldResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &field))

		for _, slot := range []struct{ start, end string }{
			{"10:00", "11:00"},
			{"11:00", "12:00"}, // back-to-back, merges into one occupied block
			{"18:00", "19:30"},
		} {
			bookReq := builder.NewReservationBuilder().
				With(func(b *builder.ReservationBuilder) {
					b.FieldID = field.ID
					b.StartTime = slot.start
					b.EndTime = slot.end
				}).
				BuildCreateRequestDTO()
			bw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", bookReq, operatorToken)
			require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())
		}

		url := fieldsURL + "/" + field.ID.String() + "/availability?date=2026-09-15"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, field.ID, actual.FieldID)
		require.Equal(t, "2026-09-15", actual.Date)
		require.Len(t, actual.Occupied, 3)

		expectedFree := []response.FreeSlotResponse{
			{StartTime: "08:00", EndTime: "10:00"},
			{StartTime: "12:00", EndTime: "18:00"},
			{StartTime: "19:30", EndTime: "23:00"},
		}
		if diff := cmp.Diff(expectedFree, actual.Free); diff != "" {
			t.Errorf("Free slots mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: Cancelled bookings do not occupy slots", func() {
		t := s.T()
		token := s.adminToken()
		operatorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "operator@example.com", string(user.RoleOperator))

		createReq := builder.NewFieldBuilder().BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, fieldsURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)
		var field response.FieldResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &field))

		bookReq := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) {
				b.FieldID = field.ID
				b.PaymentStatus = "cancelled"
			}).
			BuildCreateRequestDTO()
		bw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations", bookReq, operatorToken)
		require.Equal(t, http.StatusCreated, bw.Code)

		url := fieldsURL + "/" + field.ID.String() + "/availability?date=2026-09-15"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Empty(t, actual.Occupied)
		require.Len(t, actual.Free, 1)
		require.Equal(t, "08:00", actual.Free[0].StartTime)
		require.Equal(t, "23:00", actual.Free[0].EndTime)
	})

	s.Run("Error case: Missing date parameter", func() {
		t := s.T()
		token := s.adminToken()

		url := fieldsURL + "/" + uuid.NewString() + "/availability"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Unknown field", func() {
		t := s.T()
		token := s.adminToken()

		url := fieldsURL + "/" + uuid.NewString() + "/availability?date=2026-09-15"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}
