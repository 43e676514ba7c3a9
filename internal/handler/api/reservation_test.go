//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"canchacontrol/internal/domain/user"
	"canchacontrol/internal/handler/api"
	resdto "canchacontrol/internal/handler/dto/response"
	"canchacontrol/internal/usecase/commands"
	"canchacontrol/internal/usecase/queries"
	"canchacontrol/internal/usecase/shared"
	"canchacontrol/tests/common/builder"
	"canchacontrol/tests/common/httptest"
	"canchacontrol/tests/common/testutil"
	commandsmock "canchacontrol/tests/mock/commands"
	queriesmock "canchacontrol/tests/mock/queries"

	errs "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleOperator)
		c.Next()
	}

	s.router.GET("/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.PUT("/reservations/:id", authMiddleware, s.handler.UpdateReservation)
	s.router.PATCH("/reservations/:id/payment-status", authMiddleware, s.handler.UpdatePaymentStatus)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.DeleteReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the booked reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.ClientName, body.ClientName)
		s.Equal(returnView.TotalPriceCents, body.TotalPriceCents)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		missing := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field_id", mutate: testutil.Field("field_id", nil)},
			{name: "missing client_name", mutate: testutil.Field("client_name", nil)},
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing end_time", mutate: testutil.Field("end_time", nil)},
		}
		for _, c := range missing {
			s.Run(c.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, c.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict carries the colliding bookings", func() {
		colliding := []shared.ConflictingSlot{{
			ReservationID: uuid.New(),
			ClientName:    "Maria",
			Date:          "2026-09-15",
			StartTime:     "18:30",
			EndTime:       "20:00",
		}}
		conflictErr := errs.Mark(&commands.ConflictError{Colliding: colliding}, commands.ErrReservationConflict)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, conflictErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)

		var body struct {
			Error     string                   `json:"error"`
			Colliding []shared.ConflictingSlot `json:"colliding"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Time slot is already booked", body.Error)
		s.Equal(colliding, body.Colliding)
	})

	s.Run("error: 404 Not Found for unknown field", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrFieldNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Field not found")
	})

	s.Run("error: 422 Unprocessable Entity on validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationValidation).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Reservation validation failed")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: unfiltered list", func() {
		views := []queries.ReservationView{*builder.NewReservationBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(views[0].ID, body[0].ID)
	})

	s.Run("success: date filter switches to same-day ordering", func() {
		fieldID := uuid.New()
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.ReservationFilter) ([]queries.ReservationView, error) {
				s.Require().NotNil(filter.FieldID)
				s.Equal(fieldID, *filter.FieldID)
				s.Require().NotNil(filter.Date)
				s.Equal("2026-09-15", *filter.Date)
				s.True(filter.SameDayOrder)
				return nil, nil
			}).Times(1)

		url := "/reservations?field_id=" + fieldID.String() + "&date=2026-09-15"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed field_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?field_id=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid field_id")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 404 Not Found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

// ================================================================================
// TestUpdatePaymentStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdatePaymentStatus() {
	returnView := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + returnView.ID.String() + "/payment-status"
	reqBody := map[string]any{"payment_status": "completed"}

	s.Run("success: returns the updated reservation", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), returnView.ID, "completed").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), returnView.ID, "refunded").
			Return(nil, commands.ErrInvalidPaymentStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"payment_status": "refunded"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payment status")
	})

	s.Run("error: 409 Conflict when reviving into an occupied slot", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), returnView.ID, "completed").
			Return(nil, errs.Mark(&commands.ConflictError{}, commands.ErrReservationConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Time slot is already booked")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
