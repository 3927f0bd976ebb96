//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/user"
	"donbalon/internal/handler/api"
	resdto "donbalon/internal/handler/dto/response"
	"donbalon/internal/handler/middleware"
	"donbalon/internal/pkg/jwt"
	"donbalon/internal/usecase/commands"
	"donbalon/tests/common/builder"
	"donbalon/tests/common/httptest"
	commandsmock "donbalon/tests/mock/commands"
	usecasemock "donbalon/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	operatorToken = "operator-token"
	viewerToken   = "viewer-token"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockReservationCommands
	mockValidator *usecasemock.MockTokenValidator
	handler       *api.AdminReservationHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.handler = api.NewAdminReservationHandler(s.mockCommands)

	s.mockValidator.EXPECT().ValidateToken(operatorToken).
		Return("staff-7", user.RoleOperator, nil).AnyTimes()
	s.mockValidator.EXPECT().ValidateToken(viewerToken).
		Return("staff-9", user.RoleViewer, nil).AnyTimes()

	auth := middleware.NewAuthMiddleware(s.mockValidator)
	admin := s.router.Group("/api/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOperator))
	admin.POST("/reservations/:id/confirm-payment", s.handler.ConfirmPayment)
	admin.POST("/reservations/:id/cancel", s.handler.Cancel)
	admin.POST("/reservations/:id/finalize", s.handler.Finalize)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestAuthorization
// ================================================================================

func (s *AdminHandlerTestSuite) TestAuthorization() {
	url := "/api/admin/reservations/101/cancel"

	s.Run("error: 401 Unauthorized without a bearer token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized for an expired token", func() {
		s.mockValidator.EXPECT().ValidateToken("expired").
			Return("", user.Role(""), jwt.ErrExpiredToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 Forbidden below operator", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

// ================================================================================
// TestLifecycle
// ================================================================================

func (s *AdminHandlerTestSuite) TestLifecycle() {
	pending := func(b *builder.BookingBuilder) { b.Status = reservation.StatusPending }
	cancelled := func(b *builder.BookingBuilder) { b.Status = reservation.StatusCancelled }

	testCases := []struct {
		name          string
		path          string
		result        *commands.LifecycleResult
		wantOutcome   string
		wantStatus    string
		wantChanged   bool
		wantRefund    bool
		wantReleased  []int64
		wantEventName string
	}{
		{
			name:          "success: confirm payment on a pending reservation",
			path:          "confirm-payment",
			result:        builder.NewBookingBuilder().With(pending).BuildLifecycleResult(reservation.EventConfirmPayment),
			wantOutcome:   "applied",
			wantStatus:    "paid",
			wantChanged:   true,
			wantEventName: "confirm_payment",
		},
		{
			name:          "success: cancel a paid reservation requires a refund",
			path:          "cancel",
			result:        builder.NewBookingBuilder().BuildLifecycleResult(reservation.EventCancel),
			wantOutcome:   "applied",
			wantStatus:    "cancelled",
			wantChanged:   true,
			wantRefund:    true,
			wantReleased:  []int64{1, 2},
			wantEventName: "cancel",
		},
		{
			name:          "success: finalize a paid reservation",
			path:          "finalize",
			result:        builder.NewBookingBuilder().BuildLifecycleResult(reservation.EventFinalize),
			wantOutcome:   "applied",
			wantStatus:    "finalized",
			wantChanged:   true,
			wantEventName: "finalize",
		},
		{
			name:          "success: rejected events still answer 200",
			path:          "confirm-payment",
			result:        builder.NewBookingBuilder().With(cancelled).BuildLifecycleResult(reservation.EventConfirmPayment),
			wantOutcome:   "rejected",
			wantStatus:    "cancelled",
			wantEventName: "confirm_payment",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			switch tc.path {
			case "confirm-payment":
				s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), int64(101)).Return(tc.result, nil).Times(1)
			case "cancel":
				s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(101)).Return(tc.result, nil).Times(1)
			case "finalize":
				s.mockCommands.EXPECT().Finalize(gomock.Any(), int64(101)).Return(tc.result, nil).Times(1)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
				"/api/admin/reservations/101/"+tc.path, nil, operatorToken)

			var body resdto.LifecycleResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(int64(101), body.ReservationID)
			s.Equal(tc.wantEventName, body.Event)
			s.Equal(tc.wantOutcome, body.Outcome)
			s.Equal(tc.wantStatus, body.Status)
			s.Equal(tc.wantChanged, body.Changed)
			s.Equal(tc.wantRefund, body.RefundRequired)
			s.Equal(tc.wantReleased, body.ReleasedSlots)
			s.NotEmpty(body.Message)
		})
	}

	s.Run("error: 400 Bad Request for an invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/admin/reservations/abc/finalize", nil, operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(101)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
					"/api/admin/reservations/101/cancel", nil, operatorToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
