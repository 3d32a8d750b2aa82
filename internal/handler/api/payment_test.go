//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parkshare/internal/domain/booking"
	"parkshare/internal/domain/payment"
	"parkshare/internal/handler/api"
	resdto "parkshare/internal/handler/dto/response"
	"parkshare/internal/handler/middleware"
	"parkshare/internal/usecase/commands"
	"parkshare/tests/common/builder"
	"parkshare/tests/common/httptest"
	"parkshare/tests/common/testutil"
	commandsmock "parkshare/tests/mock/commands"
	queriesmock "parkshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	userID       uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	auth := mockAuth(s.userID)
	s.router.POST("/payments", auth, handler.Create)
	s.router.GET("/payments/:id", auth, handler.Get)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreate() {
	b := builder.NewPaymentBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns the pending payment", func() {
		expected := commands.CreatePaymentRequest{BookingID: b.BookingID, AmountCents: b.AmountCents}
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), expected, s.userID).
			Return(&commands.CreatePaymentResult{PaymentID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "bearer-token")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body.Status)
		s.Nil(body.CompletedAt)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/payments/" + view.ID.String()})
	})

	s.Run("success: explicit payee is forwarded", func() {
		payee := uuid.New()
		s.mockCommands.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ any, req commands.CreatePaymentRequest, _ uuid.UUID) (*commands.CreatePaymentResult, error) {
				s.Equal(payee, req.PayeeID)
				return &commands.CreatePaymentResult{PaymentID: view.ID}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("payee_id", payee.String()))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 without booking_id", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("booking_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "zero amount", commandsError: payment.ErrNonPositiveAmount, expectedStatus: http.StatusBadRequest, expectedMsg: "must be positive"},
			{name: "wrong amount", commandsError: payment.ErrAmountMismatch, expectedStatus: http.StatusBadRequest, expectedMsg: "does not match"},
			{name: "unknown booking", commandsError: booking.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "booking not found"},
			{name: "someone else's booking", commandsError: payment.ErrNotBookingRenter, expectedStatus: http.StatusForbidden, expectedMsg: "only the renter"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments", reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestGet() {
	s.Run("success: completed payment has completed_at", func() {
		view := builder.NewPaymentBuilder().BuildView()
		completedAt := view.CreatedAt.Add(1500)
		view.Status = payment.StatusCompleted.String()
		view.CompletedAt = &completedAt
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+view.ID.String(), nil, "bearer-token")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
		s.Require().NotNil(body.CompletedAt)
		s.True(completedAt.Equal(*body.CompletedAt))
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, payment.ErrPaymentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "payment not found")
	})
}
