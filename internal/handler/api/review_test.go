//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"parkshare/internal/domain/review"
	"parkshare/internal/handler/api"
	resdto "parkshare/internal/handler/dto/response"
	"parkshare/internal/handler/middleware"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"
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

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/reviews", mockAuth(s.userID), s.handler.Create)
	s.router.GET("/users/:id/reviews", s.handler.ListByReviewee)
	s.router.GET("/users/:id/rating", s.handler.Rating)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	b := builder.NewReviewBuilder()
	reqBody := b.BuildCreateRequestDTO()
	reviewID := uuid.New()
	expectedResult := &commands.CreateReviewResult{ReviewID: reviewID}

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: reviewee_id (required)", mutate: testutil.Field("reviewee_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (optional)", mutate: testutil.Field("comment", nil), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), b.BuildCreateRequest(), s.userID).
			Return(expectedResult, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(reviewID.String(), body["id"])
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/users/" + b.RevieweeID.String() + "/reviews"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range [][]testCaseReview{bound, missing} {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(expectedResult, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "self review", commandsError: review.ErrSelfReview, expectedStatus: http.StatusBadRequest, expectedMsg: "cannot review themselves"},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListByReviewee
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByReviewee() {
	revieweeID := uuid.New()
	views := []*queries.ReviewView{
		builder.NewReviewBuilder().WithRevieweeID(revieweeID).WithRating(4).BuildView(),
		builder.NewReviewBuilder().WithRevieweeID(revieweeID).WithRating(5).BuildView(),
	}

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListByReviewee(gomock.Any(), revieweeID, nil, 0).Return(views, &queries.Cursor{After: "c2"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+revieweeID.String()+"/reviews", nil, "")

		var body resdto.ListResponse[resdto.ReviewResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(int32(4), body.Items[0].Rating)
		s.Equal("c2", body.NextCursor)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/123/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestRating
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRating() {
	subjectID := uuid.New()

	s.Run("success: average of 5 and 4", func() {
		agg := review.Aggregate([]review.Rating{mustRating(s, 5), mustRating(s, 4)})
		s.mockQueries.EXPECT().AggregateRating(gomock.Any(), subjectID).
			Return(&queries.RatingView{SubjectID: subjectID, Rating: queries.NewRatingSummary(agg)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+subjectID.String()+"/rating", nil, "")

		var body resdto.RatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.Average)
		s.InDelta(4.5, *body.Average, 1e-9)
		s.Equal(int64(2), body.Count)
	})

	s.Run("success: no reviews renders null average", func() {
		s.mockQueries.EXPECT().AggregateRating(gomock.Any(), subjectID).
			Return(&queries.RatingView{SubjectID: subjectID, Rating: queries.NewRatingSummary(review.NoRating())}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+subjectID.String()+"/rating", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"average":null`)
		s.Contains(rec.Body.String(), `"display":"`+review.NoRatingDisplay+`"`)
	})
}

func mustRating(s *ReviewHandlerTestSuite, v int) review.Rating {
	r, err := review.NewRating(v)
	s.Require().NoError(err)
	return r
}
