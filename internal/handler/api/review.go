package api

import (
	"net/http"

	reqdto "parkshare/internal/handler/dto/request"
	resdto "parkshare/internal/handler/dto/response"
	"parkshare/internal/handler/httperr"
	"parkshare/internal/handler/middleware"
	"parkshare/internal/usecase/commands"
	"parkshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Rate another user from 1 to 5
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BindError(c, err)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), reviewerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/users/"+req.RevieweeID.String()+"/reviews")
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: result.ReviewID})
}

// @Summary List reviews about a user
// @Tags reviews
// @Produce json
// @Param id path string true "Reviewee ID"
// @Param limit query int false "Page size (1-100)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ListResponse[resdto.ReviewResponse]
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByReviewee(c *gin.Context) {
	revieweeID, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BindError(c, err)
		return
	}

	views, next, err := h.q.ListByReviewee(c.Request.Context(), revieweeID, q.Cursor(), q.Limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	resp, err := resdto.FromReviewList(views, next)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Aggregate rating
// @Description Mean of all ratings about the user. Average is null when there are none.
// @Tags reviews
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/rating [get]
func (h *ReviewHandler) Rating(c *gin.Context) {
	subjectID, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.AggregateRating(c.Request.Context(), subjectID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingView(view))
}
