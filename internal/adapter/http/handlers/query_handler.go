package handlers

import (
	"errors"
	"net/http"

	request "github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/dto/request"
	response "github.com/asbrown77/bagile-platform-sub000/internal/adapter/http/dto/response"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase"
	"github.com/asbrown77/bagile-platform-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidListQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid list query", http.StatusBadRequest)

// QueryHandler serves the read side: orders, students, course schedules and
// detected transfers produced by the pipeline.
type QueryHandler struct {
	usecase usecase.IQueryUseCase
}

func NewQueryHandler(uc usecase.IQueryUseCase) *QueryHandler {
	return &QueryHandler{usecase: uc}
}

// ListOrders returns a page of processed orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        limit       query int    false "Page size (max 200)"
// @Param        page_token  query string false "Opaque continuation token"
// @Success      200  {object}  response.OrderListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *QueryHandler) ListOrders(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	orders, next, err := h.usecase.ListOrders(c.Request.Context(), q.Limit, q.PageToken)
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders, next))
}

// GetOrder returns a single order by its canonical id ("{source}#{external_id}").
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Canonical order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *QueryHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListStudents returns a page of students.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Param        limit       query int    false "Page size (max 200)"
// @Param        page_token  query string false "Opaque continuation token"
// @Success      200  {object}  response.StudentListResponse
// @Router       /students [get]
func (h *QueryHandler) ListStudents(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	students, next, err := h.usecase.ListStudents(c.Request.Context(), q.Limit, q.PageToken)
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStudents(students, next))
}

// GetStudentEnrolments returns a student and their enrolment history.
//
// @Summary      Get a student's enrolments
// @Tags         students
// @Produce      json
// @Param        email  path  string  true  "Student email"
// @Success      200  {object}  response.StudentEnrolmentsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /students/{email}/enrolments [get]
func (h *QueryHandler) GetStudentEnrolments(c *gin.Context) {
	student, enrolments, err := h.usecase.GetStudentEnrolments(c.Request.Context(), c.Param("email"))
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStudentEnrolments(student, enrolments))
}

// ListSchedules returns a page of course schedules.
//
// @Summary      List course schedules
// @Tags         schedules
// @Produce      json
// @Param        limit       query int    false "Page size (max 200)"
// @Param        page_token  query string false "Opaque continuation token"
// @Success      200  {object}  response.CourseScheduleListResponse
// @Router       /schedules [get]
func (h *QueryHandler) ListSchedules(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	schedules, next, err := h.usecase.ListSchedules(c.Request.Context(), q.Limit, q.PageToken)
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCourseSchedules(schedules, next))
}

// ListTransfers returns a page of enrolments that were transferred.
//
// @Summary      List detected transfers
// @Tags         transfers
// @Produce      json
// @Param        limit       query int    false "Page size (max 200)"
// @Param        page_token  query string false "Opaque continuation token"
// @Success      200  {object}  response.EnrolmentListResponse
// @Router       /transfers [get]
func (h *QueryHandler) ListTransfers(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	transfers, next, err := h.usecase.ListTransfers(c.Request.Context(), q.Limit, q.PageToken)
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrolments(transfers, next))
}

func mapQueryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQueryKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStudentNotFound):
		return pkg.NewDomainErrorSimple("STUDENT_NOT_FOUND", "Student not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
