package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
	"github.com/asbrown77/bagile-platform-sub000/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidQueryKey = errors.New("invalid lookup key")
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// IQueryUseCase is the read side of the pipeline: it serves the orders,
// students, schedules and transfers that processing has already written.
type IQueryUseCase interface {
	ListOrders(ctx context.Context, limit int, pageToken string) ([]entities.Order, string, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListStudents(ctx context.Context, limit int, pageToken string) ([]entities.Student, string, error)
	GetStudentEnrolments(ctx context.Context, email string) (entities.Student, []entities.Enrolment, error)
	ListSchedules(ctx context.Context, limit int, pageToken string) ([]entities.CourseSchedule, string, error)
	ListTransfers(ctx context.Context, limit int, pageToken string) ([]entities.Enrolment, string, error)
}

type QueryUseCase struct {
	orders     interfaces.IOrderRepository
	students   interfaces.IStudentRepository
	schedules  interfaces.ICourseScheduleRepository
	enrolments interfaces.IEnrolmentRepository
}

var _ IQueryUseCase = (*QueryUseCase)(nil)

func NewQueryUseCase(
	orders interfaces.IOrderRepository,
	students interfaces.IStudentRepository,
	schedules interfaces.ICourseScheduleRepository,
	enrolments interfaces.IEnrolmentRepository,
) *QueryUseCase {
	return &QueryUseCase{orders: orders, students: students, schedules: schedules, enrolments: enrolments}
}

func (u *QueryUseCase) ListOrders(ctx context.Context, limit int, pageToken string) ([]entities.Order, string, error) {
	return u.orders.List(ctx, clampLimit(limit), pageToken)
}

func (u *QueryUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, ErrInvalidQueryKey
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *QueryUseCase) ListStudents(ctx context.Context, limit int, pageToken string) ([]entities.Student, string, error) {
	return u.students.List(ctx, clampLimit(limit), pageToken)
}

// GetStudentEnrolments returns a student together with their enrolment
// history, transferred and cancelled records included.
func (u *QueryUseCase) GetStudentEnrolments(ctx context.Context, email string) (entities.Student, []entities.Enrolment, error) {
	if strings.TrimSpace(email) == "" {
		return entities.Student{}, nil, ErrInvalidQueryKey
	}
	student, err := u.students.GetByEmail(ctx, email)
	if err != nil {
		return entities.Student{}, nil, err
	}
	if student.ID == "" {
		return entities.Student{}, nil, ErrStudentNotFound
	}
	enrolments, err := u.enrolments.ListByStudentID(ctx, student.ID)
	if err != nil {
		return entities.Student{}, nil, err
	}
	return student, enrolments, nil
}

func (u *QueryUseCase) ListSchedules(ctx context.Context, limit int, pageToken string) ([]entities.CourseSchedule, string, error) {
	return u.schedules.List(ctx, clampLimit(limit), pageToken)
}

func (u *QueryUseCase) ListTransfers(ctx context.Context, limit int, pageToken string) ([]entities.Enrolment, string, error) {
	return u.enrolments.ListTransferred(ctx, clampLimit(limit), pageToken)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
