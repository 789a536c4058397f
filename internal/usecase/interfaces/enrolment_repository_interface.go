package interfaces

import (
	"context"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// IEnrolmentRepository abstracts DynamoDB persistence for Enrolment.
//
// Transfer detection needs a student's full enrolment history and an order's
// enrolments; MarkTransferred and MarkCancelled return the updated record,
// or the zero value when the enrolment no longer exists.

type IEnrolmentRepository interface {
	Create(ctx context.Context, e entities.Enrolment) (entities.Enrolment, error)
	GetByID(ctx context.Context, id string) (entities.Enrolment, error)
	ListByStudentID(ctx context.Context, studentID string) ([]entities.Enrolment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Enrolment, error)
	MarkTransferred(ctx context.Context, id string, toEnrolmentID string) (entities.Enrolment, error)
	MarkCancelled(ctx context.Context, id string) (entities.Enrolment, error)
	ListTransferred(ctx context.Context, limit int, pageToken string) ([]entities.Enrolment, string, error)
}
