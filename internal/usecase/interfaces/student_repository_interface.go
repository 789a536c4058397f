package interfaces

import (
	"context"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

// IStudentRepository abstracts DynamoDB persistence for Student.

type IStudentRepository interface {
	Upsert(ctx context.Context, s entities.Student) (entities.Student, error)
	GetByEmail(ctx context.Context, email string) (entities.Student, error)
	List(ctx context.Context, limit int, pageToken string) ([]entities.Student, string, error)
}
