package response

import (
	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

type StudentResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
}

type StudentListResponse struct {
	Items         []StudentResponse `json:"items"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// StudentEnrolmentsResponse pairs a student with their full enrolment
// history, transfers and cancellations included.
type StudentEnrolmentsResponse struct {
	Student    StudentResponse     `json:"student"`
	Enrolments []EnrolmentResponse `json:"enrolments"`
}

func FromStudent(s entities.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Company:   s.Company,
	}
}

func FromStudents(students []entities.Student, nextPageToken string) StudentListResponse {
	items := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		items = append(items, FromStudent(s))
	}
	return StudentListResponse{Items: items, NextPageToken: nextPageToken}
}

func FromStudentEnrolments(s entities.Student, enrolments []entities.Enrolment) StudentEnrolmentsResponse {
	return StudentEnrolmentsResponse{
		Student:    FromStudent(s),
		Enrolments: FromEnrolmentList(enrolments),
	}
}
