package response

import (
	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

type EnrolmentResponse struct {
	ID                         string `json:"id"`
	StudentID                  string `json:"student_id"`
	OrderID                    string `json:"order_id"`
	CourseScheduleID           string `json:"course_schedule_id"`
	Status                     string `json:"status"`
	TransferredFromEnrolmentID string `json:"transferred_from_enrolment_id,omitempty"`
	TransferredToEnrolmentID   string `json:"transferred_to_enrolment_id,omitempty"`
	OriginalSKU                string `json:"original_sku"`
	TransferReason             string `json:"transfer_reason,omitempty"`
	TransferNotes              string `json:"transfer_notes,omitempty"`
	RefundEligible             bool   `json:"refund_eligible"`
}

type EnrolmentListResponse struct {
	Items         []EnrolmentResponse `json:"items"`
	NextPageToken string              `json:"next_page_token,omitempty"`
}

func FromEnrolment(e entities.Enrolment) EnrolmentResponse {
	return EnrolmentResponse{
		ID:                         e.ID,
		StudentID:                  e.StudentID,
		OrderID:                    e.OrderID,
		CourseScheduleID:           e.CourseScheduleID,
		Status:                     string(e.Status),
		TransferredFromEnrolmentID: e.TransferredFromEnrolmentID,
		TransferredToEnrolmentID:   e.TransferredToEnrolmentID,
		OriginalSKU:                e.OriginalSKU,
		TransferReason:             string(e.TransferReason),
		TransferNotes:              e.TransferNotes,
		RefundEligible:             e.RefundEligible,
	}
}

func FromEnrolmentList(enrolments []entities.Enrolment) []EnrolmentResponse {
	items := make([]EnrolmentResponse, 0, len(enrolments))
	for _, e := range enrolments {
		items = append(items, FromEnrolment(e))
	}
	return items
}

func FromEnrolments(enrolments []entities.Enrolment, nextPageToken string) EnrolmentListResponse {
	return EnrolmentListResponse{Items: FromEnrolmentList(enrolments), NextPageToken: nextPageToken}
}
