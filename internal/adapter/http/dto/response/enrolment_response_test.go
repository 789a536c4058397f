package response

import (
	"testing"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

func TestFromEnrolment(t *testing.T) {
	e := entities.Enrolment{
		ID:                         "en-2",
		StudentID:                  "pat@corp.example",
		OrderID:                    "woocommerce#2001",
		CourseScheduleID:           "woocommerce#502",
		Status:                     entities.EnrolmentStatusActive,
		TransferredFromEnrolmentID: "en-1",
		OriginalSKU:                "PSM-070325",
		TransferReason:             entities.TransferReasonCourseCancelled,
		TransferNotes:              "Transfer from PSM0602",
		RefundEligible:             true,
	}

	res := FromEnrolment(e)
	if res.ID != "en-2" || res.StudentID != "pat@corp.example" || res.OrderID != "woocommerce#2001" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Status != "active" || res.TransferReason != "course_cancelled" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.TransferredFromEnrolmentID != "en-1" || res.TransferredToEnrolmentID != "" {
		t.Fatalf("unexpected chain links: %+v", res)
	}
	if !res.RefundEligible {
		t.Fatalf("expected refund eligible")
	}
}

func TestFromEnrolments(t *testing.T) {
	list := FromEnrolments([]entities.Enrolment{{ID: "en-1"}}, "")
	if len(list.Items) != 1 || list.Items[0].ID != "en-1" {
		t.Fatalf("unexpected items: %+v", list.Items)
	}
	if list.NextPageToken != "" {
		t.Fatalf("unexpected token: %q", list.NextPageToken)
	}
}
