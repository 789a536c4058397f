package entities

// EnrolmentStatus is the state of a student's seat on a course run.
//
// State machine (one-way):
//   - active -> transferred  (sets the transfer back-link)
//   - active -> cancelled    (order-level cancellation, terminal)
//
// Nothing reverses transferred or cancelled. An enrolment's
// TransferredToEnrolmentID is set if and only if its status is
// transferred; once transferred the record is immutable except for that
// back-link.

type EnrolmentStatus string

const (
	EnrolmentStatusActive      EnrolmentStatus = "active"
	EnrolmentStatusTransferred EnrolmentStatus = "transferred"
	EnrolmentStatusCancelled   EnrolmentStatus = "cancelled"
)

// TransferReason records why a seat moved between course runs.

type TransferReason string

const (
	TransferReasonCourseCancelled   TransferReason = "course_cancelled"
	TransferReasonAttendeeRequested TransferReason = "attendee_requested"
	TransferReasonHeuristic         TransferReason = "heuristic"
)

// Enrolment links a student, an order and a course schedule.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - GSI1 (student_id-index): student_id
//   - GSI2 (order_id-index): order_id
//
// Enrolments linked through TransferredFrom/To form a singly-linked
// history per (student, course family).

type Enrolment struct {
	ID                         string          `json:"id"`
	StudentID                  string          `json:"student_id"`
	OrderID                    string          `json:"order_id"`
	CourseScheduleID           string          `json:"course_schedule_id"`
	Status                     EnrolmentStatus `json:"status"`
	TransferredFromEnrolmentID string          `json:"transferred_from_enrolment_id,omitempty"`
	TransferredToEnrolmentID   string          `json:"transferred_to_enrolment_id,omitempty"`
	OriginalSKU                string          `json:"original_sku"`
	TransferReason             TransferReason  `json:"transfer_reason,omitempty"`
	TransferNotes              string          `json:"transfer_notes,omitempty"`
	RefundEligible             bool            `json:"refund_eligible"`
}
