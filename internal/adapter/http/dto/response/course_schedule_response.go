package response

import (
	"time"

	"github.com/asbrown77/bagile-platform-sub000/internal/domain/entities"
)

type CourseScheduleResponse struct {
	ID              string    `json:"id"`
	SourceSystem    string    `json:"source_system"`
	SourceProductID int64     `json:"source_product_id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	TrainerName     string    `json:"trainer_name"`
	FormatType      string    `json:"format_type"`
}

type CourseScheduleListResponse struct {
	Items         []CourseScheduleResponse `json:"items"`
	NextPageToken string                   `json:"next_page_token,omitempty"`
}

func FromCourseSchedule(cs entities.CourseSchedule) CourseScheduleResponse {
	return CourseScheduleResponse{
		ID:              cs.ID,
		SourceSystem:    string(cs.SourceSystem),
		SourceProductID: cs.SourceProductID,
		SKU:             cs.SKU,
		Name:            cs.Name,
		StartDate:       cs.StartDate,
		EndDate:         cs.EndDate,
		Price:           cs.Price,
		Status:          cs.Status,
		TrainerName:     cs.TrainerName,
		FormatType:      cs.FormatType,
	}
}

func FromCourseSchedules(schedules []entities.CourseSchedule, nextPageToken string) CourseScheduleListResponse {
	items := make([]CourseScheduleResponse, 0, len(schedules))
	for _, cs := range schedules {
		items = append(items, FromCourseSchedule(cs))
	}
	return CourseScheduleListResponse{Items: items, NextPageToken: nextPageToken}
}
