package request

// ListQuery carries the paging parameters shared by every collection
// endpoint. Limit is clamped by the use case, so out-of-range values
// bind fine here.
type ListQuery struct {
	Limit     int    `form:"limit"`
	PageToken string `form:"page_token"`
}
