package handler

// Request DTOs for the panel's admin operations. The panel posts JSON
// with the init-data assertion carried separately (see middleware).

type broadcastRequest struct {
	Scope string `json:"scope" validate:"omitempty,oneof=all auto_homework auto_homework_schedule"`
	Text  string `json:"text"`
}

type broadcastResponse struct {
	OK    bool   `json:"ok"`
	Sent  int    `json:"sent"`
	Scope string `json:"scope"`
}

type homeworkUpsertRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Text string `json:"text" validate:"required"`
}

type homeworkDeleteRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type scheduleAddRequest struct {
	Kind   string `json:"kind"    validate:"required"`
	FileID string `json:"file_id" validate:"required"`
}

type scheduleClearRequest struct {
	Kind string `json:"kind" validate:"required"`
}

type userIDRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

type modesRequest struct {
	Vacation    bool `json:"vacation"`
	Maintenance bool `json:"maintenance"`
}

type okResponse struct {
	OK bool `json:"ok"`
}
