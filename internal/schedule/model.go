package schedule

import "time"

// WorkingBlock is a recurring weekly working period of a groomer.
// Weekday uses Monday = 0 through Sunday = 6.
type WorkingBlock struct {
	ID        int       `db:"id" json:"id"`
	GroomerID int       `db:"groomer_id" json:"groomer_id"`
	Weekday   int       `db:"weekday" json:"weekday"`
	StartTime string    `db:"start_time" json:"start_time" example:"09:00"`
	EndTime   string    `db:"end_time" json:"end_time" example:"14:00"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateBlockRequest struct {
	Weekday   int    `json:"weekday" binding:"gte=0,lte=6" example:"0"`
	StartTime string `json:"start_time" binding:"required" example:"09:00"`
	EndTime   string `json:"end_time" binding:"required" example:"14:00"`
}

type UpdateBlockRequest struct {
	Weekday   int    `json:"weekday" binding:"gte=0,lte=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    bool   `json:"active"`
}
