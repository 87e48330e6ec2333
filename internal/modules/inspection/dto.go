package inspection

import "time"

type CreateInspectionRequest struct {
	Title string    `json:"title" binding:"required,min=2,max=100"`
	Date  time.Time `json:"date" binding:"required"`
	Notes string    `json:"notes" binding:"required,min=1,max=100"`
}

type UpdateInspectionRequest struct {
	Title string    `json:"title" binding:"required,min=2,max=100"`
	Date  time.Time `json:"date" binding:"required"`
	Notes string    `json:"notes" binding:"required,min=1,max=100"`
}
