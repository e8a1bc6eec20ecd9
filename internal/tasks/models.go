package tasks

import "time"

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    int        `json:"priority"`
	Category    string     `json:"category"`
	AIProcessed bool       `json:"ai_processed"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
