package tasks

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"familyhub-backend/internal/analytics"
	"familyhub-backend/internal/auth"
	"familyhub-backend/internal/priority"
)

// normalizeInput trims both fields and rejects a fully empty task.
// An empty title with a non-empty description gets a placeholder so the
// row stays presentable.
func normalizeInput(title, description string) (safeTitle, desc string, ok bool) {
	t := strings.TrimSpace(title)
	d := strings.TrimSpace(description)

	if t == "" && d == "" {
		return "", "", false
	}
	if t == "" {
		t = "Untitled"
	}
	return t, d, true
}

func fetchTask(dbx *sql.DB, uid, taskID int) (Task, error) {
	row := dbx.QueryRow(`
		SELECT id, title, COALESCE(description,''), due_date,
		       priority, category, ai_processed, status, created_at
		FROM tasks
		WHERE user_id = $1 AND id = $2
	`, uid, taskID)

	var t Task
	var due sql.NullTime
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&due,
		&t.Priority,
		&t.Category,
		&t.AIProcessed,
		&t.Status,
		&t.CreatedAt,
	)
	if err != nil {
		return Task{}, err
	}
	if due.Valid {
		t.DueDate = &due.Time
	}
	return t, nil
}

// -------------------------------
// HANDLERS
// -------------------------------

func GetTasksHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rows, err := dbx.Query(`
			SELECT id, title, COALESCE(description,''), due_date,
			       priority, category, ai_processed, status, created_at
			FROM tasks
			WHERE user_id = $1
			ORDER BY id DESC
		`, uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), 500)
			return
		}
		defer rows.Close()

		var result []Task
		for rows.Next() {
			var t Task
			var due sql.NullTime
			if err := rows.Scan(
				&t.ID,
				&t.Title,
				&t.Description,
				&due,
				&t.Priority,
				&t.Category,
				&t.AIProcessed,
				&t.Status,
				&t.CreatedAt,
			); err != nil {
				http.Error(w, "scan error: "+err.Error(), 500)
				return
			}
			if due.Valid {
				t.DueDate = &due.Time
			}
			result = append(result, t)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, "db rows error: "+err.Error(), 500)
			return
		}

		sort.Slice(result, func(i, j int) bool {
			if result[i].Priority != result[j].Priority {
				return result[i].Priority > result[j].Priority
			}
			if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
				return result[i].CreatedAt.Before(result[j].CreatedAt)
			}
			return result[i].ID < result[j].ID
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(result)
	}
}

func CreateTaskHandler(dbx *sql.DB, engine *priority.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			DueDate     string `json:"due_date"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		safeTitle, desc, ok := normalizeInput(body.Title, body.Description)
		if !ok {
			http.Error(w, "title is required", 400)
			return
		}

		// Bad date strings degrade to "no due date" — never a 4xx.
		due := priority.ParseDueDate(body.DueDate)

		decision := engine.Infer(r.Context(), safeTitle, desc, due)
		if !decision.AIProcessed {
			// rule-based fallback produced the decision
			w.Header().Set("X-AI-Error", "1")
		}

		var taskID int
		var created time.Time
		var status string
		err := dbx.QueryRow(`
			INSERT INTO tasks (user_id, title, description, due_date, priority, category, ai_processed)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, status
		`, uid, safeTitle, desc, nullableTime(due),
			decision.Priority, decision.Category, decision.AIProcessed,
		).Scan(&taskID, &created, &status)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), 500)
			return
		}

		// analytics: task_created
		{
			env := analytics.FromRequest(r)
			env.UserID = uid

			props := map[string]any{
				"task_id":      taskID,
				"text_len":     len(safeTitle) + len(desc),
				"has_deadline": due != nil,
			}
			_ = analytics.Log(r.Context(), dbx, env, "task_created", props, analytics.SourceEventKeyFromRequest(r))
		}

		// analytics: task_priority_assigned
		{
			env := analytics.FromRequest(r)
			env.UserID = uid

			source := "rules"
			if decision.AIProcessed {
				source = "ai"
			}
			props := map[string]any{
				"task_id":         taskID,
				"priority":        decision.Priority,
				"priority_tier":   analytics.TierFromScore(decision.Priority),
				"category":        decision.Category,
				"priority_source": source,
			}
			_ = analytics.Log(r.Context(), dbx, env, "task_priority_assigned", props, analytics.SourceEventKeyFromRequest(r))
		}

		full, err := fetchTask(dbx, uid, taskID)
		if err != nil {
			log.Printf("[WARN] fetchTask failed on CREATE task_id=%d: %v", taskID, err)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Task{
				ID:          taskID,
				Title:       safeTitle,
				Description: desc,
				DueDate:     due,
				Priority:    decision.Priority,
				Category:    decision.Category,
				AIProcessed: decision.AIProcessed,
				Status:      status,
				CreatedAt:   created,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(full)
	}
}

func UpdateTaskHandler(dbx *sql.DB, engine *priority.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			TaskID      int    `json:"task_id"`
			Title       string `json:"title"`
			Description string `json:"description"`
			DueDate     string `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", 400)
			return
		}
		if body.TaskID == 0 {
			http.Error(w, "task_id required", 400)
			return
		}

		safeTitle, desc, ok := normalizeInput(body.Title, body.Description)
		if !ok {
			http.Error(w, "title is required", 400)
			return
		}

		due := priority.ParseDueDate(body.DueDate)

		// edits invalidate the previous decision, so re-run inference
		decision := engine.Infer(r.Context(), safeTitle, desc, due)
		if !decision.AIProcessed {
			w.Header().Set("X-AI-Error", "1")
		}

		res, err := dbx.Exec(`
			UPDATE tasks
			SET title=$1, description=$2, due_date=$3,
			    priority=$4, category=$5, ai_processed=$6
			WHERE id=$7 AND user_id=$8
		`, safeTitle, desc, nullableTime(due),
			decision.Priority, decision.Category, decision.AIProcessed,
			body.TaskID, uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), 500)
			return
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			http.Error(w, "task not found", 404)
			return
		}

		// analytics: task_updated + fresh priority
		{
			env := analytics.FromRequest(r)
			env.UserID = uid

			source := "rules"
			if decision.AIProcessed {
				source = "ai"
			}
			props := map[string]any{
				"task_id":         body.TaskID,
				"text_len":        len(safeTitle) + len(desc),
				"priority":        decision.Priority,
				"priority_tier":   analytics.TierFromScore(decision.Priority),
				"category":        decision.Category,
				"priority_source": source,
			}
			_ = analytics.Log(r.Context(), dbx, env, "task_updated", props, analytics.SourceEventKeyFromRequest(r))
		}

		full, err := fetchTask(dbx, uid, body.TaskID)
		if err != nil {
			http.Error(w, "fetch error: "+err.Error(), 500)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(full)
	}
}

func SetTaskStatusHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			TaskID int    `json:"task_id"`
			Status string `json:"status"` // active|done|canceled
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid json", 400)
			return
		}
		if body.TaskID == 0 {
			http.Error(w, "task_id required", 400)
			return
		}

		switch body.Status {
		case "active", "done", "canceled":
		default:
			http.Error(w, "invalid status", 400)
			return
		}

		var prevStatus string
		var createdAt time.Time
		_ = dbx.QueryRow(`
			SELECT status, created_at
			FROM tasks
			WHERE id=$1 AND user_id=$2
		`, body.TaskID, uid).Scan(&prevStatus, &createdAt)

		res, err := dbx.Exec(`
			UPDATE tasks
			SET status = $1
			WHERE id = $2 AND user_id = $3
		`, body.Status, body.TaskID, uid)
		if err != nil {
			http.Error(w, "db error: "+err.Error(), 500)
			return
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			http.Error(w, "task not found", 404)
			return
		}

		full, err := fetchTask(dbx, uid, body.TaskID)
		if err != nil {
			http.Error(w, "fetch error: "+err.Error(), 500)
			return
		}

		// analytics: task_completed / task_uncompleted
		if prevStatus != "" && prevStatus != body.Status {
			env := analytics.FromRequest(r)
			env.UserID = uid

			tier := analytics.TierFromScore(full.Priority)
			timeSinceCreated := int(time.Now().UTC().Sub(createdAt).Seconds())

			if prevStatus != "done" && body.Status == "done" {
				props := map[string]any{
					"task_id":                body.TaskID,
					"priority_at_completion": tier,
					"category":               full.Category,
					"time_since_created_sec": timeSinceCreated,
				}
				_ = analytics.Log(r.Context(), dbx, env, "task_completed", props, analytics.SourceEventKeyFromRequest(r))
			}

			if prevStatus == "done" && body.Status != "done" {
				props := map[string]any{
					"task_id":                body.TaskID,
					"priority_at_uncomplete": tier,
				}
				_ = analytics.Log(r.Context(), dbx, env, "task_uncompleted", props, analytics.SourceEventKeyFromRequest(r))
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(full)
	}
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
