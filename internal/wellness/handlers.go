package wellness

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"familyhub-backend/internal/auth"
)

// DailyHandler returns today's encouragement plus the user's current
// top task, so the home screen renders from one call.
func DailyHandler(dbx *sql.DB, picker *Picker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			taskID   sql.NullInt64
			title    sql.NullString
			prio     sql.NullInt64
			category sql.NullString
		)
		_ = dbx.QueryRow(`
			SELECT id, title, priority, category
			FROM tasks
			WHERE user_id = $1 AND status = 'active'
			ORDER BY priority DESC, created_at ASC, id ASC
			LIMIT 1
		`, uid).Scan(&taskID, &title, &prio, &category)

		resp := map[string]any{
			"message": picker.Pick(),
		}
		if taskID.Valid {
			resp["top_task"] = map[string]any{
				"id":       taskID.Int64,
				"title":    title.String,
				"priority": prio.Int64,
				"category": category.String,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
