package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/cors"

	"familyhub-backend/internal/analytics"
	"familyhub-backend/internal/auth"
	"familyhub-backend/internal/config"
	"familyhub-backend/internal/db"
	"familyhub-backend/internal/priority"
	"familyhub-backend/internal/sentiment"
	"familyhub-backend/internal/tasks"
	"familyhub-backend/internal/wellness"
)

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("failed to connect DB: ", err)
	}
	defer database.Close()

	log.Println("connected to PostgreSQL")

	// Optional external sentiment path: no URL, no AI — the engine
	// falls back to rules and aiProcessed stays false.
	var hinter sentiment.Hinter
	if cfg.SentimentURL != "" {
		hinter = sentiment.New(cfg.SentimentURL, cfg.SentimentToken, cfg.SentimentTimeout)
		log.Println("sentiment hints enabled")
	} else {
		log.Println("[WARN] SENTIMENT_API_URL not set — smart rules only")
	}

	engine := priority.NewEngine(priority.DefaultLexicon(), hinter)
	picker := wellness.NewPicker(rand.New(rand.NewSource(time.Now().UnixNano())))

	secret := []byte(cfg.JWTSecret)
	mw := auth.New(secret)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH API -----
	mux.HandleFunc("/auth/register", auth.RegisterHandler(database, secret))
	mux.HandleFunc("/auth/login", auth.LoginHandler(database, secret))
	mux.HandleFunc("/auth/me", mw.Wrap(auth.MeHandler(database)))
	mux.HandleFunc("/auth/logout", mw.Wrap(auth.LogoutHandler()))
	mux.HandleFunc("/auth/delete", mw.Wrap(auth.DeleteAccountHandler(database)))

	// ----- TASKS API -----
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mw.Wrap(tasks.GetTasksHandler(database))(w, r)
		case http.MethodPost:
			mw.Wrap(tasks.CreateTaskHandler(database, engine))(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/tasks/update", mw.Wrap(tasks.UpdateTaskHandler(database, engine)))
	mux.HandleFunc("/tasks/status", mw.Wrap(tasks.SetTaskStatusHandler(database)))

	// ----- WELLNESS API -----
	mux.HandleFunc("/wellness/daily", mw.Wrap(wellness.DailyHandler(database, picker)))

	// ----- ANALYTICS API -----
	mux.HandleFunc("/analytics/app-opened", mw.Wrap(analytics.AppOpenedHandler(database)))
	mux.HandleFunc("/analytics/suggestion-shown", mw.Wrap(analytics.SuggestionShownHandler(database)))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("API server is running on " + cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
