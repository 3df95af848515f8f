package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"leetcode-assistant/config"
	"leetcode-assistant/handlers"
	"leetcode-assistant/services"
	"leetcode-assistant/services/chat"
	"leetcode-assistant/services/llm"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	switch cfg.Provider {
	case "", "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY environment variable is required")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("ANTHROPIC_API_KEY environment variable is required")
		}
	}

	apiKey := cfg.GeminiAPIKey
	if cfg.Provider == "anthropic" {
		apiKey = cfg.AnthropicAPIKey
	}

	llmClient, err := llm.New(context.Background(), cfg.Provider, apiKey, cfg.Model)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	problemService := services.NewProblemService()
	chatService := chat.NewService(problemService, llmClient,
		time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	chatHandler := handlers.NewChatHandler(chatService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")
	chatHandler.RegisterRoutes(router)

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
