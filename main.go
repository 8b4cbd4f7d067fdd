package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	database "github.com/abhi01326/eatoes/config"
	middleware "github.com/abhi01326/eatoes/middlewares"
	routes "github.com/abhi01326/eatoes/routes"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "healthy",
		"service": "eatoes restaurant operations backend",
	})
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	database.EnsureIndexes()

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	router.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	routes.MenuRoutes(router)
	routes.OrderRoutes(router)

	// The admin dashboard is served from a different origin
	handler := cors.Default().Handler(router)

	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
