package routes

import (
	"net/http"

	controllers "github.com/abhi01326/eatoes/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router) {

	router.HandleFunc("/api/menu", controllers.GetMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/api/menu", controllers.CreateMenuItem).Methods(http.MethodPost)

	// Registered before the {id} routes so "search" is never read as an id
	router.HandleFunc("/api/menu/search", controllers.SearchMenuItems).Methods(http.MethodGet)

	router.HandleFunc("/api/menu/{id}", controllers.GetMenuItem).Methods(http.MethodGet)
	router.HandleFunc("/api/menu/{id}", controllers.UpdateMenuItem).Methods(http.MethodPut)
	router.HandleFunc("/api/menu/{id}", controllers.DeleteMenuItem).Methods(http.MethodDelete)
	router.HandleFunc("/api/menu/{id}/availability", controllers.ToggleMenuItemAvailability).Methods(http.MethodPatch)
}
