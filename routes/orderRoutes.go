package routes

import (
	"net/http"

	controller "github.com/abhi01326/eatoes/controllers"

	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router) {

	router.HandleFunc("/api/orders", controller.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/orders", controller.CreateOrder).Methods(http.MethodPost)

	router.HandleFunc("/api/orders/{id}", controller.GetOrderByID).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{id}/status", controller.UpdateOrderStatus).Methods(http.MethodPatch)
}
