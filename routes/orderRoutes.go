package routes

import (
	"net/http"

	controllers "github.com/HenricoAmalfi03/Menu-Interativo/controllers"
	"github.com/gorilla/mux"
)

func OrderPublicRoutes(router *mux.Router) {
	// Order submission comes from the customer menu, not the admin panel.
	router.HandleFunc("/orders", controllers.SubmitOrder).Methods(http.MethodPost)
}

func OrderProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/orders", controllers.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", controllers.GetOrderById).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", controllers.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/orders/{order_id}", controllers.DeleteOrder).Methods(http.MethodDelete)
}
