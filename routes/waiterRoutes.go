package routes

import (
	"net/http"

	controllers "github.com/HenricoAmalfi03/Menu-Interativo/controllers"
	"github.com/gorilla/mux"
)

func WaiterPublicRoutes(router *mux.Router) {
	router.HandleFunc("/waiters/active", controllers.GetActiveWaiters).Methods(http.MethodGet)
}

func WaiterProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/waiters", controllers.GetWaiters).Methods(http.MethodGet)
	router.HandleFunc("/waiters", controllers.CreateWaiter).Methods(http.MethodPost)
	router.HandleFunc("/waiters/{waiter_id}", controllers.GetWaiter).Methods(http.MethodGet)
	router.HandleFunc("/waiters/{waiter_id}", controllers.UpdateWaiter).Methods(http.MethodPatch)
	router.HandleFunc("/waiters/{waiter_id}", controllers.DeleteWaiter).Methods(http.MethodDelete)
}
