package routes

import (
	"net/http"

	controllers "github.com/HenricoAmalfi03/Menu-Interativo/controllers"
	"github.com/gorilla/mux"
)

func CategoryPublicRoutes(router *mux.Router) {
	router.HandleFunc("/categories", controllers.GetCategories).Methods(http.MethodGet)
	router.HandleFunc("/categories/{category_id}", controllers.GetCategory).Methods(http.MethodGet)
}

func CategoryProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/categories", controllers.CreateCategory).Methods(http.MethodPost)
	router.HandleFunc("/categories/{category_id}", controllers.UpdateCategory).Methods(http.MethodPatch)
	router.HandleFunc("/categories/{category_id}", controllers.DeleteCategory).Methods(http.MethodDelete)
}
