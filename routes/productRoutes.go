package routes

import (
	"net/http"

	controllers "github.com/HenricoAmalfi03/Menu-Interativo/controllers"
	"github.com/gorilla/mux"
)

func ProductPublicRoutes(router *mux.Router) {
	router.HandleFunc("/products", controllers.GetProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{product_id}", controllers.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/products/category/{category_id}", controllers.GetProductsByCategory).Methods(http.MethodGet)
}

func ProductProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/products", controllers.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/products/{product_id}", controllers.UpdateProduct).Methods(http.MethodPatch)
	router.HandleFunc("/products/{product_id}", controllers.DeleteProduct).Methods(http.MethodDelete)
}
