package routes

import (
	controller "github.com/HenricoAmalfi03/Menu-Interativo/controllers"

	"github.com/gorilla/mux"
)

func UserPublicRoutes(router *mux.Router) {
	router.HandleFunc("/users/signup", controller.SignUp).Methods("POST")
	router.HandleFunc("/users/login", controller.Login).Methods("POST")
}

func UserProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.GetUsers).Methods("GET")
	router.HandleFunc("/users/{user_id}", controller.GetUser).Methods("GET")
	router.HandleFunc("/users/logout", controller.Logout).Methods("POST")
}
