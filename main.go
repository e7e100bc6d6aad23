package main

import (
	"log"
	"net/http"
	"os"

	middleware "github.com/HenricoAmalfi03/Menu-Interativo/middlewares"
	routes "github.com/HenricoAmalfi03/Menu-Interativo/routes"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on the process environment")
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication): customer menu, checkout, admin login
	routes.UserPublicRoutes(router)
	routes.CategoryPublicRoutes(router)
	routes.ProductPublicRoutes(router)
	routes.WaiterPublicRoutes(router)
	routes.OrderPublicRoutes(router)

	// Apply Authentication Middleware to the admin panel routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.UserProtectedRoutes(securedRoutes)
	routes.CategoryProtectedRoutes(securedRoutes)
	routes.ProductProtectedRoutes(securedRoutes)
	routes.WaiterProtectedRoutes(securedRoutes)
	routes.OrderProtectedRoutes(securedRoutes)

	log.Println("Server is running on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
