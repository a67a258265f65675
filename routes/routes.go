package routes

import (
	"github.com/gorilla/mux"

	"frontdoor/handlers"
)

// Setup configures and returns a new router with all defined routes for the application.
// Unmatched paths and methods fall through to the router's default 404 and 405 handling.
func Setup(container *handlers.Container) *mux.Router {
	router := mux.NewRouter()

	setupIndexRoutes(router, handlers.NewIndexHandlers(container))

	return router
}

// setupIndexRoutes defines the root page route.
func setupIndexRoutes(router *mux.Router, index *handlers.IndexHandlers) {
	router.HandleFunc("/", index.Index).Methods("GET").Name("Index")
}
