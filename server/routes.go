// Package usersserver wires the users HTTP surface onto a gin engine.
package usersserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions groups the handler sets mounted by NewRouter.
type ApiHandleFunctions struct {
	UsersAPI  UsersAPI
	HealthAPI HealthAPI
}

// Route declares a single endpoint binding.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a gin engine with the given middleware installed and
// all API routes attached. Middleware must be registered here rather than
// on the returned engine: gin snapshots each route's handler chain at
// registration, so anything added afterwards never runs for these routes.
func NewRouter(handlers ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)
	for _, route := range getRoutes(handlers) {
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(handlers ApiHandleFunctions) []Route {
	return []Route{
		{http.MethodGet, "/users", handlers.UsersAPI.ListUsers},
		{http.MethodPost, "/users", handlers.UsersAPI.CreateUser},
		{http.MethodGet, "/users/:id", handlers.UsersAPI.GetUser},
		{http.MethodPut, "/users/:id", handlers.UsersAPI.UpdateUser},
		{http.MethodDelete, "/users/:id", handlers.UsersAPI.DeleteUser},
		{http.MethodGet, "/healthz", handlers.HealthAPI.Liveness},
	}
}
