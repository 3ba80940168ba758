// Package api exposes the pricer over HTTP: POST /v1/price and
// POST /v1/risk, both behind a bearer-API-key middleware. There is no
// user store here — unlike the teacher's Postgres-backed auth, a single
// bcrypt hash held in config is all a stateless pricing library needs
// to authenticate a caller.
package api

import "github.com/gin-gonic/gin"

// Server serves HTTP requests for the Dupire barrier pricer.
type Server struct {
	apiKeyHash string
	router     *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing. apiKeyHash is
// a bcrypt hash of the single accepted API key; an empty hash disables
// authentication, which is only appropriate for local development.
func NewServer(apiKeyHash string) *Server {
	server := &Server{apiKeyHash: apiKeyHash}
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	routes := router.Group("/v1")
	if server.apiKeyHash != "" {
		routes.Use(server.authentication)
	}
	routes.POST("/price", server.price)
	routes.POST("/risk", server.risk)
	server.router = router
}

// Start runs the HTTP server on the given address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
