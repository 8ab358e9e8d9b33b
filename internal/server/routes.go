package server

// routes sets up the routes for the HTTP server.
func (s *Server) routes() {
	s.router.GET("/health", s.health)

	s.router.GET("/api/expand", s.expand)
	s.router.GET("/api/graph", s.syntheticGraph)
	s.router.GET("/api/graph/memories", s.memoryGraph)
	s.router.GET("/api/stats", s.statsSnapshot)

	s.router.POST("/api/sessions", s.createSession)
	s.router.GET("/api/sessions/:id", s.sessionGraph)
	s.router.POST("/api/sessions/:id/expand", s.sessionExpand)
}
