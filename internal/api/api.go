// Package api wires the HTTP surface of the namesprouts server.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/namesprouts/namesprouts/internal/api/auth"
	"github.com/namesprouts/namesprouts/internal/api/handler"
	"github.com/namesprouts/namesprouts/internal/config"
	"github.com/namesprouts/namesprouts/internal/database"
	"github.com/namesprouts/namesprouts/internal/flowers"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        *database.Client
	catalog   *flowers.Catalog
}

func New(cfg *config.Config, db *database.Client, catalog *flowers.Catalog) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	return &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
		catalog:   catalog,
	}, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.Session.Key))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions(s.cfg.Session.CookieName, store))
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.setupSession()

	h := handler.New(s.db, s.catalog)

	s.ginEngine.Static("/static", s.cfg.Static.Dir)
	s.ginEngine.NoRoute(h.NotFound)

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/register", h.RegisterForm)
	s.ginEngine.POST("/register", h.Register)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/logout", h.Logout)

	protected := s.ginEngine.Group("/")
	protected.Use(auth.RequireAuth())

	protected.GET("/design", h.DesignForm)
	protected.POST("/design", h.CreateProject)
	protected.GET("/projects", h.ListProjects)
	protected.GET("/edit/:id", h.GetProject)
	protected.POST("/edit/:id", h.UpdateProject)
	protected.POST("/delete/:id", h.DeleteProject)
}

func (s *Server) Run() error {
	s.setupRoutes()

	return s.ginEngine.Run(s.cfg.Listen)
}
