package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/DaanHessen/gembooth-dash/internal/content"
	"github.com/DaanHessen/gembooth-dash/internal/envfile"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	EnvFile  string `json:"env_file"`
	EnvFound bool   `json:"env_found"`
}

type endpoint struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

type indexResponse struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Endpoints []endpoint `json:"endpoints"`
}

// loadEnv reads the env file for one request; failures degrade to an
// empty map.
func (s *Server) loadEnv() envfile.Map {
	return envfile.LoadOrEmpty(s.cfg.EnvFile, s.log)
}

func (s *Server) handleIndex(c *gin.Context) {
	eps := []endpoint{{"/api/health", "Health"}, {"/api/pages", "Page index"}}
	for _, p := range content.Pages() {
		eps = append(eps, endpoint{"/api/" + string(p.ID), p.Title})
	}
	c.JSON(http.StatusOK, indexResponse{Name: "GemBooth Dashboard", Version: s.cfg.Version, Endpoints: eps})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:   "ok",
		Version:  s.cfg.Version,
		Uptime:   time.Since(s.startTime).Round(time.Second).String(),
		EnvFile:  s.cfg.EnvFile,
		EnvFound: envfile.Exists(s.cfg.EnvFile),
	})
}

func (s *Server) handlePages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pages": content.Pages()})
}

func (s *Server) pageHandler(id content.PageID) gin.HandlerFunc {
	return func(c *gin.Context) { s.writePage(c, id) }
}

func (s *Server) handlePage(c *gin.Context) {
	p, ok := content.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown page: " + c.Param("id")})
		return
	}
	s.writePage(c, p.ID)
}

func (s *Server) writePage(c *gin.Context, id content.PageID) {
	payload, err := content.Build(id, s.loadEnv(), s.now())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) handleMarkdown(c *gin.Context) {
	p, ok := content.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown page: " + c.Param("id")})
		return
	}
	md, err := content.Markdown(p.ID, s.loadEnv(), s.now())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, content.ErrUnknownPage) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	s.log.Error("render page", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
