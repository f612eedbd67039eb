package transportwatcher

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/theoremus-urban-solutions/transport-watcher/config"
	"github.com/theoremus-urban-solutions/transport-watcher/storage"
)

// Server exposes the route-finding service over HTTP.
type Server struct {
	svc  *GraphService
	repo *storage.Repository
	http *http.Server
}

func NewServer(svc *GraphService, repo *storage.Repository) *Server {
	return &Server{svc: svc, repo: repo}
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/routes/optimal", s.handleOptimalRoute).Methods(http.MethodGet)
	api.HandleFunc("/graph/info", s.handleGraphInfo).Methods(http.MethodGet)
	api.HandleFunc("/graph/update-weights", s.handleUpdateWeights).Methods(http.MethodPost)
	return r
}

func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}
