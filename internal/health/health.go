package health

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Server is a bare liveness responder. It exchanges no data with the
// pipeline.
type Server struct {
	srv *http.Server
}

// NewServer builds the health router on the given address.
func NewServer(addr string) *Server {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &Server{srv: &http.Server{Addr: addr, Handler: r}}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Start serves in the background.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[ERROR] health server: %v", err)
		}
	}()
	log.Printf("[INFO] health endpoint on %s", s.srv.Addr)
}

// Stop shuts the listener down gracefully.
func (s *Server) Stop(ctx context.Context) {
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Printf("[WARN] health shutdown: %v", err)
	}
}
