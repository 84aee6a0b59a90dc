package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// BuildInfo identifies the running binary in logs and health output.
type BuildInfo struct {
	Version string
	Commit  string
}

type Config struct {
	Addr      string // e.g. ":8080"
	Build     BuildInfo
	Store     *Store
	Media     *MediaStore
	StaticDir string // pre-built SPA bundle
}

type Server struct {
	httpServer *http.Server
	store      *Store
	media      *MediaStore
	build      BuildInfo
}

func New(cfg Config) *Server {
	s := &Server{
		store: cfg.Store,
		media: cfg.Media,
		build: cfg.Build,
	}

	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/projects", s.handleListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}", s.handleDeleteProject).Methods(http.MethodDelete)
	api.HandleFunc("/update_project", s.handleUpdateProfile).Methods(http.MethodPost)
	api.HandleFunc("/upload-raster", s.handleUploadRaster).Methods(http.MethodPost)

	r.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ready", s.HandleReady).Methods(http.MethodGet)

	// Everything else is the SPA shell; the client router takes over.
	r.PathPrefix("/").Handler(spaHandler(cfg.StaticDir))

	// Wrap middleware: requestID -> logging -> security headers -> CORS -> router
	var handler http.Handler = r
	handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-Id"}),
	)(handler)
	handler = securityHeadersMiddleware(handler)
	handler = loggingMiddleware(handler)
	handler = requestIDMiddleware(handler)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler exposes the fully wired handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
