// Package server hosts the local development API the interactive front end
// talks to. The engine itself stays pure; this layer owns request decoding,
// response memoization, and logging.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/minjaecho/massplanner/pkg/massing"
	"github.com/minjaecho/massplanner/pkg/parcel"
	"github.com/minjaecho/massplanner/pkg/regulation"
	"github.com/minjaecho/massplanner/pkg/scene"
)

// Server is the local development server for interactive massing.
type Server struct {
	projectPath string
	port        int
	logger      *log.Logger

	// The engine is referentially transparent, so responses are memoized by
	// a hash of the request body. This is the caller-side cache the engine
	// contract assigns to the UI layer.
	mu   sync.Mutex
	memo map[string][]byte
}

// New creates a server for the given project directory.
func New(projectPath string, port int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		logger:      logger,
		memo:        make(map[string][]byte),
	}
}

func (s *Server) router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/massing", s.handleMassing)
	r.Get("/api/project", s.handleProject)
	r.Get("/api/zoning/{zone}", s.handleZoning)
	r.Get("/api/setback", s.handleSetback)
	return r
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	r := s.router()
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("massplanner server starting", "addr", "http://localhost"+addr, "project", s.projectPath)
	return http.ListenAndServe(addr, r)
}

// massingResponse is the full payload the front end needs per recompute.
type massingResponse struct {
	Massing    *massing.BuildingMassing `json:"massing"`
	Compliance massing.ComplianceResult `json:"compliance"`
	Report     any                      `json:"report"`
	Scene      *scene.Graph             `json:"scene"`
}

func (s *Server) handleMassing(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		httpError(w, http.StatusBadRequest, "reading request body")
		return
	}

	key := memoKey(body)
	if cached, ok := s.lookup(key); ok {
		s.logger.Debug("massing cache hit", "key", key[:8])
		writeRawJSON(w, cached)
		return
	}

	var proj parcel.Project
	if err := json.Unmarshal(body, &proj); err != nil {
		httpError(w, http.StatusBadRequest, "decoding project JSON")
		return
	}

	report := parcel.Validate(&proj)
	if !report.Valid {
		writeJSON(w, map[string]any{"report": report})
		return
	}

	env := massing.BuildEnvelope(proj.Parcel)
	m := massing.Generate(env, proj.Building, massing.WithLogger(s.logger))
	res := massing.CheckMassing(&m, proj.Building.Setbacks.Back, proj.Parcel.UseZone)
	report.Merge(massing.Report(res, massing.ComplianceInput{
		FootprintArea:  m.FootprintArea,
		TotalFloorArea: m.TotalFloorArea,
		LandArea:       m.LandArea,
		TotalHeight:    m.TotalHeight,
		Stories:        len(m.Floors),
		RearSetback:    proj.Building.Setbacks.Back,
		UseZone:        proj.Parcel.UseZone,
		Limits:         m.Limits,
	}))

	payload, err := json.Marshal(massingResponse{
		Massing:    &m,
		Compliance: res,
		Report:     report,
		Scene:      scene.Assemble(&m, env.Polygon),
	})
	if err != nil {
		httpError(w, http.StatusInternalServerError, "encoding response")
		return
	}

	s.store(key, payload)
	writeRawJSON(w, payload)
}

func (s *Server) handleProject(w http.ResponseWriter, _ *http.Request) {
	proj, err := parcel.LoadProject(s.projectPath)
	if err != nil {
		httpError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, proj)
}

func (s *Server) handleZoning(w http.ResponseWriter, req *http.Request) {
	zone := chi.URLParam(req, "zone")
	settlement := req.URL.Query().Get("settlement") == "true"
	writeJSON(w, map[string]any{
		"use_zone":         zone,
		"limits":           regulation.LimitsForZone(zone, settlement),
		"daylight_applies": regulation.DaylightApplies(zone),
	})
}

func (s *Server) handleSetback(w http.ResponseWriter, req *http.Request) {
	height, err := strconv.ParseFloat(req.URL.Query().Get("height"), 64)
	if err != nil || height < 0 {
		httpError(w, http.StatusBadRequest, "height must be a non-negative number")
		return
	}
	zone := req.URL.Query().Get("zone")
	writeJSON(w, map[string]any{
		"height":  height,
		"zone":    zone,
		"setback": regulation.NorthSetback(height, zone),
	})
}

func (s *Server) lookup(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.memo[key]
	return v, ok
}

func (s *Server) store(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memo[key] = payload
}

func memoKey(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeRawJSON(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
