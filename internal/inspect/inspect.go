// Package inspect serves a read-mostly HTTP view of a running scene:
// window snapshots, hit tests, DOT diagrams, resizes and metrics.
//
// Every handler reaches the scene through Scene.Call, so the scene's frame
// loop must be running for requests to complete.
package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-metrics"

	scene "github.com/grindlemire/go-scene"
	"github.com/grindlemire/go-scene/internal/dot"
)

// Server routes inspector requests to a scene.
type Server struct {
	scene  *scene.Scene
	sink   *metrics.InmemSink
	logger *log.Logger
	router chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics serves sink at /metrics.
func WithMetrics(sink *metrics.InmemSink) Option {
	return func(s *Server) { s.sink = sink }
}

// WithLogger sets the request logger. Default is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server for sc.
func New(sc *scene.Scene, opts ...Option) *Server {
	s := &Server{scene: sc, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/metrics", s.wrap(s.metricsRequest))
	r.Get("/windows", s.wrap(s.windowsRequest))
	r.Route("/windows/{window}", func(r chi.Router) {
		r.Get("/snapshot", s.wrap(s.snapshotRequest))
		r.Get("/hit", s.wrap(s.hitRequest))
		r.Get("/dot", s.wrap(s.dotRequest))
		r.Post("/resize", s.wrap(s.resizeRequest))
	})
	s.router = r
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPCodedError carries the status code to reply with.
type HTTPCodedError interface {
	error
	Code() int
}

// CodedError creates an error replied with status code c.
func CodedError(c int, msg string) HTTPCodedError {
	return &codedError{msg, c}
}

type codedError struct {
	s    string
	code int
}

func (e *codedError) Error() string { return e.s }
func (e *codedError) Code() int     { return e.code }

// rawResponse is written as-is instead of JSON encoded.
type rawResponse struct {
	contentType string
	body        []byte
}

func (s *Server) wrap(handler func(resp http.ResponseWriter, req *http.Request) (any, error)) http.HandlerFunc {
	return func(resp http.ResponseWriter, req *http.Request) {
		start := time.Now()
		defer func() {
			s.logger.Debug("http request", "method", req.Method, "url", req.URL.String(), "took", time.Since(start))
		}()

		obj, err := handler(resp, req)
		if err == nil {
			if raw, ok := obj.(rawResponse); ok {
				resp.Header().Set("Content-Type", raw.contentType)
				_, _ = resp.Write(raw.body)
				return
			}
			if obj == nil {
				resp.WriteHeader(http.StatusNoContent)
				return
			}
			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			if _, pretty := req.URL.Query()["pretty"]; pretty {
				enc.SetIndent("", "  ")
			}
			if err = enc.Encode(obj); err == nil {
				resp.Header().Set("Content-Type", "application/json")
				_, _ = resp.Write(buf.Bytes())
				return
			}
		}

		code := http.StatusInternalServerError
		var coded HTTPCodedError
		if errors.As(err, &coded) {
			code = coded.Code()
		}
		s.logger.Error("http request failed", "url", req.URL.String(), "err", err)
		http.Error(resp, err.Error(), code)
	}
}

// onScene runs fn on the scene's UI goroutine.
func (s *Server) onScene(req *http.Request, fn func() error) error {
	var err error
	if callErr := s.scene.Call(req.Context(), func() { err = fn() }); callErr != nil {
		return CodedError(http.StatusServiceUnavailable, callErr.Error())
	}
	return err
}

// window finds the window named by the {window} URL parameter, by name or
// id. Call on the UI goroutine.
func (s *Server) window(req *http.Request) (*scene.Window, error) {
	key := chi.URLParam(req, "window")
	for _, w := range s.scene.Windows() {
		if w.Name() == key || w.ID().String() == key {
			return w, nil
		}
	}
	return nil, CodedError(http.StatusNotFound, fmt.Sprintf("window %q not found", key))
}

func (s *Server) metricsRequest(resp http.ResponseWriter, req *http.Request) (any, error) {
	if s.sink == nil {
		return nil, CodedError(http.StatusNotFound, "metrics are not enabled")
	}
	return s.sink.DisplayMetrics(resp, req)
}

// WindowInfo summarizes a window.
type WindowInfo struct {
	Name    string     `json:"name"`
	ID      string     `json:"id"`
	Client  scene.Size `json:"client"`
	Pending int        `json:"pending"`
}

func (s *Server) windowsRequest(_ http.ResponseWriter, req *http.Request) (any, error) {
	var out []WindowInfo
	err := s.onScene(req, func() error {
		out = make([]WindowInfo, 0)
		for _, w := range s.scene.Windows() {
			out = append(out, WindowInfo{
				Name:    w.Name(),
				ID:      w.ID().String(),
				Client:  w.ClientSize(),
				Pending: w.PendingCount(),
			})
		}
		return nil
	})
	return out, err
}

func (s *Server) snapshotRequest(_ http.ResponseWriter, req *http.Request) (any, error) {
	var snap scene.Snapshot
	err := s.onScene(req, func() error {
		w, err := s.window(req)
		if err != nil {
			return err
		}
		snap = w.Snapshot()
		return nil
	})
	return snap, err
}

// HitResult is the reply to a hit test.
type HitResult struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Hit  bool    `json:"hit"`
	ID   int     `json:"id,omitempty"`
	Name string  `json:"name,omitempty"`
	// Path holds node ids from the window root down to the hit node.
	Path []int   `json:"path,omitempty"`
}

func (s *Server) hitRequest(_ http.ResponseWriter, req *http.Request) (any, error) {
	x, err := floatParam(req, "x")
	if err != nil {
		return nil, err
	}
	y, err := floatParam(req, "y")
	if err != nil {
		return nil, err
	}

	res := HitResult{X: x, Y: y}
	err = s.onScene(req, func() error {
		w, err := s.window(req)
		if err != nil {
			return err
		}
		n, ok := w.HitTest(x, y)
		if !ok {
			return nil
		}
		res.Hit, res.ID, res.Name = true, n.ID(), n.Name()
		for cur, ok := n, true; ok; cur, ok = cur.Parent() {
			res.Path = append(res.Path, cur.ID())
		}
		slices.Reverse(res.Path)
		return nil
	})
	return res, err
}

func (s *Server) dotRequest(_ http.ResponseWriter, req *http.Request) (any, error) {
	var snap scene.Snapshot
	err := s.onScene(req, func() error {
		w, err := s.window(req)
		if err != nil {
			return err
		}
		snap = w.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, detailed := req.URL.Query()["detailed"]
	src := dot.ToDOT(snap, dot.Options{Detailed: detailed})
	if req.URL.Query().Get("format") == "svg" {
		svg, err := dot.RenderSVG(req.Context(), src)
		if err != nil {
			return nil, err
		}
		return rawResponse{contentType: "image/svg+xml", body: svg}, nil
	}
	return rawResponse{contentType: "text/vnd.graphviz", body: []byte(src)}, nil
}

func (s *Server) resizeRequest(_ http.ResponseWriter, req *http.Request) (any, error) {
	width, err := floatParam(req, "width")
	if err != nil {
		return nil, err
	}
	height, err := floatParam(req, "height")
	if err != nil {
		return nil, err
	}
	var info WindowInfo
	err = s.onScene(req, func() error {
		w, err := s.window(req)
		if err != nil {
			return err
		}
		if err := w.Resize(width, height); err != nil {
			return CodedError(http.StatusBadRequest, err.Error())
		}
		info = WindowInfo{Name: w.Name(), ID: w.ID().String(), Client: w.ClientSize(), Pending: w.PendingCount()}
		return nil
	})
	return info, err
}

func floatParam(req *http.Request, name string) (float64, error) {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return 0, CodedError(http.StatusBadRequest, fmt.Sprintf("missing query parameter %q", name))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, CodedError(http.StatusBadRequest, fmt.Sprintf("query parameter %q: %v", name, err))
	}
	return v, nil
}
