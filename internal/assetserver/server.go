// Package assetserver serves the quiz images under the configured base path
// so resolved references can be opened in a browser.
package assetserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/assets"
	"github.com/abhisek/pmquiz/internal/bank"
)

// Config holds the server's collaborators.
type Config struct {
	// Dir is the directory that holds the files referenced by the bank.
	Dir string
	// BaseURL is the configured asset base. Only its path is used.
	BaseURL string
	Bank    *bank.Bank
	Log     *zap.Logger
}

// Asset is one image reference from the bank.
type Asset struct {
	Question int    `json:"question"`
	Ref      string `json:"ref"`
	URL      string `json:"url"`
	Present  bool   `json:"present"`
}

// BasePath returns the path component of baseURL with a trailing slash.
func BasePath(baseURL string) string {
	p := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		p = u.Path
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// NewRouter builds the asset preview handler.
func NewRouter(cfg Config) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	base := BasePath(cfg.BaseURL)
	resolver := assets.New(base)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	r.Get("/manifest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Manifest(cfg.Bank, cfg.Dir, resolver))
	})

	files := http.StripPrefix(base, http.FileServer(http.Dir(cfg.Dir)))
	r.Handle(base+"*", files)

	return r
}

// Manifest lists every image the bank references and whether dir holds it.
func Manifest(b *bank.Bank, dir string, resolver assets.Resolver) []Asset {
	var out []Asset
	add := func(id int, ref string) {
		if ref == "" {
			return
		}
		out = append(out, Asset{
			Question: id,
			Ref:      ref,
			URL:      resolver.Resolve(ref),
			Present:  exists(dir, ref),
		})
	}
	for _, q := range b.All() {
		switch {
		case q.Kind == bank.KindMultipleChoice && q.MultipleChoice != nil:
			add(q.ID, q.MultipleChoice.Image)
		case q.Kind == bank.KindMatching && q.Matching != nil:
			add(q.ID, q.Matching.Image)
		case q.Kind == bank.KindImageMatching && q.ImageMatching != nil:
			for _, img := range q.ImageMatching.Images {
				add(q.ID, img.Src)
			}
		}
	}
	return out
}

func exists(dir, ref string) bool {
	clean := path.Clean("/" + ref)
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
	return err == nil
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("asset request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
