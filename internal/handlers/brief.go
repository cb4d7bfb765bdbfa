package handlers

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"photospro/internal/contextutil"
	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/view"
)

const (
	briefCacheSize = 256
	briefCacheTTL  = 15 * time.Minute
)

var (
	briefCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photospro_brief_cache_hits_total",
		Help: "Session briefs served from the rendered HTML cache.",
	})
	briefCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photospro_brief_cache_misses_total",
		Help: "Session briefs rendered from markdown.",
	})
)

// BriefHandler serves a printable planning brief for a photo session.
type BriefHandler struct {
	sessions *service.RecordService[records.PhotoSession]
	md       goldmark.Markdown
	template *template.Template
	// cache maps a digest of the brief markdown to its rendered HTML, so an
	// edited session never hits a stale entry.
	cache *expirable.LRU[string, string]
}

// briefPageData holds template data for a rendered brief.
type briefPageData struct {
	Title   string
	Status  string
	Content template.HTML
}

var briefTemplate = template.Must(template.New("brief").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | Session brief</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.6;
      color: #1f2937;
    }
    .meta {
      color: #6b7280;
      font-size: 0.9rem;
    }
    table {
      border-collapse: collapse;
      margin: 1rem 0;
    }
    td, th {
      border-bottom: 1px solid #e5e7eb;
      padding: 0.35rem 1rem 0.35rem 0;
      text-align: left;
    }
    h2 {
      margin-top: 1.75rem;
      color: #4f46e5;
    }
    @media print {
      body {
        padding: 0;
      }
    }
  </style>
</head>
<body>
  <p class="meta">Session brief &middot; {{.Status}}</p>
  <article>{{.Content}}</article>
</body>
</html>`))

// NewBriefHandler creates a new BriefHandler.
func NewBriefHandler(sessions *service.RecordService[records.PhotoSession]) *BriefHandler {
	return &BriefHandler{
		sessions: sessions,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: briefTemplate,
		cache:    expirable.NewLRU[string, string](briefCacheSize, nil, briefCacheTTL),
	}
}

// ServeHTTP renders the brief for the session at the path id as HTML. User
// text is not trusted, so raw HTML in notes is dropped.
func (h *BriefHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	session, err := h.sessions.Get(id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get session")
		return
	}

	htmlContent, err := h.render([]byte(view.SessionBrief(session)))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render brief")
		return
	}

	page := briefPageData{
		Title:   session.Title,
		Status:  string(session.Status),
		Content: template.HTML(htmlContent),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, page); err != nil {
		logger.ErrorContext(ctx, "failed to execute brief template", "id", id, "error", err)
	}
}

func (h *BriefHandler) render(content []byte) (string, error) {
	sum := sha256.Sum256(content)
	key := hex.EncodeToString(sum[:])
	if cached, ok := h.cache.Get(key); ok {
		briefCacheHits.Inc()
		return cached, nil
	}
	briefCacheMisses.Inc()

	var buf bytes.Buffer
	if err := h.md.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	out := buf.String()
	h.cache.Add(key, out)
	return out, nil
}
