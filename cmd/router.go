package main

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/time/rate"

	"github.com/probe-group/finflags/internal/config"
	"github.com/probe-group/finflags/internal/ingest"
	"github.com/probe-group/finflags/internal/model"
	"github.com/probe-group/finflags/internal/rules"
)

// server bundles the evaluator and upload limits behind the HTTP surface.
type server struct {
	evaluator *rules.Evaluator
	maxBytes  int64
	limiter   *rate.Limiter
}

// newRouter builds the upload-and-view HTTP handler.
func newRouter(cfg *config.Config, evaluator *rules.Evaluator) http.Handler {
	s := &server{
		evaluator: evaluator,
		maxBytes:  cfg.Upload.MaxBytes,
		limiter:   rate.NewLimiter(rate.Limit(cfg.Upload.RatePerSecond), cfg.Upload.RateBurst),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.With(s.rateLimit).Post("/api/evaluate", s.handleEvaluateAPI)
	r.With(s.rateLimit).Post("/evaluate", s.handleEvaluateForm)

	return r
}

// rateLimit rejects upload bursts beyond the configured token bucket.
func (s *server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeJSONError(w, http.StatusTooManyRequests, "too many uploads, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := uploadPage.Execute(w, nil); err != nil {
		zap.L().Error("render upload page", zap.Error(err))
	}
}

// handleEvaluateAPI accepts a multipart upload (field "statement", JSON or
// XLSX) or a raw JSON body, and responds with the flags map. The response
// shape {"flags":{name:code}} is the sole contract consumed by callers.
func (s *server) handleEvaluateAPI(w http.ResponseWriter, r *http.Request) {
	evalID := uuid.NewString()
	w.Header().Set("X-Evaluation-ID", evalID)

	rec, err := s.recordFromRequest(r)
	if err != nil {
		zap.L().Info("statement rejected",
			zap.String("eval_id", evalID),
			zap.Error(err),
		)
		writeJSONError(w, http.StatusBadRequest, "invalid statement file")
		return
	}

	result := s.evaluator.Evaluate(rec)
	zap.L().Info("statement evaluated",
		zap.String("eval_id", evalID),
		zap.Int("entries", len(rec.Financials)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// handleEvaluateForm is the browser flow: same inputs as the API, rendered
// as an HTML result page.
func (s *server) handleEvaluateForm(w http.ResponseWriter, r *http.Request) {
	evalID := uuid.NewString()

	rec, err := s.recordFromRequest(r)
	if err != nil {
		zap.L().Info("statement rejected",
			zap.String("eval_id", evalID),
			zap.Error(err),
		)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_ = errorPage.Execute(w, map[string]string{
			"Message": "Invalid statement file. Please upload a valid JSON or XLSX statement.",
		})
		return
	}

	result := s.evaluator.Evaluate(rec)

	idx := rules.LatestStandaloneIndex(rec)
	p := message.NewPrinter(language.English)
	view := resultView{
		EvalID: evalID,
		Rows: []resultRow{
			{
				Name:  model.FlagNameTotalRevenue,
				Flag:  result.Flags[model.FlagNameTotalRevenue],
				Value: p.Sprintf("%.2f", rules.TotalRevenue(rec, idx)),
			},
			{
				Name:  model.FlagNameBorrowingToRevenue,
				Flag:  result.Flags[model.FlagNameBorrowingToRevenue],
				Value: p.Sprintf("%.4f", rules.BorrowingToRevenueRatio(rec, idx)),
			},
			{
				Name:  model.FlagNameISCR,
				Flag:  result.Flags[model.FlagNameISCR],
				Value: p.Sprintf("%.4f", rules.ISCR(rec, idx)),
			},
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := resultPage.Execute(w, view); err != nil {
		zap.L().Error("render result page", zap.Error(err))
	}
}

// recordFromRequest extracts a financial record from either a multipart
// statement upload or a raw JSON body, enforcing the upload size cap.
func (s *server) recordFromRequest(r *http.Request) (*model.FinancialRecord, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.maxBytes)

	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return ingest.DecodeRecord(r.Body)
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		return ingest.ParseXLSXRecord(data)
	}
	return ingest.DecodeRecord(bytes.NewReader(data))
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// resultView feeds the HTML result page.
type resultView struct {
	EvalID string
	Rows   []resultRow
}

type resultRow struct {
	Name  string
	Flag  model.Flag
	Value string
}

var uploadPage = template.Must(template.New("upload").Parse(`<!doctype html>
<html>
<head><title>Financial Flags</title></head>
<body>
<h1>Financial Statement Flags</h1>
<p>Upload a statement file (JSON or XLSX) to evaluate its risk flags.</p>
<form action="/evaluate" method="post" enctype="multipart/form-data">
  <input type="file" name="statement" accept=".json,.xlsx" required>
  <button type="submit">Evaluate</button>
</form>
</body>
</html>
`))

var resultPage = template.Must(template.New("result").Parse(`<!doctype html>
<html>
<head><title>Financial Flags</title></head>
<body>
<h1>Financial Flags</h1>
<table border="1" cellpadding="6">
  <tr><th>Flag</th><th>Result</th><th>Value</th></tr>
  {{range .Rows}}
  <tr><td>{{.Name}}</td><td>{{.Flag}}</td><td>{{.Value}}</td></tr>
  {{end}}
</table>
<p><small>Evaluation {{.EvalID}}</small></p>
<p><a href="/">Evaluate another statement</a></p>
</body>
</html>
`))

var errorPage = template.Must(template.New("error").Parse(`<!doctype html>
<html>
<head><title>Financial Flags</title></head>
<body>
<h1>Upload failed</h1>
<p>{{.Message}}</p>
<p><a href="/">Back</a></p>
</body>
</html>
`))
