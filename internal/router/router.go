package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/basedalex/yadro-kata/internal/db"
	"github.com/basedalex/yadro-kata/internal/metrics"
	"github.com/basedalex/yadro-kata/pkg/config"
	"github.com/basedalex/yadro-kata/pkg/dictionary"
	"github.com/basedalex/yadro-kata/pkg/stemmer"
	"github.com/basedalex/yadro-kata/pkg/words"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=router.go -destination=mocks/mock.go

type HTTPResponse struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type dictionaryService interface {
	LoadDictionary(ctx context.Context) (map[string]string, error)
	SaveWords(ctx context.Context, entries map[string]string) error
	DeleteWord(ctx context.Context, word string) error
	LookupWord(ctx context.Context, word string) (string, bool, error)
	GetUserByLogin(ctx context.Context, login string) (db.User, error)
	GetUserPasswordByLogin(ctx context.Context, login string) (string, error)
}

type ctxKey string

const roleKey ctxKey = "role"

const maxTextLen = 1 << 16

type Handler struct {
	limiter     ratelimit.Limiter
	concurrency chan struct{}
	service     dictionaryService
	cfg         *config.Config
	dict        *dictionary.Memory
	stemmer     *stemmer.Cached
}

func NewHandler(cfg *config.Config, service dictionaryService, dict *dictionary.Memory, stem *stemmer.Cached) *Handler {
	limiter := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		limiter = ratelimit.New(cfg.RateLimit)
	}

	return &Handler{
		limiter:     limiter,
		concurrency: make(chan struct{}, max(cfg.ConcurrencyLimit, 1)),
		cfg:         cfg,
		service:     service,
		dict:        dict,
		stemmer:     stem,
	}
}

func NewServer(ctx context.Context, cfg *config.Config, h *Handler) error {
	srv := &http.Server{
		Addr:              ":" + cfg.SrvPort,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 3 * time.Second,
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)

	go func() {
		<-ctx.Done()

		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}
	}()

	log.WithField("port", cfg.SrvPort).Info("server started")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error with the server: %w", err)
	}

	return nil
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("GET /stem", h.getStem)
	mux.HandleFunc("GET /stems", h.getStems)

	mux.HandleFunc("GET /words", h.lookupWord)
	mux.Handle("POST /words", h.Guard()(checkRole(http.HandlerFunc(h.addWords), "admin")))
	mux.Handle("DELETE /words", h.Guard()(checkRole(http.HandlerFunc(h.deleteWord), "admin")))
	mux.Handle("POST /reload", h.Guard()(checkRole(http.HandlerFunc(h.reload), "admin")))

	mux.Handle("GET /metrics", promhttp.Handler())

	return instrument(mux)
}

// Reload replaces the in-memory dictionary with the stored one and drops
// cached stems.
func (h *Handler) Reload(ctx context.Context) error {
	entries, err := h.service.LoadDictionary(ctx)
	if err != nil {
		metrics.DictionaryReloads.WithLabelValues("error").Inc()
		return fmt.Errorf("error loading dictionary: %w", err)
	}

	if err := h.dict.Replace(entries); err != nil {
		metrics.DictionaryReloads.WithLabelValues("error").Inc()
		return fmt.Errorf("error replacing dictionary: %w", err)
	}
	h.stemmer.Purge()

	metrics.DictionaryReloads.WithLabelValues("ok").Inc()
	metrics.DictionaryWords.Set(float64(h.dict.Count()))
	log.WithField("words", len(entries)).Info("dictionary reloaded")

	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

const unmatchedRoute = "unmatched"

// routeLabel names the mux pattern serving r, so metric cardinality is bounded
// by the route table rather than by client paths.
func routeLabel(mux *http.ServeMux, r *http.Request) string {
	if _, pattern := mux.Handler(r); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

func instrument(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		route := routeLabel(mux, r)

		mux.ServeHTTP(rec, r)

		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
	})
}

func checkRole(next http.Handler, role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userRole, _ := r.Context().Value(roleKey).(string)
		if userRole != role {
			writeErrResponse(w, http.StatusForbidden, fmt.Errorf("invalid role"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

func (h *Handler) Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("token")
			if tokenString == "" {
				writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("missing token"))
				return
			}

			token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				writeErrResponse(w, http.StatusUnauthorized, err)
				return
			}

			c, ok := token.Claims.(*claims)
			if !ok || !token.Valid {
				writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid token"))
				return
			}

			user, err := h.service.GetUserByLogin(r.Context(), c.Login)
			if err != nil {
				writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
				return
			}
			log.WithField("login", user.Login).Debug("request authorized")

			ctxWithValue := context.WithValue(r.Context(), roleKey, user.Role)
			next.ServeHTTP(w, r.WithContext(ctxWithValue))
		})
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	storedHash, err := h.service.GetUserPasswordByLogin(r.Context(), creds.Login)
	if err != nil {
		writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(creds.Password)); err != nil {
		writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Login: creds.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(h.cfg.TokenMaxTime))),
		},
	})

	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, map[string]string{"token": tokenString})
}

type stemResponse struct {
	Word             string `json:"word"`
	Stem             string `json:"stem"`
	InvalidAffixPair bool   `json:"invalid_affix_pair"`
}

func (h *Handler) getStem(w http.ResponseWriter, r *http.Request) {
	h.limiter.Take()
	h.concurrency <- struct{}{}
	defer func() {
		<-h.concurrency
	}()

	word := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no word to stem"))
		return
	}
	if !isWord(word) {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("word must contain only latin letters"))
		return
	}

	writeOkResponse(w, http.StatusOK, stemResponse{
		Word:             word,
		Stem:             h.stemmer.Stem(word),
		InvalidAffixPair: stemmer.ContainsInvalidAffixPair(word),
	})
}

func (h *Handler) getStems(w http.ResponseWriter, r *http.Request) {
	h.limiter.Take()
	h.concurrency <- struct{}{}
	defer func() {
		<-h.concurrency
	}()

	text := r.URL.Query().Get("text")
	if len(text) > maxTextLen {
		writeErrResponse(w, http.StatusRequestEntityTooLarge, fmt.Errorf("text is too long"))
		return
	}

	stems, err := words.Steminator(text, h.stemmer)
	if err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	writeOkResponse(w, http.StatusOK, stems)
}

// lookupWord reports the stored dictionary entry, which may be newer than the
// in-memory copy until the next reload.
func (h *Handler) lookupWord(w http.ResponseWriter, r *http.Request) {
	word := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no word to look up"))
		return
	}

	stem, ok, err := h.service.LookupWord(r.Context(), word)
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		writeErrResponse(w, http.StatusNotFound, db.ErrWordNotFound)
		return
	}

	writeOkResponse(w, http.StatusOK, map[string]string{"word": word, "stem": stem})
}

func (h *Handler) addWords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Words map[string]string `json:"words"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Words) == 0 {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no words to add"))
		return
	}

	entries, err := dictionary.Normalize(req.Words)
	if err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}
	for word, stem := range entries {
		if !isWord(word) || !isWord(stem) {
			writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("invalid entry %q: %q", word, stem))
			return
		}
	}

	if err := h.service.SaveWords(r.Context(), entries); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	if err := h.dict.AddWords(entries); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.stemmer.Purge()
	metrics.DictionaryWords.Set(float64(h.dict.Count()))

	writeOkResponse(w, http.StatusCreated, map[string]int{"added": len(entries)})
}

func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	word := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no word to delete"))
		return
	}

	err := h.service.DeleteWord(r.Context(), word)
	if errors.Is(err, db.ErrWordNotFound) {
		writeErrResponse(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	h.dict.Remove(word)
	h.stemmer.Purge()
	metrics.DictionaryWords.Set(float64(h.dict.Count()))

	writeOkResponse(w, http.StatusOK, map[string]string{"deleted": word})
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.Reload(r.Context()); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}
	writeOkResponse(w, http.StatusOK, map[string]int{"words": h.dict.Count()})
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func writeOkResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Infof("successful request with statusCode %d and data type %T", statusCode, data)
	if data != nil {
		err := json.NewEncoder(w).Encode(HTTPResponse{Data: data})
		if err != nil {
			log.Error(err)
		}
	}
}

func writeErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	log.Error(err)

	jsonErr := json.NewEncoder(w).Encode(HTTPResponse{Error: err.Error()})
	if jsonErr != nil {
		log.Error(jsonErr)
	}
}
