package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"
)

// usdRates is the price of one USD in each currency.
var usdRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 151.5,
	"CAD": 1.36,
	"AUD": 1.52,
	"CHF": 0.9,
	"CNY": 7.23,
	"INR": 83.4,
	"PKR": 278.2,
}

type pairResponse struct {
	Result           string  `json:"result"`
	ErrorType        string  `json:"error-type,omitempty"`
	BaseCode         string  `json:"base_code,omitempty"`
	TargetCode       string  `json:"target_code,omitempty"`
	ConversionRate   float64 `json:"conversion_rate,omitempty"`
	ConversionResult float64 `json:"conversion_result"`
}

func newHandler(logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v6/{key}/pair/{from}/{to}/{amount}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("key") == "invalid" {
			writeJSON(w, http.StatusForbidden, pairResponse{Result: "error", ErrorType: "invalid-key"})
			return
		}
		from, to := r.PathValue("from"), r.PathValue("to")
		fromRate, okFrom := usdRates[from]
		toRate, okTo := usdRates[to]
		if !okFrom || !okTo {
			writeJSON(w, http.StatusNotFound, pairResponse{Result: "error", ErrorType: "unsupported-code"})
			return
		}
		amount, err := strconv.ParseFloat(r.PathValue("amount"), 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, pairResponse{Result: "error", ErrorType: "malformed-request"})
			return
		}
		rate := toRate / fromRate
		writeJSON(w, http.StatusOK, pairResponse{
			Result:           "success",
			BaseCode:         from,
			TargetCode:       to,
			ConversionRate:   rate,
			ConversionResult: amount * rate,
		})
	})
	return accessLog(logger, mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
