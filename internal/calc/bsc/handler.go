package bsc

import (
	"encoding/json"
	"net/http"

	"Threads/internal/calc"
)

type Input struct {
	Size float64 `json:"size"`
	TPI  float64 `json:"tpi"`
	calc.Options
}

type Handler struct {
	Defaults calc.Options
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input.Size, input.TPI, input.Options.Merge(h.Defaults))
	if err != nil {
		http.Error(w, err.Error(), calc.StatusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
