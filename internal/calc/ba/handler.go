package ba

import (
	"encoding/json"
	"net/http"

	"Threads/internal/calc"
)

type Input struct {
	Size int `json:"size"`
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
	res, ok := Calculate(input.Size, input.Options.Merge(h.Defaults))
	if !ok {
		http.Error(w, "Unknown BA size", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
