package engine

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"Threads/internal/calc"
	"Threads/internal/drill"
	"Threads/internal/registry"
	"Threads/internal/thread"

	"github.com/gorilla/mux"
)

type Handler struct {
	// Defaults apply to requests that leave options unset.
	Defaults calc.Options
}

func (h *Handler) Standards(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(registry.All())
}

func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	k, err := registry.ParseKind(mux.Vars(r)["standard"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(registry.Presets(k))
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Options = req.Options.Merge(h.Defaults)
	res, err := Calculate(req)
	if err != nil {
		http.Error(w, err.Error(), calc.StatusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Table(w http.ResponseWriter, r *http.Request) {
	k, err := registry.ParseKind(mux.Vars(r)["standard"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	opts, err := OptionsFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Table(k, opts.Merge(h.Defaults)))
}

// BatchInput lists sizes the way preset tables do.
type BatchInput struct {
	Items []struct {
		Size   string  `json:"size"`
		TPI    float64 `json:"tpi"`
		Series string  `json:"series"`
	} `json:"items"`
	calc.Options
}

// Batch calculates a posted list of sizes. Rows that fail keep their place
// with an error instead of failing the request.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	k, err := registry.ParseKind(mux.Vars(r)["standard"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}

	opts := input.Options.Merge(h.Defaults)
	items := make([]Item, len(input.Items))
	var presets []registry.Preset
	var slots []int
	for i, in := range input.Items {
		p, err := registry.ResolvePreset(k, in.Size, in.TPI, in.Series)
		if err != nil {
			items[i] = Item{Preset: registry.Preset{Size: in.Size, TPI: in.TPI}, Err: err, Error: err.Error()}
			continue
		}
		presets = append(presets, p)
		slots = append(slots, i)
	}
	for j, it := range Batch(k, presets, opts) {
		items[slots[j]] = it
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// OptionsFromQuery reads material, drill_sets (comma separated) and length.
func OptionsFromQuery(q url.Values) (calc.Options, error) {
	var opts calc.Options
	var err error

	if s := q.Get("material"); s != "" {
		if opts.Material, err = thread.ParseMaterial(s); err != nil {
			return calc.Options{}, err
		}
	}
	if q.Has("drill_sets") {
		sets := strings.Split(q.Get("drill_sets"), ",")
		if opts.DrillSets, err = drill.ParseKinds(sets); err != nil {
			return calc.Options{}, err
		}
	}
	if s := q.Get("length"); s != "" {
		if opts.EngagementLength, err = strconv.ParseFloat(s, 64); err != nil {
			return calc.Options{}, thread.InvalidInput("engine.options", "length", 0)
		}
		if err = opts.Validate("engine.options"); err != nil {
			return calc.Options{}, err
		}
	}
	return opts, nil
}
