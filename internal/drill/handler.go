package drill

import (
	"encoding/json"
	"net/http"

	"Threads/internal/thread"
)

type NearestInput struct {
	Target    float64 `json:"target"`
	Unit      string  `json:"unit"`
	DrillSets []Kind  `json:"drill_sets"`
}

type ValidateInput struct {
	// Drill is a catalog name; Size is used when it is empty.
	Drill       string          `json:"drill"`
	Size        float64         `json:"size"`
	Unit        string          `json:"unit"`
	Major       float64         `json:"major"`
	Minor       float64         `json:"minor"`
	NutMinorMax float64         `json:"nut_minor_max"`
	Material    thread.Material `json:"material"`
}

type Handler struct{}

func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	var input NearestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	unit, err := thread.ParseUnit(input.Unit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := thread.Positive("drill.nearest", map[string]float64{"target": input.Target}); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.DrillSets == nil {
		input.DrillSets = Priority
	}
	d, ok := Nearest(input.Target, unit, input.DrillSets)
	if !ok {
		http.Error(w, "no drill set enabled", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var input ValidateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	v, err := input.run()
	if err != nil {
		status := http.StatusBadRequest
		if thread.IsKind(err, thread.KindNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (in ValidateInput) run() (Validation, error) {
	unit, err := thread.ParseUnit(in.Unit)
	if err != nil {
		return Validation{}, err
	}
	size := in.Size
	if in.Drill != "" {
		d, ok := Find(in.Drill)
		if !ok {
			return Validation{}, thread.NotFound("drill.validate", "drill "+in.Drill)
		}
		size = unit.FromInches(d.Inches)
	}
	if err := thread.Positive("drill.validate", map[string]float64{
		"size":  size,
		"major": in.Major,
		"minor": in.Minor,
	}); err != nil {
		return Validation{}, err
	}
	nutMinorMax := in.NutMinorMax
	if nutMinorMax == 0 {
		nutMinorMax = in.Major
	}
	v, err := Validate(size, in.Major, in.Minor, nutMinorMax, in.Material.OrDefault())
	if err != nil {
		return Validation{}, err
	}
	v.Engagement = thread.Round6(v.Engagement)
	return v, nil
}

