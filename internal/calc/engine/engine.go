// Package engine dispatches a calculation to the engine of its standard and
// runs whole preset tables.
package engine

import (
	"math"
	"sync"

	"Threads/internal/calc"
	"Threads/internal/calc/ba"
	"Threads/internal/calc/bsb"
	"Threads/internal/calc/bsc"
	"Threads/internal/calc/me"
	"Threads/internal/calc/whitworth"
	"Threads/internal/registry"
	"Threads/internal/thread"
)

// Request is one thread to calculate. Size is the nominal diameter in the
// standard's unit, or the BA number for BA.
type Request struct {
	Standard    registry.Kind `json:"standard"`
	Designation string        `json:"designation,omitempty"`
	Size        float64       `json:"size"`
	TPI         float64       `json:"tpi"`
	calc.Options
}

// Calculate runs req through its standard. A BA number outside the table is
// reported as a not_found error; a BSB request without TPI uses 26.
func Calculate(req Request) (*calc.Result, error) {
	k, err := registry.ParseKind(string(req.Standard))
	if err != nil {
		return nil, err
	}
	switch k {
	case registry.Whitworth:
		return whitworth.Calculate(req.Size, req.TPI, req.Options)
	case registry.ME:
		return me.Calculate(req.Size, req.TPI, req.Options)
	case registry.BSC:
		return bsc.Calculate(req.Size, req.TPI, req.Options)
	case registry.BSB:
		tpi := req.TPI
		if tpi == 0 {
			tpi = bsb.TPI
		}
		return bsb.Calculate(req.Size, tpi, req.Options)
	case registry.BA:
		n := int(req.Size)
		if float64(n) != req.Size || math.IsNaN(req.Size) {
			return nil, thread.NotFound("engine.calculate", "BA size")
		}
		res, ok := ba.Calculate(n, req.Options)
		if !ok {
			return nil, thread.NotFound("engine.calculate", "BA size")
		}
		return res, nil
	}
	return nil, thread.NotFound("engine.calculate", "standard "+string(k))
}

// FromPreset builds the request for a preset row.
func FromPreset(k registry.Kind, p registry.Preset, opts calc.Options) (Request, error) {
	req := Request{
		Standard:    k,
		Designation: p.Designation,
		Size:        p.Nominal,
		TPI:         p.TPI,
		Options:     opts,
	}
	if k == registry.BA {
		n, err := registry.BANumber(p.Size)
		if err != nil {
			return Request{}, err
		}
		req.Size = float64(n)
	}
	return req, nil
}

// Item is one row of a batch. Exactly one of Result and Err is set.
type Item struct {
	Preset registry.Preset `json:"preset"`
	Result *calc.Result    `json:"result,omitempty"`
	Err    error           `json:"-"`
	Error  string          `json:"error,omitempty"`
}

// Batch calculates every preset concurrently. Items keep the preset order and
// a failing row never affects the others.
func Batch(k registry.Kind, presets []registry.Preset, opts calc.Options) []Item {
	items := make([]Item, len(presets))
	var wg sync.WaitGroup
	for i, p := range presets {
		wg.Add(1)
		go func(i int, p registry.Preset) {
			defer wg.Done()
			item := Item{Preset: p}
			req, err := FromPreset(k, p, opts)
			if err == nil {
				item.Result, err = Calculate(req)
			}
			if err != nil {
				item.Err = err
				item.Error = err.Error()
			}
			items[i] = item
		}(i, p)
	}
	wg.Wait()
	return items
}

// Table runs the registry presets of k.
func Table(k registry.Kind, opts calc.Options) []Item {
	return Batch(k, registry.Presets(k), opts)
}
