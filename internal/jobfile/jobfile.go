// Package jobfile loads batches of winding calculations from JSON or YAML
// files.
//
// Example YAML file:
//
//	name: Drum DT-800
//	jobs:
//	  - name: PE 20 on 500 core
//	    mode: coil-length
//	    pattern: bb1
//	    pipe_diameter: 20
//	    inner_diameter: 500
//	    outer_diameter: 800
//	    bundle_width: 2000
//	  - name: 1.2 km of PE 20
//	    mode: end-position
//	    pattern: bb0.5
//	    pipe_diameter: 20
//	    inner_diameter: 500
//	    bundle_width: 2000
//	    pipe_length: 1200
package jobfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"gopkg.in/yaml.v3"
)

// File is a named collection of jobs
type File struct {
	Name string `json:"name" yaml:"name"`
	Jobs []Job  `json:"jobs" yaml:"jobs"`
}

// Job is one winding calculation as written in a job file.
// Lengths are in millimetres except PipeLength (metres).
type Job struct {
	Name          string  `json:"name" yaml:"name"`
	Mode          string  `json:"mode" yaml:"mode"`       // coil-length (default) or end-position
	Pattern       string  `json:"pattern" yaml:"pattern"` // uneven/bb1 (default) or offset/bb0.5
	PipeDiameter  float64 `json:"pipe_diameter" yaml:"pipe_diameter"`
	InnerDiameter float64 `json:"inner_diameter" yaml:"inner_diameter"`
	OuterDiameter float64 `json:"outer_diameter,omitempty" yaml:"outer_diameter,omitempty"`
	BundleWidth   float64 `json:"bundle_width" yaml:"bundle_width"`
	PipeLength    float64 `json:"pipe_length,omitempty" yaml:"pipe_length,omitempty"`
}

// Load reads a job file. The format is chosen from the extension:
// .yaml/.yml for YAML, anything else is parsed as JSON.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("%s: no jobs defined", path)
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job %d", i+1)
		}
	}

	return &f, nil
}

// Request converts the job into an engine request. Numeric validation is
// left to the engine; only the mode and pattern names are checked here.
func (j Job) Request(defaultPattern winding.Pattern) (winding.Request, error) {
	mode, err := ParseMode(j.Mode)
	if err != nil {
		return winding.Request{}, err
	}

	pattern := defaultPattern
	if j.Pattern != "" {
		pattern, err = winding.ParsePattern(j.Pattern)
		if err != nil {
			return winding.Request{}, err
		}
	}

	return winding.Request{
		PipeDiameter:  j.PipeDiameter,
		InnerDiameter: j.InnerDiameter,
		OuterDiameter: j.OuterDiameter,
		BundleWidth:   j.BundleWidth,
		PipeLength:    j.PipeLength,
		Pattern:       pattern,
		Mode:          mode,
	}, nil
}

// ParseMode converts a job file mode name. An empty name means coil-length.
func ParseMode(s string) (winding.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "coil-length", "coil_length", "length":
		return winding.CoilLength, nil
	case "end-position", "end_position", "position":
		return winding.EndPosition, nil
	}
	return 0, fmt.Errorf("unknown mode %q (use coil-length or end-position)", s)
}
