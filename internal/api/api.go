// Package api serves the beam solver over HTTP.
//
//	POST /api/analyze     beam case JSON -> end values, extremes, sections
//	POST /api/boundary    one load       -> A-end conditions and B-end values
//	POST /api/report      beam case JSON -> PDF calculation sheet
//	GET  /api/restraints  the ten valid restraint codes
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexiusacademia/goroark/internal/beam"
	"github.com/alexiusacademia/goroark/internal/nscp"
	"github.com/alexiusacademia/goroark/internal/report"
	"github.com/alexiusacademia/goroark/internal/roark"
	"github.com/gorilla/mux"
)

// maxBody caps request bodies.
const maxBody = 1 << 20

// NewRouter builds the API routes. A nil limiter disables rate limiting.
func NewRouter(limiter *IPRateLimiter) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	if limiter != nil {
		api.Use(limiter.LimitMiddleware)
	}

	h := &Handler{}
	api.HandleFunc("/analyze", h.Analyze).Methods("POST")
	api.HandleFunc("/boundary", h.Boundary).Methods("POST")
	api.HandleFunc("/report", h.Report).Methods("POST")
	api.HandleFunc("/restraints", h.Restraints).Methods("GET")
	return r
}

// Handler implements the API endpoints.
type Handler struct{}

// AnalyzeRequest is a beam case plus an optional NSCP combination ID
// ("1".."7", or "S" for service loads).
type AnalyzeRequest struct {
	beam.Case
	Combination string `json:"combination,omitempty"`
	Project     string `json:"project,omitempty"`
	Author      string `json:"author,omitempty"`
}

// Reactions are the summed end values at both ends.
type Reactions struct {
	Ra     float64 `json:"ra"`
	Ma     float64 `json:"ma"`
	ThetaA float64 `json:"theta_a"`
	YA     float64 `json:"y_a"`
	Rb     float64 `json:"rb"`
	Mb     float64 `json:"mb"`
	ThetaB float64 `json:"theta_b"`
	YB     float64 `json:"y_b"`
}

// Extreme is the range of one quantity along the beam.
type Extreme struct {
	Max  float64 `json:"max"`
	XMax float64 `json:"x_max"`
	Min  float64 `json:"min"`
	XMin float64 `json:"x_min"`
}

// AnalyzeResponse is the result of POST /api/analyze.
type AnalyzeResponse struct {
	Name        string             `json:"name,omitempty"`
	Restraint   string             `json:"restraint"`
	Code        int                `json:"code"`
	Reference   string             `json:"reference"`
	Combination string             `json:"combination,omitempty"`
	Reactions   Reactions          `json:"reactions"`
	Extremes    map[string]Extreme `json:"extremes"`
	Sections    []beam.Section     `json:"sections"`
}

// BoundaryRequest is a single point load on a beam.
type BoundaryRequest struct {
	Restraint string  `json:"restraint"`
	P         float64 `json:"p"`
	A         float64 `json:"a"`
	E         float64 `json:"e"`
	I         float64 `json:"i"`
	Length    float64 `json:"length"`
}

// BoundaryResponse is the result of POST /api/boundary.
type BoundaryResponse struct {
	Restraint string `json:"restraint"`
	Code      int    `json:"code"`
	Reference string `json:"reference"`
	roark.BoundaryConditions
	Rb   float64        `json:"rb"`
	EndB roark.Response `json:"end_b"`
}

// Restraint is one entry of GET /api/restraints.
type Restraint struct {
	Number    int    `json:"number"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	Reference string `json:"reference"`
	Mirror    bool   `json:"mirror"`
}

// Analyze solves a beam case.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decode(w, r, &req) {
		return
	}
	b, combo, err := req.beam()
	if err != nil {
		writeError(w, err)
		return
	}
	secs, err := b.Analyze()
	if err != nil {
		writeError(w, err)
		return
	}
	rx, err := b.Reactions()
	if err != nil {
		writeError(w, err)
		return
	}

	ex := beam.FindExtremes(secs)
	writeJSON(w, AnalyzeResponse{
		Name:        b.Name,
		Restraint:   b.Code.String(),
		Code:        b.Code.Int(),
		Reference:   b.Code.Reference(),
		Combination: combo,
		Reactions:   Reactions(rx),
		Extremes: map[string]Extreme{
			"shear":      Extreme(ex.Shear),
			"moment":     Extreme(ex.Moment),
			"slope":      Extreme(ex.Slope),
			"deflection": Extreme(ex.Deflection),
		},
		Sections: secs,
	})
}

// Boundary resolves the A-end conditions of one load.
func (h *Handler) Boundary(w http.ResponseWriter, r *http.Request) {
	var req BoundaryRequest
	if !decode(w, r, &req) {
		return
	}
	code, err := roark.ParseCode(req.Restraint)
	if err != nil {
		writeError(w, err)
		return
	}
	bc, err := roark.Resolve(code, req.P, req.E, req.I, req.Length, req.A)
	if err != nil {
		writeError(w, err)
		return
	}
	rb, end := bc.EndB(req.P, req.E, req.I, req.Length, req.A)
	writeJSON(w, BoundaryResponse{
		Restraint:          code.String(),
		Code:               code.Int(),
		Reference:          code.Reference(),
		BoundaryConditions: bc,
		Rb:                 rb,
		EndB:               end,
	})
}

// Report renders a beam case as a PDF calculation sheet.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decode(w, r, &req) {
		return
	}
	b, combo, err := req.beam()
	if err != nil {
		writeError(w, err)
		return
	}
	secs, err := b.Analyze()
	if err != nil {
		writeError(w, err)
		return
	}
	rx, err := b.Reactions()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam.pdf\"")
	sheet := report.Sheet{
		Project:   req.Project,
		Author:    req.Author,
		Combo:     combo,
		Beam:      b,
		Sections:  secs,
		Reactions: rx,
	}
	if err := report.Write(w, sheet); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Restraints lists the valid restraint codes.
func (h *Handler) Restraints(w http.ResponseWriter, r *http.Request) {
	out := make([]Restraint, len(roark.Cases))
	for i, c := range roark.Cases {
		out[i] = Restraint{
			Number:    c.Number,
			Code:      c.Code.Int(),
			Name:      c.Code.String(),
			Reference: c.Code.Reference(),
			Mirror:    c.Mirror,
		}
	}
	writeJSON(w, out)
}

// beam builds the requested beam, factored when a combination is given.
func (req *AnalyzeRequest) beam() (*beam.Beam, string, error) {
	b, err := req.Case.Beam()
	if err != nil {
		return nil, "", err
	}
	if req.Combination == "" {
		return b, "", nil
	}
	combo, err := nscp.FindCombination(req.Combination, nscp.LoadCombinations)
	if err != nil {
		return nil, "", err
	}
	return b.Factored(combo), combo.ID + ": " + combo.Description, nil
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError reports input that decodes but cannot be solved as 422 and
// anything else as 400.
func writeError(w http.ResponseWriter, err error) {
	var (
		restraint *roark.InvalidRestraintError
		load      *roark.InvalidLoadError
		config    *roark.InvalidConfigurationError
	)
	status := http.StatusBadRequest
	if errors.As(err, &restraint) || errors.As(err, &load) || errors.As(err, &config) {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
