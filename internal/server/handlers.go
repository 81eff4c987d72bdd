package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/crimescope/crimescope/internal/dataset"
	"github.com/crimescope/crimescope/internal/explore"
	"github.com/crimescope/crimescope/internal/report"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg, Code: status})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "data_dir": s.cfg.DataDir})
}

func (s *Server) handleDatasets(w http.ResponseWriter, r *http.Request) {
	files, err := dataset.ListFiles(s.cfg.DataDir)
	if err != nil {
		if errors.Is(err, dataset.ErrNoDatasets) {
			respondError(w, http.StatusNotFound, report.NoticeNoDatasets)
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"datasets": files})
}

// openDataset resolves the file query parameter against the data directory
// and runs the full load pipeline. Path separators are rejected so the
// server stays read-only over its one directory.
func (s *Server) openDataset(r *http.Request) (*dataset.Table, string, error) {
	file := r.URL.Query().Get("file")
	if file == "" || file != filepath.Base(file) {
		return nil, "", errBadFile
	}
	t, err := dataset.Open(filepath.Join(s.cfg.DataDir, file))
	if err != nil {
		return nil, "", err
	}
	return t, file, nil
}

var errBadFile = errors.New("missing or invalid 'file' parameter")

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	t, _, err := s.openDataset(r)
	if err != nil {
		if errors.Is(err, errBadFile) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	state := r.URL.Query().Get("state")
	opts := explore.OptionsWithPreferences(t, state, s.cfg.DefaultCrimes)
	if state == "" && len(opts.States) > 0 {
		opts = explore.OptionsWithPreferences(t, opts.States[0], s.cfg.DefaultCrimes)
	}
	respondJSON(w, http.StatusOK, opts)
}

type reportResponse struct {
	Selection explore.Selection   `json:"selection"`
	Columns   []string            `json:"columns"`
	Rows      [][]string          `json:"rows"`
	Totals    []report.CrimeTotal `json:"totals"`
	Ranking   []report.RankEntry  `json:"ranking"`
	Trend     []report.TrendPoint `json:"trend"`
	Notices   map[string]string   `json:"notices"`
}

// selectionFrom builds the per-request selection tuple, filling unset
// fields with the dashboard defaults.
func (s *Server) selectionFrom(r *http.Request, t *dataset.Table, file string) explore.Selection {
	q := r.URL.Query()
	sel := explore.NewSelection(file)
	sel.State = q.Get("state")
	sel.District = q.Get("district")
	sel.Year = q.Get("year")
	if crimes := q.Get("crimes"); crimes != "" {
		for _, c := range strings.Split(crimes, ",") {
			if c = strings.TrimSpace(c); c != "" {
				sel.Crimes = append(sel.Crimes, strings.ToUpper(c))
			}
		}
	}
	explore.ApplyDefaults(t, &sel, s.cfg.DefaultCrimes)
	return sel
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	t, file, err := s.openDataset(r)
	if err != nil {
		if errors.Is(err, errBadFile) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sel := s.selectionFrom(r, t, file)

	resp := reportResponse{
		Selection: sel,
		Columns:   sel.Crimes,
		Notices:   map[string]string{},
	}
	rows := explore.Filter(t, sel)
	if len(rows) > 0 && len(sel.Crimes) > 0 {
		for _, row := range rows {
			cells := make([]string, 0, len(sel.Crimes))
			for _, c := range sel.Crimes {
				cells = append(cells, t.Cell(row, c))
			}
			resp.Rows = append(resp.Rows, cells)
		}
		resp.Totals = report.CrimeTotals(t, rows, sel.Crimes)
		if len(report.PieSlices(resp.Totals)) == 0 {
			resp.Notices["pie"] = report.NoticeNoPieData
		}
	} else {
		resp.Notices["table"] = report.NoticeNoData
		resp.Notices["pie"] = report.NoticeNoData
	}

	if report.HasTotalColumn(t) {
		resp.Ranking = report.TopStates(t, s.cfg.TopN)
		if len(resp.Ranking) == 0 {
			resp.Notices["ranking"] = report.NoticeNoRanking
		}
		resp.Trend = report.Trend(t, sel.State)
		if len(resp.Trend) == 0 {
			resp.Notices["trend"] = report.NoticeNoTrend
		}
	} else {
		resp.Notices["ranking"] = report.NoticeNoTotalIPC
		resp.Notices["trend"] = report.NoticeNoTotalIPC
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	t, file, err := s.openDataset(r)
	if err != nil {
		if errors.Is(err, errBadFile) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sel := s.selectionFrom(r, t, file)
	opt := report.ChartOptions{Width: s.cfg.ChartWidth, Height: s.cfg.ChartHeight}

	var buf bytes.Buffer
	switch mux.Vars(r)["kind"] {
	case "pie":
		rows := explore.Filter(t, sel)
		if len(rows) == 0 || len(sel.Crimes) == 0 {
			respondError(w, http.StatusNotFound, report.NoticeNoData)
			return
		}
		slices := report.PieSlices(report.CrimeTotals(t, rows, sel.Crimes))
		if len(slices) == 0 {
			respondError(w, http.StatusNotFound, report.NoticeNoPieData)
			return
		}
		err = report.RenderPie(&buf, slices, opt)
	case "top":
		if !report.HasTotalColumn(t) {
			respondError(w, http.StatusNotFound, report.NoticeNoTotalIPC)
			return
		}
		ranks := report.TopStates(t, s.cfg.TopN)
		if len(ranks) == 0 {
			respondError(w, http.StatusNotFound, report.NoticeNoRanking)
			return
		}
		err = report.RenderTopStates(&buf, ranks, opt)
	case "trend":
		if !report.HasTotalColumn(t) {
			respondError(w, http.StatusNotFound, report.NoticeNoTotalIPC)
			return
		}
		points := report.Trend(t, sel.State)
		if len(points) == 0 {
			respondError(w, http.StatusNotFound, report.NoticeNoTrend)
			return
		}
		err = report.RenderTrend(&buf, sel.State, points, opt)
	default:
		respondError(w, http.StatusNotFound, "unknown chart kind")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
