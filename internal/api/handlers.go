package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	alttex "github.com/NicholaCharlton/AltTeX-Personal"
)

type equationRequest struct {
	Payload string `json:"payload"`
}

type tableRequest struct {
	Body string `json:"body"`
}

type altTextResponse struct {
	AltText         string   `json:"alt_text"`
	Annotation      string   `json:"annotation"`
	UnknownCommands []string `json:"unknown_commands"`
}

// requestRenderer returns a renderer reporting unknown commands both to the log and to the returned collector.
func (s *Server) requestRenderer() (*alttex.Renderer, *alttex.CollectReporter) {
	collect := &alttex.CollectReporter{}
	report := alttex.Reporters(collect, alttex.NewSlogReporter(s.log, s.renderer.Symbols()))
	return s.renderer.With(alttex.WithReporter(report)), collect
}

// handleEquation renders a single math payload given without delimiters.
func (s *Server) handleEquation(w http.ResponseWriter, r *http.Request) {
	var req equationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Payload) == "" {
		jsonError(w, "payload is required", http.StatusBadRequest)
		return
	}

	renderer, collect := s.requestRenderer()
	text := renderer.Equation(req.Payload)

	writeAltText(w, text, collect.Unknown())
}

// handleTable renders the body of a tabular environment.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Body) == "" {
		jsonError(w, "body is required", http.StatusBadRequest)
		return
	}

	renderer, collect := s.requestRenderer()
	text := renderer.Table(req.Body)

	writeAltText(w, text, collect.Unknown())
}

// handleDocument annotates a whole LaTeX document sent as the request body.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := alttex.Decode(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "document too large", http.StatusRequestEntityTooLarge)
			return
		}

		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	include := s.cfg.IncludePackage
	if v := r.URL.Query().Get("package"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			include = b
		}
	}

	if include {
		doc, err = alttex.IncludeTodoPackage(doc)
		if err != nil && !errors.Is(err, alttex.ErrNoDocumentBegin) {
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if err != nil {
			s.log.Debug("todonotes package not declared", "error", err)
		}
	}

	renderer, collect := s.requestRenderer()
	out := renderer.Document(doc)

	if unknown := collect.Unknown(); len(unknown) > 0 {
		w.Header().Set("X-Alttex-Unknown", strings.Join(unknown, ","))
	}

	w.Header().Set("Content-Type", "application/x-latex; charset=utf-8")
	w.Write([]byte(out))
}

// decodeRequest reads a JSON request body into v and writes the error response when it cannot.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
		return false
	}

	jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
	return false
}

func writeAltText(w http.ResponseWriter, text string, unknown []string) {
	if unknown == nil {
		unknown = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(altTextResponse{
		AltText:         text,
		Annotation:      alttex.Annotate(text),
		UnknownCommands: unknown,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
