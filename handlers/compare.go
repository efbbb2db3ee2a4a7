// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/myballot/compare"
	"github.com/danielhkuo/myballot/device"
	"github.com/danielhkuo/myballot/middleware"
	"github.com/danielhkuo/myballot/models"
)

type CompareHandler struct {
	registry *device.Registry
}

func NewCompareHandler(reg *device.Registry) *CompareHandler {
	return &CompareHandler{registry: reg}
}

// Compare handles GET /compare?candidate1Id=&candidate2Id=
// candidate2Id may be omitted when the race has exactly two candidates.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	s, ok := deviceSession(h.registry, w, r)
	if !ok {
		return
	}
	id1, ok := queryInt(w, r, "candidate1Id")
	if !ok {
		return
	}
	id2, ok := queryInt(w, r, "candidate2Id")
	if !ok {
		return
	}

	lookup := func(candidateID int) ([]models.NoteEntry, error) {
		return s.Notes(r.Context(), candidateID)
	}
	cmp, err := compare.Build(h.registry.Catalog(), lookup, id1, id2)
	if err != nil {
		validationOr(w, err, "Failed to compare candidates")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, cmp)
}
