// Package repository provides the tour data source backing the catalog
// cache. The catalog ships embedded in the binary; an on-disk override
// exists for fixture catalogs.
package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/traveltours/traveltours-api/internal/models"
	"github.com/traveltours/traveltours-api/pkg/slug"
)

//go:embed tours.json
var embeddedTours []byte

// StaticTourSource loads the fixed tour catalog. Loading happens once at
// startup; the returned records are treated as immutable from then on.
type StaticTourSource struct {
	dataPath string
	validate *validator.Validate
}

// NewStaticTourSource creates a tour source. dataPath overrides the embedded
// dataset when non-empty.
func NewStaticTourSource(dataPath string) *StaticTourSource {
	v := validator.New()

	// Dataset-level slug rule, same shape the public router expects.
	_ = v.RegisterValidation("tourslug", func(fl validator.FieldLevel) bool {
		return slug.IsValid(fl.Field().String())
	})

	return &StaticTourSource{
		dataPath: dataPath,
		validate: v,
	}
}

// LoadTours decodes and validates the catalog. Every record must satisfy the
// tour schema, and ids and slugs must be pairwise distinct; a bad dataset is
// a deployment error and fails startup.
func (s *StaticTourSource) LoadTours(_ context.Context) ([]*models.Tour, error) {
	raw := embeddedTours
	if s.dataPath != "" {
		fileRaw, err := os.ReadFile(s.dataPath)
		if err != nil {
			return nil, fmt.Errorf("read tour dataset %s: %w", s.dataPath, err)
		}
		raw = fileRaw
	}

	var tours []*models.Tour
	if err := json.Unmarshal(raw, &tours); err != nil {
		return nil, fmt.Errorf("decode tour dataset: %w", err)
	}
	if len(tours) == 0 {
		return nil, fmt.Errorf("tour dataset is empty")
	}

	seenIDs := make(map[string]bool, len(tours))
	seenSlugs := make(map[string]bool, len(tours))
	for i, t := range tours {
		if err := s.validate.Struct(t); err != nil {
			return nil, fmt.Errorf("tour dataset record %d (%s): %w", i, t.Slug, err)
		}
		if seenIDs[t.ID] {
			return nil, fmt.Errorf("tour dataset record %d: duplicate id %q", i, t.ID)
		}
		if seenSlugs[t.Slug] {
			return nil, fmt.Errorf("tour dataset record %d: duplicate slug %q", i, t.Slug)
		}
		seenIDs[t.ID] = true
		seenSlugs[t.Slug] = true
	}

	return tours, nil
}
