package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	payloadValidatorOnce sync.Once
	payloadValidator     *validator.Validate
)

// payload mirrors the subset of the upstream JSON document we consume.
type payload struct {
	ID      uint32         `json:"id" validate:"required"`
	Name    string         `json:"name" validate:"required"`
	Sprites *spritesRecord `json:"sprites" validate:"required"`
	Types   []typeSlot     `json:"types" validate:"required,dive"`
	Stats   []statRecord   `json:"stats" validate:"required,dive"`
}

type spritesRecord struct {
	FrontDefault *string       `json:"front_default"`
	Other        *otherSprites `json:"other"`
}

type otherSprites struct {
	OfficialArtwork *artwork `json:"official-artwork"`
}

type artwork struct {
	FrontDefault *string `json:"front_default"`
}

type typeSlot struct {
	Slot int           `json:"slot" validate:"gte=1"`
	Type namedResource `json:"type"`
}

type statRecord struct {
	BaseStat int           `json:"base_stat" validate:"gte=0"`
	Stat     namedResource `json:"stat"`
}

type namedResource struct {
	Name string `json:"name" validate:"required"`
}

func validatePayload(p *payload) error {
	payloadValidatorOnce.Do(func() {
		payloadValidator = validator.New()
	})

	if err := payloadValidator.Struct(p); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			fe := ves[0]
			return fmt.Errorf("field %s failed validation for tag '%s'", strings.ToLower(fe.StructNamespace()), fe.Tag())
		}
		return err
	}
	return nil
}

// artworkURL prefers the official artwork and falls back to the default sprite.
func (s *spritesRecord) artworkURL() string {
	if s == nil {
		return ""
	}
	if s.Other != nil && s.Other.OfficialArtwork != nil && s.Other.OfficialArtwork.FrontDefault != nil {
		if url := *s.Other.OfficialArtwork.FrontDefault; url != "" {
			return url
		}
	}
	if s.FrontDefault != nil {
		return *s.FrontDefault
	}
	return ""
}

// toEntry normalizes the payload: categories are stable-sorted by slot.
func (p payload) toEntry() Entry {
	slots := make([]typeSlot, len(p.Types))
	copy(slots, p.Types)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Slot < slots[j].Slot
	})

	categories := make([]string, 0, len(slots))
	for _, slot := range slots {
		categories = append(categories, slot.Type.Name)
	}

	stats := make([]Stat, 0, len(p.Stats))
	for _, record := range p.Stats {
		stats = append(stats, Stat{Name: record.Stat.Name, Value: record.BaseStat})
	}

	return Entry{
		ID:         p.ID,
		Name:       p.Name,
		ImageURL:   p.Sprites.artworkURL(),
		Categories: categories,
		Stats:      stats,
	}
}
