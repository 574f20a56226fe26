package template

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sonoreport/sonoreport/internal/exam"
	"github.com/sonoreport/sonoreport/internal/obs"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// validatePayload checks that the payload is a loadable snapshot for the
// template's domain before anything is stored. A template that cannot
// load is worse than none.
func validatePayload(domain string, payload json.RawMessage) error {
	if _, ok := exam.Get(domain); !ok {
		return fmt.Errorf("unknown exam domain %q", domain)
	}
	var snap obs.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if _, err := obs.Load(&snap, domain); err != nil {
		return fmt.Errorf("validate payload: %w", err)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, t *Template) error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.Kind == "" {
		t.Kind = KindUser
	}
	if t.Kind != KindPreset && t.Kind != KindUser {
		return fmt.Errorf("invalid template kind %q", t.Kind)
	}
	if err := validatePayload(t.Domain, t.Payload); err != nil {
		return err
	}
	t.Version = 1
	return s.repo.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces a user template's name and payload. Presets are
// read-only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, name string, payload json.RawMessage) (*Template, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Kind == KindPreset {
		return nil, fmt.Errorf("preset template %q is read-only", t.Name)
	}
	if name != "" {
		t.Name = name
	}
	if payload != nil {
		if err := validatePayload(t.Domain, payload); err != nil {
			return nil, err
		}
		t.Payload = payload
	}
	t.Version++
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a user template. Presets are read-only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.Kind == KindPreset {
		return fmt.Errorf("preset template %q is read-only", t.Name)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, domain string, limit, offset int) ([]*Template, int, error) {
	if domain != "" {
		if _, ok := exam.Get(domain); !ok {
			return nil, 0, fmt.Errorf("unknown exam domain %q", domain)
		}
	}
	return s.repo.List(ctx, domain, limit, offset)
}

// LoadSnapshot decodes a stored template's payload into a Snapshot the
// session service can apply.
func (s *Service) LoadSnapshot(ctx context.Context, id uuid.UUID) (*obs.Snapshot, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var snap obs.Snapshot
	if err := json.Unmarshal(t.Payload, &snap); err != nil {
		return nil, fmt.Errorf("decode template %q payload: %w", t.Name, err)
	}
	return &snap, nil
}

// SeedPresets installs one empty baseline preset per registered exam
// type, skipping any domain that already has a preset.
func (s *Service) SeedPresets(ctx context.Context) (int, error) {
	seeded := 0
	for _, typ := range exam.Types() {
		existing, _, err := s.repo.List(ctx, typ, 1000, 0)
		if err != nil {
			return seeded, err
		}
		hasPreset := false
		for _, t := range existing {
			if t.Kind == KindPreset {
				hasPreset = true
				break
			}
		}
		if hasPreset {
			continue
		}

		e, _ := exam.Get(typ)
		snap, err := obs.New(typ).Export(e.Title.EN+" baseline", 1, time.Now())
		if err != nil {
			return seeded, err
		}
		payload, err := json.Marshal(snap)
		if err != nil {
			return seeded, err
		}
		t := &Template{
			Name:    e.Title.EN + " baseline",
			Domain:  typ,
			Kind:    KindPreset,
			Version: 1,
			Payload: payload,
		}
		if err := s.repo.Create(ctx, t); err != nil {
			return seeded, fmt.Errorf("seed preset for %s: %w", typ, err)
		}
		seeded++
	}
	return seeded, nil
}
