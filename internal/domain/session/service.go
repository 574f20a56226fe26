package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sonoreport/sonoreport/internal/calc"
	"github.com/sonoreport/sonoreport/internal/classify"
	"github.com/sonoreport/sonoreport/internal/compose"
	"github.com/sonoreport/sonoreport/internal/exam"
	"github.com/sonoreport/sonoreport/internal/obs"
	"github.com/sonoreport/sonoreport/internal/report"
)

// Service drives exam sessions: it applies field edits, keeps derived
// values current, classifies sub-entities on demand and generates the
// report document. All computation is synchronous and in-memory; the
// only asynchronous collaborator (translation) hands its result in as a
// plain string.
type Service struct {
	store     *Store
	assembler *report.Assembler
	defaults  Defaults
	logger    zerolog.Logger
}

// Defaults are facility-wide settings applied when a request leaves the
// corresponding field blank.
type Defaults struct {
	Lang     compose.Lang
	Facility string
}

func NewService(store *Store, assembler *report.Assembler, defaults Defaults, logger zerolog.Logger) *Service {
	if defaults.Lang == "" {
		defaults.Lang = compose.LangEN
	}
	return &Service{store: store, assembler: assembler, defaults: defaults, logger: logger}
}

// Create starts an empty session for a registered exam type.
func (s *Service) Create(examType string, header report.PatientHeader, footer report.Footer) (*Session, error) {
	if _, ok := exam.Get(examType); !ok {
		return nil, fmt.Errorf("unknown exam type %q", examType)
	}
	if footer.Facility == "" {
		footer.Facility = s.defaults.Facility
	}
	now := time.Now().UTC()
	sess := &Session{
		ID:        uuid.New(),
		ExamType:  examType,
		Header:    header,
		Footer:    footer,
		Obs:       obs.New(examType),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.store.Put(sess)
	return sess, nil
}

func (s *Service) Get(id uuid.UUID) (*Session, error) {
	return s.store.Get(id)
}

func (s *Service) touch(sess *Session) {
	sess.Rev++
	sess.UpdatedAt = time.Now().UTC()
	s.store.Put(sess)
}

// SetField writes a scalar through a dot-separated path and recomputes
// every derived value the edit could have changed, within the same call.
func (s *Service) SetField(id uuid.UUID, path, value string) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	sess.Obs.Root.SetScalarAt(path, value)
	s.recomputeDerived(sess)
	s.touch(sess)
	return sess, nil
}

// SetNote writes a free-text note field.
func (s *Service) SetNote(id uuid.UUID, path, value string) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	node, key := sess.Obs.Root.Path(path, true)
	node.SetNote(key, value)
	s.touch(sess)
	return sess, nil
}

// SetItemField writes a scalar on one sub-entity, addressed by its
// stable ID, and recomputes derived values.
func (s *Service) SetItemField(id uuid.UUID, listPath string, itemID uuid.UUID, key, value string) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	node, listKey := sess.Obs.Root.Path(listPath, true)
	item := node.Item(listKey, itemID)
	if item == nil {
		return nil, fmt.Errorf("item %s not found in %q", itemID, listPath)
	}
	item.Node.SetScalar(key, value)
	s.recomputeDerived(sess)
	s.touch(sess)
	return sess, nil
}

// AddItem appends a sub-entity (lesion, segment) to a list field.
func (s *Service) AddItem(id uuid.UUID, listPath string) (*Session, *obs.Item, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, nil, err
	}
	node, listKey := sess.Obs.Root.Path(listPath, true)
	item := node.AddItem(listKey)
	s.touch(sess)
	return sess, item, nil
}

// RemoveItem deletes a sub-entity by its stable ID.
func (s *Service) RemoveItem(id uuid.UUID, listPath string, itemID uuid.UUID) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	node, listKey := sess.Obs.Root.Path(listPath, false)
	if node != nil {
		node.RemoveItem(listKey, itemID)
	}
	s.touch(sess)
	return sess, nil
}

// recomputeDerived refreshes every derived value from current raw
// inputs: lesion volumes from their three diameters and limb indices
// from their pressures. An unavailable result clears the stored field —
// a stale number must never survive an input edit.
func (s *Service) recomputeDerived(sess *Session) {
	e, ok := exam.Get(sess.ExamType)
	if !ok {
		return
	}

	if e.LesionSection != "" && len(e.DiameterKeys) == 3 {
		for _, item := range sess.Obs.Root.Items(e.LesionSection) {
			v := calc.EllipsoidVolume(
				item.Node.Scalar(e.DiameterKeys[0]),
				item.Node.Scalar(e.DiameterKeys[1]),
				item.Node.Scalar(e.DiameterKeys[2]),
			)
			if v.OK {
				item.Node.SetScalar("volume", v.String())
			} else {
				item.Node.SetScalar("volume", "")
			}
		}
	}

	for _, g := range e.IndexGroups {
		limb := sess.Obs.Root.GroupIfPresent(g.Key)
		if limb == nil {
			continue
		}
		v := calc.AnkleBrachialIndex(
			limb.Scalar(g.DorsalisPedisKey),
			limb.Scalar(g.PosteriorTibialKey),
			limb.Scalar(g.BrachialKey),
		)
		if v.OK {
			limb.SetScalar("abi", v.String())
		} else {
			limb.SetScalar("abi", "")
		}
	}
}

// ClassifyItem classifies one sub-entity of the exam's lesion section.
func (s *Service) ClassifyItem(id uuid.UUID, itemID uuid.UUID) (classify.Result, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return classify.Result{}, err
	}
	e, _ := exam.Get(sess.ExamType)
	if e.Rules == nil || e.LesionSection == "" {
		return classify.Result{}, fmt.Errorf("exam type %q has no lesion classifier", sess.ExamType)
	}
	item := sess.Obs.Root.Item(e.LesionSection, itemID)
	if item == nil {
		return classify.Result{}, fmt.Errorf("item %s not found", itemID)
	}
	return s.classifyLesion(e, item), nil
}

func (s *Service) classifyLesion(e *exam.Exam, item *obs.Item) classify.Result {
	fs := classify.FeatureSet(obs.Features(item.Node, e.FeatureKeys))
	result := classify.Classify(e.Rules, fs)
	if result.Confidence == classify.ConfidenceComplete && len(e.Rules.Sized) > 0 {
		diameters := make([]string, 0, len(e.DiameterKeys))
		for _, k := range e.DiameterKeys {
			diameters = append(diameters, item.Node.Scalar(k))
		}
		result.Recommendation = classify.RecommendSized(e.Rules, result.Category, calc.LargestDiameter(diameters...))
	}
	return result
}

// Classifications summarizes every classifiable entity of the session:
// each lesion independently, and each limb index group. Entities are
// independent; order follows creation order of the items.
func (s *Service) Classifications(sess *Session) []report.ClassificationSummary {
	e, ok := exam.Get(sess.ExamType)
	if !ok || e.Rules == nil {
		return nil
	}

	var out []report.ClassificationSummary
	if e.LesionSection != "" {
		cfg, _ := e.Section(e.LesionSection)
		for i, item := range sess.Obs.Root.Items(e.LesionSection) {
			out = append(out, report.ClassificationSummary{
				Entity: fmt.Sprintf("%s %d", cfg.ItemTitle.EN, i+1),
				Result: s.classifyLesion(e, item),
			})
		}
	}
	for _, g := range e.IndexGroups {
		limb := sess.Obs.Root.GroupIfPresent(g.Key)
		if limb == nil {
			continue
		}
		v := calc.AnkleBrachialIndex(
			limb.Scalar(g.DorsalisPedisKey),
			limb.Scalar(g.PosteriorTibialKey),
			limb.Scalar(g.BrachialKey),
		)
		out = append(out, report.ClassificationSummary{
			Entity: g.Label.EN,
			Result: classify.ClassifyIndex(e.Rules, v),
		})
	}
	return out
}

// ReportInput is the caller-supplied narrative for report generation.
// Impression and Recommendation arrive already in the target language;
// for the secondary language they come pre-translated from the external
// translation collaborator.
type ReportInput struct {
	Language       compose.Lang `json:"language"`
	Impression     string       `json:"impression"`
	Recommendation string       `json:"recommendation"`
	Images         []string     `json:"images"`
}

// GenerateReport composes every configured section and assembles the
// final document. Regenerating with an unchanged session and identical
// input is byte-identical.
func (s *Service) GenerateReport(id uuid.UUID, in ReportInput) (string, int, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return "", 0, err
	}
	e, ok := exam.Get(sess.ExamType)
	if !ok {
		return "", 0, fmt.Errorf("unknown exam type %q", sess.ExamType)
	}
	if in.Language == "" {
		in.Language = s.defaults.Lang
	}

	fragments := make([]compose.Fragment, 0, len(e.Sections))
	for _, cfg := range e.Sections {
		node := sess.Obs.Root
		if cfg.ListKey == "" {
			node = sess.Obs.Root.GroupIfPresent(cfg.Key)
		}
		fragments = append(fragments, compose.Section(cfg, node, in.Language, s.logger))
	}

	doc := s.assembler.Assemble(report.Input{
		Title:           e.Title,
		Header:          sess.Header,
		Sections:        fragments,
		Classifications: s.Classifications(sess),
		Impression:      in.Impression,
		Recommendation:  in.Recommendation,
		Images:          in.Images,
		Footer:          sess.Footer,
		Lang:            in.Language,
	})
	return doc, sess.Rev, nil
}

// ExportSnapshot serializes the session's Observation for template
// storage.
func (s *Service) ExportSnapshot(id uuid.UUID, name string) (*obs.Snapshot, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return sess.Obs.Export(name, 1, time.Now())
}

// LoadSnapshot replaces the session's Observation wholesale from a
// snapshot. The snapshot must carry a payload for the session's exam
// type; on any error the session is left untouched.
func (s *Service) LoadSnapshot(id uuid.UUID, snap *obs.Snapshot) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	loaded, err := obs.Load(snap, sess.ExamType)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	sess.Obs = loaded
	s.recomputeDerived(sess)
	s.touch(sess)
	return sess, nil
}
