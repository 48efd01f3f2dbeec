package consultation

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"sintomed/internal/catalog"
	"sintomed/internal/inference"
	"sintomed/internal/patient"
)

// ReportGenerator renders a finished consultation as a document.
// Defined here to decouple from the concrete renderer.
type ReportGenerator interface {
	Generate(c Consultation) ([]byte, error)
}

type Service interface {
	Create(ctx context.Context, name string, age int, gender string) (*Consultation, error)
	Get(ctx context.Context, id uuid.UUID) (*Consultation, error)

	AddSymptom(ctx context.Context, id uuid.UUID, symptomID string, severity, durationDays int, note string) error
	RemoveSymptom(ctx context.Context, id uuid.UUID, symptomID string) error
	ClearSymptoms(ctx context.Context, id uuid.UUID) error

	Diagnose(ctx context.Context, id uuid.UUID, maxResults int) (*Consultation, error)
	Verify(ctx context.Context, id uuid.UUID, diseaseID string) (bool, string, error)
	Patterns(ctx context.Context, id uuid.UUID) (inference.PatternAnalysis, error)

	Report(ctx context.Context, id uuid.UUID) ([]byte, error)

	Delete(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, limit int) ([]Consultation, error)
	ExportHistoryCSV(ctx context.Context, w io.Writer) error
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo      Repository
	engine    *inference.Engine
	reg       *catalog.SymptomRegistry
	reportGen ReportGenerator
	log       zerolog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*patient.Symptoms
}

func NewService(repo Repository, engine *inference.Engine, reg *catalog.SymptomRegistry, reportGen ReportGenerator, log zerolog.Logger) Service {
	return &service{
		repo:      repo,
		engine:    engine,
		reg:       reg,
		reportGen: reportGen,
		log:       log.With().Str("component", "consultation").Logger(),
		sessions:  make(map[uuid.UUID]*patient.Symptoms),
	}
}

func (s *service) Create(ctx context.Context, name string, age int, gender string) (*Consultation, error) {
	if age < 0 || age > 130 {
		return nil, errors.New("edad fuera de rango")
	}

	c := &Consultation{
		ID:          uuid.New(),
		PatientName: name,
		Age:         age,
		Gender:      gender,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, errors.Wrap(err, "save consultation")
	}

	s.mu.Lock()
	s.sessions[c.ID] = patient.NewSymptoms()
	s.mu.Unlock()

	s.log.Info().Str("consultation_id", c.ID.String()).Msg("consultation created")
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

// symptomsFor returns the live report for a session, rebuilding it from
// the stored record when the session is not in memory (after a restart).
func (s *service) symptomsFor(ctx context.Context, id uuid.UUID) (*patient.Symptoms, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ps, ok := s.sessions[id]; ok {
		return ps, nil
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ps := patient.NewSymptoms()
	for _, r := range c.Symptoms {
		ps.Add(r.SymptomID, patient.SeverityLevel(r.Severity), r.DurationDays, r.Note)
	}
	s.sessions[id] = ps
	return ps, nil
}

func (s *service) AddSymptom(ctx context.Context, id uuid.UUID, symptomID string, severity, durationDays int, note string) error {
	if severity < int(patient.SeverityLeve) || severity > int(patient.SeverityCritico) {
		return errors.Errorf("severidad inválida: %d", severity)
	}
	if durationDays < 0 {
		return errors.Errorf("duración inválida: %d", durationDays)
	}
	if !s.reg.Has(symptomID) {
		return errors.Errorf("síntoma desconocido: %s", symptomID)
	}

	ps, err := s.symptomsFor(ctx, id)
	if err != nil {
		return err
	}

	existed := ps.Add(symptomID, patient.SeverityLevel(severity), durationDays, note)
	s.log.Debug().
		Str("consultation_id", id.String()).
		Str("symptom_id", symptomID).
		Bool("overwrite", existed).
		Msg("symptom recorded")
	return nil
}

func (s *service) RemoveSymptom(ctx context.Context, id uuid.UUID, symptomID string) error {
	ps, err := s.symptomsFor(ctx, id)
	if err != nil {
		return err
	}
	if !ps.Remove(symptomID) {
		return errors.Errorf("síntoma no registrado: %s", symptomID)
	}
	return nil
}

func (s *service) ClearSymptoms(ctx context.Context, id uuid.UUID) error {
	ps, err := s.symptomsFor(ctx, id)
	if err != nil {
		return err
	}
	ps.Clear()
	return nil
}

// Diagnose runs the engine over the session report, snapshots everything
// into the stored record and returns it.
func (s *service) Diagnose(ctx context.Context, id uuid.UUID, maxResults int) (*Consultation, error) {
	ps, err := s.symptomsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	results := s.engine.Diagnose(ps, maxResults)

	c.Symptoms = snapshotSymptoms(ps)
	c.Diagnoses = results
	c.Differential = s.engine.DifferentialDiagnosis(ps)
	c.SuggestedTests = s.engine.SuggestAdditionalTests(results)
	c.SeverityScore = ps.SeverityScore(s.reg)
	c.TopDiagnosis = ""
	if len(results) > 0 {
		c.TopDiagnosis = results[0].Disease.ID
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, errors.Wrap(err, "save diagnosis")
	}

	s.log.Info().
		Str("consultation_id", id.String()).
		Str("top_diagnosis", c.TopDiagnosis).
		Int("candidates", len(results)).
		Float64("severity_score", c.SeverityScore).
		Msg("diagnosis completed")
	return c, nil
}

func (s *service) Verify(ctx context.Context, id uuid.UUID, diseaseID string) (bool, string, error) {
	ps, err := s.symptomsFor(ctx, id)
	if err != nil {
		return false, "", err
	}
	possible, explanation := s.engine.BackwardChain(diseaseID, ps)
	return possible, explanation, nil
}

func (s *service) Patterns(ctx context.Context, id uuid.UUID) (inference.PatternAnalysis, error) {
	ps, err := s.symptomsFor(ctx, id)
	if err != nil {
		return inference.PatternAnalysis{}, err
	}
	return s.engine.AnalyzeSymptomPatterns(ps), nil
}

func (s *service) Report(ctx context.Context, id uuid.UUID) ([]byte, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(c.Diagnoses) == 0 {
		return nil, errors.New("la consulta no tiene diagnóstico; ejecutar el diagnóstico primero")
	}
	pdf, err := s.reportGen.Generate(*c)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	return pdf, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *service) History(ctx context.Context, limit int) ([]Consultation, error) {
	return s.repo.List(ctx, limit)
}

// ExportHistoryCSV writes one row per stored consultation, confidence
// taken from the top-ranked result.
func (s *service) ExportHistoryCSV(ctx context.Context, w io.Writer) error {
	list, err := s.repo.List(ctx, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "patient_name", "age", "gender", "symptom_count",
		"top_diagnosis", "confidence", "severity_score", "created_at"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range list {
		confidence := ""
		if len(c.Diagnoses) > 0 {
			confidence = strconv.FormatFloat(c.Diagnoses[0].Confidence, 'f', 4, 64)
		}
		row := []string{
			c.ID.String(),
			c.PatientName,
			strconv.Itoa(c.Age),
			c.Gender,
			strconv.Itoa(len(c.Symptoms)),
			c.TopDiagnosis,
			confidence,
			strconv.FormatFloat(c.SeverityScore, 'f', 2, 64),
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

func snapshotSymptoms(ps *patient.Symptoms) []ReportedSymptom {
	entries := ps.Entries()
	out := make([]ReportedSymptom, 0, len(entries))
	for _, id := range ps.IDs() {
		e := entries[id]
		out = append(out, ReportedSymptom{
			SymptomID:    id,
			Severity:     int(e.Severity),
			DurationDays: e.DurationDays,
			Note:         e.Note,
		})
	}
	return out
}
