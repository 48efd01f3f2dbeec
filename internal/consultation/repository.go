package consultation

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("consulta no encontrada")

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error)
	Save(ctx context.Context, c *Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit int) ([]Consultation, error)
	Stats(ctx context.Context) (Stats, error)
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

const consultationColumns = `id, patient_name, age, gender, symptoms, diagnoses,
	differential, suggested_tests, top_diagnosis, severity_score, created_at, updated_at`

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE id = $1`

	c, err := scanConsultation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Save(ctx context.Context, c *Consultation) error {
	symptomsJSON, err := json.Marshal(c.Symptoms)
	if err != nil {
		return errors.Wrap(err, "marshal symptoms")
	}
	diagnosesJSON, err := json.Marshal(c.Diagnoses)
	if err != nil {
		return errors.Wrap(err, "marshal diagnoses")
	}
	differentialJSON, err := json.Marshal(c.Differential)
	if err != nil {
		return errors.Wrap(err, "marshal differential")
	}
	testsJSON, err := json.Marshal(c.SuggestedTests)
	if err != nil {
		return errors.Wrap(err, "marshal suggested tests")
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()

	query := `
		INSERT INTO consultations (id, patient_name, age, gender, symptoms, diagnoses,
			differential, suggested_tests, top_diagnosis, severity_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			symptoms = $5,
			diagnoses = $6,
			differential = $7,
			suggested_tests = $8,
			top_diagnosis = $9,
			severity_score = $10,
			updated_at = $12
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.PatientName, c.Age, c.Gender, symptomsJSON, diagnosesJSON,
		differentialJSON, testsJSON, c.TopDiagnosis, c.SeverityScore, c.CreatedAt, c.UpdatedAt)
	return errors.Wrap(err, "upsert consultation")
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete consultation")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the newest consultations first. A limit of zero or less
// returns everything.
func (r *postgresRepo) List(ctx context.Context, limit int) ([]Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list consultations")
	}
	defer rows.Close()

	var out []Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ByTopDiagnosis: make(map[string]int)}

	rows, err := r.db.QueryContext(ctx, `
		SELECT top_diagnosis, COUNT(*) FROM consultations
		WHERE top_diagnosis <> '' GROUP BY top_diagnosis`)
	if err != nil {
		return stats, errors.Wrap(err, "stats by diagnosis")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return stats, err
		}
		stats.ByTopDiagnosis[id] = count
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM consultations`).Scan(&stats.TotalConsultations)
	if err != nil {
		return stats, errors.Wrap(err, "stats total")
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG((diagnoses->0->>'confidence')::float), 0)
		FROM consultations WHERE jsonb_array_length(diagnoses) > 0`).
		Scan(&stats.AverageConfidence)
	if err != nil {
		return stats, errors.Wrap(err, "stats average confidence")
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*Consultation, error) {
	var c Consultation
	var symptomsJSON, diagnosesJSON, differentialJSON, testsJSON []byte

	err := row.Scan(
		&c.ID,
		&c.PatientName,
		&c.Age,
		&c.Gender,
		&symptomsJSON,
		&diagnosesJSON,
		&differentialJSON,
		&testsJSON,
		&c.TopDiagnosis,
		&c.SeverityScore,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, col := range []struct {
		data []byte
		dst  any
	}{
		{symptomsJSON, &c.Symptoms},
		{diagnosesJSON, &c.Diagnoses},
		{differentialJSON, &c.Differential},
		{testsJSON, &c.SuggestedTests},
	} {
		if len(col.data) == 0 {
			continue
		}
		if err := json.Unmarshal(col.data, col.dst); err != nil {
			return nil, errors.Wrap(err, "unmarshal consultation column")
		}
	}

	return &c, nil
}
