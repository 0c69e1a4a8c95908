package record

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expedienteRepoPG struct{ pool *pgxpool.Pool }

func NewExpedienteRepoPG(pool *pgxpool.Pool) ExpedienteRepository {
	return &expedienteRepoPG{pool: pool}
}

const expedienteCols = `id, paciente_id, fecha_creacion`

func scanExpediente(row pgx.Row) (*Expediente, error) {
	var e Expediente
	if err := row.Scan(&e.ID, &e.PacienteID, &e.FechaCreacion); err != nil {
		return nil, err
	}
	return &e, nil
}

const diagnosticoCols = `id, expediente_id, diagnostico, tratamiento, fecha_registro`

func scanDiagnostico(row pgx.Row) (*Diagnostico, error) {
	var d Diagnostico
	err := row.Scan(&d.ID, &d.ExpedienteID, &d.Diagnostico, &d.Tratamiento, &d.FechaRegistro)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *expedienteRepoPG) GetByPaciente(ctx context.Context, pacienteID int) (*Expediente, error) {
	return scanExpediente(r.pool.QueryRow(ctx,
		`SELECT `+expedienteCols+` FROM expedientes WHERE paciente_id = $1`, pacienteID))
}

// Create opens the record for a patient. The existence check and the insert
// run in one transaction so a concurrent patient delete cannot slip between
// them.
func (r *expedienteRepoPG) Create(ctx context.Context, pacienteID int) (*Expediente, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var exists int
	if err := tx.QueryRow(ctx,
		`SELECT id FROM pacientes WHERE id = $1`, pacienteID).Scan(&exists); err != nil {
		return nil, err
	}

	e, err := scanExpediente(tx.QueryRow(ctx, `
		INSERT INTO expedientes (paciente_id) VALUES ($1)
		RETURNING `+expedienteCols, pacienteID))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// ListDiagnosticos resolves the patient's record first so an absent
// expediente surfaces as a lookup failure instead of an empty list.
func (r *expedienteRepoPG) ListDiagnosticos(ctx context.Context, pacienteID int) ([]*Diagnostico, error) {
	var expedienteID int
	if err := r.pool.QueryRow(ctx,
		`SELECT id FROM expedientes WHERE paciente_id = $1`, pacienteID).Scan(&expedienteID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+diagnosticoCols+`
		FROM expedientes_diagnosticos
		WHERE expediente_id = $1
		ORDER BY fecha_registro DESC, id DESC`, expedienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Diagnostico
	for rows.Next() {
		d, err := scanDiagnostico(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// CreateDiagnostico resolves the patient's record and appends the entry in a
// single transaction.
func (r *expedienteRepoPG) CreateDiagnostico(ctx context.Context, pacienteID int, d *Diagnostico) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var expedienteID int
	if err := tx.QueryRow(ctx,
		`SELECT id FROM expedientes WHERE paciente_id = $1`, pacienteID).Scan(&expedienteID); err != nil {
		return err
	}

	d.ExpedienteID = expedienteID
	if err := tx.QueryRow(ctx, `
		INSERT INTO expedientes_diagnosticos (expediente_id, diagnostico, tratamiento)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_registro`,
		expedienteID, d.Diagnostico, d.Tratamiento).Scan(&d.ID, &d.FechaRegistro); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
