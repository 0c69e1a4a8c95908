package record

import "time"

// Expediente is the one-per-patient medical record. A patient has at most one
// row here; the unique constraint on paciente_id enforces it.
type Expediente struct {
	ID            int       `json:"id"`
	PacienteID    int       `json:"paciente_id"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// Diagnostico is one diagnosis entry appended to a medical record.
type Diagnostico struct {
	ID            int       `json:"id"`
	ExpedienteID  int       `json:"expediente_id"`
	Diagnostico   string    `json:"diagnostico"`
	Tratamiento   string    `json:"tratamiento"`
	FechaRegistro time.Time `json:"fecha_registro"`
}
