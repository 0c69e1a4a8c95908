package patient

import "time"

// Paciente is the write model for the pacientes table. The id is
// server-assigned on create.
type Paciente struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	CI              string    `json:"ci"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Sexo            string    `json:"sexo"`
}

// PacienteConEdad is the read model: the stored row plus the age projection,
// computed by the database at query time and never stored.
type PacienteConEdad struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	CI              string    `json:"ci"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	FechaNacimiento time.Time `json:"fecha_nacimiento"`
	Sexo            string    `json:"sexo"`
	Edad            int       `json:"edad"`
}

// CalcularEdad returns whole years elapsed between nacimiento and ahora.
// The SQL projection (EXTRACT(YEAR FROM AGE(...))) is authoritative at
// runtime; this helper backs the in-memory repositories used in tests.
func CalcularEdad(nacimiento, ahora time.Time) int {
	years := ahora.Year() - nacimiento.Year()
	if nacimiento.AddDate(years, 0, 0).After(ahora) {
		years--
	}
	return years
}
