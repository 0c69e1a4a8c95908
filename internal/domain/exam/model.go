package exam

// PerfilExamen groups related lab exams (hemograma, perfil lipidico, ...).
type PerfilExamen struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Examen is a catalog entry read joined with its profile name.
type Examen struct {
	ID                  int    `json:"id"`
	PerfilID            int    `json:"perfil_id"`
	PerfilNombre        string `json:"perfil_nombre"`
	Nombre              string `json:"nombre"`
	ReferenciaResultado string `json:"referencia_resultado"`
}

// ResultadoExamen is the write model for one result attached to a diagnosis.
// The same exam may be recorded more than once for a diagnosis; repeated
// measurements are distinct rows.
type ResultadoExamen struct {
	ExamenID  int    `json:"examen_id"`
	Resultado string `json:"resultado"`
}

// ResultadoConExamen is the read model joined with the exam name.
type ResultadoConExamen struct {
	ID            int    `json:"id"`
	DiagnosticoID int    `json:"diagnostico_id"`
	ExamenID      int    `json:"examen_id"`
	NombreExamen  string `json:"nombre_examen"`
	Resultado     string `json:"resultado"`
}
