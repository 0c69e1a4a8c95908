package appointment

import "time"

// Estados of an appointment. EstadoOtro is the explicit fallback for states
// the clinic tracks informally.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmada = "confirmada"
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
	EstadoOtro       = "otro"
)

var estadosValidos = map[string]bool{
	EstadoPendiente: true, EstadoConfirmada: true, EstadoCompletada: true,
	EstadoCancelada: true, EstadoOtro: true,
}

func EstadoValido(estado string) bool { return estadosValidos[estado] }

// Cita is the write model.
type Cita struct {
	ID         int       `json:"id"`
	PacienteID int       `json:"paciente_id"`
	UsuarioID  int       `json:"usuario_id"`
	FechaHora  time.Time `json:"fecha_hora"`
	Estado     string    `json:"estado"`
	Motivo     string    `json:"motivo"`
}

// CitaDetalle is the read model joined with patient and staff display names.
type CitaDetalle struct {
	ID               int       `json:"id"`
	PacienteID       int       `json:"paciente_id"`
	NombrePaciente   string    `json:"nombre_paciente"`
	ApellidoPaciente string    `json:"apellido_paciente"`
	UsuarioID        int       `json:"usuario_id"`
	NombreMedico     string    `json:"nombre_medico"`
	ApellidoMedico   string    `json:"apellido_medico"`
	FechaHora        time.Time `json:"fecha_hora"`
	Estado           string    `json:"estado"`
	Motivo           string    `json:"motivo"`
}
