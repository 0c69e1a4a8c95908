package schedule

// Dias de la semana accepted for a schedule slot. Anything else is a typo
// and is rejected at the boundary.
const (
	DiaLunes     = "lunes"
	DiaMartes    = "martes"
	DiaMiercoles = "miercoles"
	DiaJueves    = "jueves"
	DiaViernes   = "viernes"
	DiaSabado    = "sabado"
	DiaDomingo   = "domingo"
)

var diasValidos = map[string]bool{
	DiaLunes: true, DiaMartes: true, DiaMiercoles: true, DiaJueves: true,
	DiaViernes: true, DiaSabado: true, DiaDomingo: true,
}

func DiaSemanaValido(dia string) bool { return diasValidos[dia] }

// Horario is the write model. Hours travel as "HH:MM" strings.
type Horario struct {
	ID         int    `json:"id"`
	UsuarioID  int    `json:"usuario_id"`
	DiaSemana  string `json:"dia_semana"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

// HorarioConUsuario is the read model joined with the staff display names.
type HorarioConUsuario struct {
	ID              int    `json:"id"`
	UsuarioID       int    `json:"usuario_id"`
	NombreUsuario   string `json:"nombre_usuario"`
	ApellidoUsuario string `json:"apellido_usuario"`
	DiaSemana       string `json:"dia_semana"`
	HoraInicio      string `json:"hora_inicio"`
	HoraFin         string `json:"hora_fin"`
}
