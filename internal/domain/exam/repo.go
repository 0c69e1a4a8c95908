package exam

import "context"

type ExamenRepository interface {
	ListPerfiles(ctx context.Context) ([]*PerfilExamen, error)
	ListExamenes(ctx context.Context) ([]*Examen, error)
	ListExamenesByPerfil(ctx context.Context, perfilID int) ([]*Examen, error)
	ListResultadosByDiagnostico(ctx context.Context, diagnosticoID int) ([]*ResultadoConExamen, error)
	AddResultados(ctx context.Context, diagnosticoID int, items []ResultadoExamen) error
}
