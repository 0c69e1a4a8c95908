package exam

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/cliniclab/cliniclab/internal/platform/db"
)

// -- Mock Repository --

type mockExamenRepo struct {
	perfiles     []*PerfilExamen
	examenes     []*Examen
	diagnosticos map[int]bool
	resultados   map[int][]*ResultadoConExamen
	nextID       int
}

func newMockExamenRepo(diagnosticoIDs ...int) *mockExamenRepo {
	m := &mockExamenRepo{
		perfiles: []*PerfilExamen{
			{ID: 1, Nombre: "Hemograma"},
			{ID: 2, Nombre: "Perfil lipidico"},
		},
		examenes: []*Examen{
			{ID: 1, PerfilID: 1, PerfilNombre: "Hemograma", Nombre: "Hemoglobina", ReferenciaResultado: "12-16 g/dL"},
			{ID: 2, PerfilID: 1, PerfilNombre: "Hemograma", Nombre: "Hematocrito", ReferenciaResultado: "36-46%"},
			{ID: 3, PerfilID: 2, PerfilNombre: "Perfil lipidico", Nombre: "Colesterol total", ReferenciaResultado: "<200 mg/dL"},
		},
		diagnosticos: make(map[int]bool),
		resultados:   make(map[int][]*ResultadoConExamen),
		nextID:       1,
	}
	for _, id := range diagnosticoIDs {
		m.diagnosticos[id] = true
	}
	return m
}

func (m *mockExamenRepo) ListPerfiles(_ context.Context) ([]*PerfilExamen, error) {
	return m.perfiles, nil
}

func (m *mockExamenRepo) ListExamenes(_ context.Context) ([]*Examen, error) {
	return m.examenes, nil
}

func (m *mockExamenRepo) ListExamenesByPerfil(_ context.Context, perfilID int) ([]*Examen, error) {
	var items []*Examen
	for _, e := range m.examenes {
		if e.PerfilID == perfilID {
			items = append(items, e)
		}
	}
	return items, nil
}

func (m *mockExamenRepo) ListResultadosByDiagnostico(_ context.Context, diagnosticoID int) ([]*ResultadoConExamen, error) {
	return m.resultados[diagnosticoID], nil
}

func (m *mockExamenRepo) AddResultados(_ context.Context, diagnosticoID int, items []ResultadoExamen) error {
	if !m.diagnosticos[diagnosticoID] {
		return pgx.ErrNoRows
	}
	for _, item := range items {
		var nombre string
		for _, e := range m.examenes {
			if e.ID == item.ExamenID {
				nombre = e.Nombre
			}
		}
		m.resultados[diagnosticoID] = append(m.resultados[diagnosticoID], &ResultadoConExamen{
			ID: m.nextID, DiagnosticoID: diagnosticoID,
			ExamenID: item.ExamenID, NombreExamen: nombre, Resultado: item.Resultado,
		})
		m.nextID++
	}
	return nil
}

// -- Service Tests --

func TestListExamenesByPerfil_Filters(t *testing.T) {
	svc := NewService(newMockExamenRepo())
	items, err := svc.ListExamenesByPerfil(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 examenes, got %d", len(items))
	}
	for _, e := range items {
		if e.PerfilID != 1 {
			t.Errorf("unexpected perfil_id %d", e.PerfilID)
		}
	}
}

func TestAddResultados_DiagnosticoMissing(t *testing.T) {
	svc := NewService(newMockExamenRepo())
	err := svc.AddResultados(context.Background(), 9, []ResultadoExamen{{ExamenID: 1, Resultado: "13.1"}})
	if !db.IsNotFound(err) {
		t.Errorf("expected no-rows error, got %v", err)
	}
}

func TestAddResultados_EmptyBatch(t *testing.T) {
	svc := NewService(newMockExamenRepo(1))
	err := svc.AddResultados(context.Background(), 1, nil)
	if !errors.Is(err, errInvalid) {
		t.Errorf("expected errInvalid, got %v", err)
	}
}

func TestAddResultados_MissingExamenID(t *testing.T) {
	svc := NewService(newMockExamenRepo(1))
	err := svc.AddResultados(context.Background(), 1, []ResultadoExamen{{Resultado: "13.1"}})
	if !errors.Is(err, errInvalid) {
		t.Errorf("expected errInvalid, got %v", err)
	}
}

func TestAddResultados_RepeatedExamenKeepsBothRows(t *testing.T) {
	svc := NewService(newMockExamenRepo(1))

	batch := []ResultadoExamen{{ExamenID: 1, Resultado: "13.1"}}
	if err := svc.AddResultados(context.Background(), 1, batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	batch = []ResultadoExamen{{ExamenID: 1, Resultado: "12.8"}}
	if err := svc.AddResultados(context.Background(), 1, batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.ListResultados(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows for repeated examen, got %d", len(items))
	}
	if items[0].Resultado == items[1].Resultado {
		t.Error("expected both measurements to be preserved")
	}
}

func TestListResultados_JoinsExamenName(t *testing.T) {
	svc := NewService(newMockExamenRepo(1))
	if err := svc.AddResultados(context.Background(), 1, []ResultadoExamen{{ExamenID: 3, Resultado: "180"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := svc.ListResultados(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].NombreExamen != "Colesterol total" {
		t.Errorf("unexpected resultados %+v", items)
	}
}
