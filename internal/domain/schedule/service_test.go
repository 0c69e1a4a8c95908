package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

// -- Mock Repository --

type mockHorarioRepo struct {
	store  map[int]*Horario
	nextID int
}

func newMockHorarioRepo() *mockHorarioRepo {
	return &mockHorarioRepo{store: make(map[int]*Horario), nextID: 1}
}

func (m *mockHorarioRepo) conUsuario(h *Horario) *HorarioConUsuario {
	return &HorarioConUsuario{
		ID: h.ID, UsuarioID: h.UsuarioID,
		NombreUsuario: "Maria", ApellidoUsuario: "Lopez",
		DiaSemana: h.DiaSemana, HoraInicio: h.HoraInicio, HoraFin: h.HoraFin,
	}
}

func (m *mockHorarioRepo) List(_ context.Context) ([]*HorarioConUsuario, error) {
	var items []*HorarioConUsuario
	for id := 1; id < m.nextID; id++ {
		if h, ok := m.store[id]; ok {
			items = append(items, m.conUsuario(h))
		}
	}
	return items, nil
}

func (m *mockHorarioRepo) GetByID(_ context.Context, id int) (*HorarioConUsuario, error) {
	h, ok := m.store[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return m.conUsuario(h), nil
}

func (m *mockHorarioRepo) Create(_ context.Context, h *Horario) error {
	h.ID = m.nextID
	m.nextID++
	m.store[h.ID] = h
	return nil
}

func (m *mockHorarioRepo) Update(_ context.Context, h *Horario) error {
	if _, ok := m.store[h.ID]; ok {
		m.store[h.ID] = h
	}
	return nil
}

func (m *mockHorarioRepo) Delete(_ context.Context, id int) error {
	delete(m.store, id)
	return nil
}

func horarioValido() *Horario {
	return &Horario{UsuarioID: 1, DiaSemana: DiaLunes, HoraInicio: "08:00", HoraFin: "12:00"}
}

// -- Service Tests --

func TestCreateHorario_Success(t *testing.T) {
	svc := NewService(newMockHorarioRepo())
	h := horarioValido()
	if err := svc.CreateHorario(context.Background(), h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID == 0 {
		t.Error("expected id to be assigned")
	}
}

func TestCreateHorario_DiaInvalido(t *testing.T) {
	svc := NewService(newMockHorarioRepo())

	for _, dia := range []string{"", "funes", "Lunes ", "monday"} {
		h := horarioValido()
		h.DiaSemana = dia
		err := svc.CreateHorario(context.Background(), h)
		if !errors.Is(err, errInvalid) {
			t.Errorf("dia %q: expected errInvalid, got %v", dia, err)
		}
	}
}

func TestCreateHorario_TodosLosDias(t *testing.T) {
	svc := NewService(newMockHorarioRepo())
	dias := []string{DiaLunes, DiaMartes, DiaMiercoles, DiaJueves, DiaViernes, DiaSabado, DiaDomingo}
	for _, dia := range dias {
		h := horarioValido()
		h.DiaSemana = dia
		if err := svc.CreateHorario(context.Background(), h); err != nil {
			t.Errorf("dia %q: unexpected error: %v", dia, err)
		}
	}
}

func TestGetHorario_JoinsNombres(t *testing.T) {
	svc := NewService(newMockHorarioRepo())
	h := horarioValido()
	if err := svc.CreateHorario(context.Background(), h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.GetHorario(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.NombreUsuario == "" || got.ApellidoUsuario == "" {
		t.Errorf("expected joined display names, got %+v", got)
	}
}

func TestDeleteHorario_Idempotent(t *testing.T) {
	svc := NewService(newMockHorarioRepo())
	if err := svc.DeleteHorario(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
