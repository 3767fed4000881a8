package pagamento_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mateolorenzo8/RealEstate/internal/contrato"
	"github.com/mateolorenzo8/RealEstate/internal/pagamento"
	"github.com/mateolorenzo8/RealEstate/internal/utils"
	"github.com/mateolorenzo8/RealEstate/internal/utils/testdb"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func criarContrato(t *testing.T, db *gorm.DB, valor string, inicio, fim time.Time, status string) *contrato.Contrato {
	t.Helper()
	c := &contrato.Contrato{
		NomeInquilino: "Mateo",
		TipoImovel:    contrato.TipoCasa,
		ValorMensal:   decimal.RequireFromString(valor),
		DataInicio:    inicio,
		DataFim:       fim,
		Status:        status,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("criar contrato: %v", err)
	}
	return c
}

func contarPagamentos(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&pagamento.Pagamento{}).Count(&n).Error; err != nil {
		t.Fatalf("contar pagamentos: %v", err)
	}
	return n
}

func TestRegistrarPagamentoContratoInexistente(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)

	_, err := service.RegistrarPagamento(10000, decimal.RequireFromString("100"))
	if !errors.Is(err, pagamento.ErrContratoNaoEncontrado) {
		t.Fatalf("esperado ErrContratoNaoEncontrado, veio %v", err)
	}
	if n := contarPagamentos(t, db); n != 0 {
		t.Fatalf("pagamento criado para contrato inexistente: %d", n)
	}
}

func TestRegistrarPagamentoContratoQuitado(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	c := criarContrato(t, db, "700", hoje.AddDate(-2, 0, 0), hoje.AddDate(0, 0, 1), contrato.StatusConcluido)

	_, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("100"))
	if !errors.Is(err, pagamento.ErrContratoJaQuitado) {
		t.Fatalf("esperado ErrContratoJaQuitado, veio %v", err)
	}
	if n := contarPagamentos(t, db); n != 0 {
		t.Fatalf("pagamento criado em contrato quitado: %d", n)
	}
	relido, err := service.Contratos.BuscarPorID(db, c.ID)
	if err != nil {
		t.Fatalf("BuscarPorID: %v", err)
	}
	if relido.Status != contrato.StatusConcluido {
		t.Fatalf("status mudou: %q", relido.Status)
	}
}

func TestRegistrarPagamentoValorInvalido(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	c := criarContrato(t, db, "500", hoje.AddDate(-1, 0, 0), hoje.AddDate(1, 0, 0), contrato.StatusAtivo)

	for _, valor := range []string{"0", "-10"} {
		if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString(valor)); !errors.Is(err, pagamento.ErrValorInvalido) {
			t.Fatalf("valor %s: esperado ErrValorInvalido, veio %v", valor, err)
		}
	}
	if n := contarPagamentos(t, db); n != 0 {
		t.Fatalf("pagamento criado com valor inválido: %d", n)
	}
}

func TestPagamentoQuitaContrato(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	// total = 500 × 36 meses = 18000
	c := criarContrato(t, db, "500", hoje.AddDate(-2, 0, 0), hoje.AddDate(1, 0, 0), contrato.StatusAtivo)

	p, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("20000"))
	if err != nil {
		t.Fatalf("RegistrarPagamento: %v", err)
	}
	if p.ContratoID != c.ID {
		t.Fatalf("ContratoID = %d", p.ContratoID)
	}
	if !p.DataPagamento.Equal(hoje) {
		t.Fatalf("DataPagamento = %v, esperado %v", p.DataPagamento, hoje)
	}

	relido, err := service.Contratos.BuscarPorID(db, c.ID)
	if err != nil {
		t.Fatalf("BuscarPorID: %v", err)
	}
	if relido.Status != contrato.StatusConcluido {
		t.Fatalf("status = %q, esperado Concluído", relido.Status)
	}
}

func TestPagamentoInsuficienteContratoVencido(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	// total = 500 × 12 meses = 6000, fim já no passado
	c := criarContrato(t, db, "500", hoje.AddDate(-2, 0, 0), hoje.AddDate(-1, 0, 0), contrato.StatusAtivo)

	if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("100")); err != nil {
		t.Fatalf("RegistrarPagamento: %v", err)
	}

	relido, err := service.Contratos.BuscarPorID(db, c.ID)
	if err != nil {
		t.Fatalf("BuscarPorID: %v", err)
	}
	if relido.Status != contrato.StatusAtrasado {
		t.Fatalf("status = %q, esperado Atrasado", relido.Status)
	}
}

func TestPagamentoParcialMantemAtivo(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	c := criarContrato(t, db, "500", hoje.AddDate(-1, 0, 0), hoje.AddDate(1, 0, 0), contrato.StatusAtivo)

	if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("100")); err != nil {
		t.Fatalf("RegistrarPagamento: %v", err)
	}

	relido, err := service.Contratos.BuscarPorID(db, c.ID)
	if err != nil {
		t.Fatalf("BuscarPorID: %v", err)
	}
	if relido.Status != contrato.StatusAtivo {
		t.Fatalf("status = %q, esperado Ativo", relido.Status)
	}
}

func TestPagamentosAcumulamAteQuitar(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	// total = 100 × 12 meses = 1200; fim hoje ainda não é atraso
	c := criarContrato(t, db, "100", hoje.AddDate(-1, 0, 0), hoje, contrato.StatusAtivo)

	if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("700")); err != nil {
		t.Fatalf("primeiro pagamento: %v", err)
	}
	relido, _ := service.Contratos.BuscarPorID(db, c.ID)
	if relido.Status != contrato.StatusAtivo {
		t.Fatalf("status após pagamento parcial = %q", relido.Status)
	}

	if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("500")); err != nil {
		t.Fatalf("segundo pagamento: %v", err)
	}
	relido, _ = service.Contratos.BuscarPorID(db, c.ID)
	if relido.Status != contrato.StatusConcluido {
		t.Fatalf("status após quitar = %q", relido.Status)
	}

	// o terceiro é recusado: Concluído é terminal
	if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString("1")); !errors.Is(err, pagamento.ErrContratoJaQuitado) {
		t.Fatalf("esperado ErrContratoJaQuitado, veio %v", err)
	}

	soma, err := service.Pagamentos.SomarPorContrato(nil, c.ID)
	if err != nil {
		t.Fatalf("SomarPorContrato: %v", err)
	}
	if !soma.Equal(decimal.RequireFromString("1200")) {
		t.Fatalf("soma = %s, esperado 1200", soma)
	}
}

func TestListarPorContrato(t *testing.T) {
	db := testdb.Abrir(t)
	service := pagamento.NewService(db)
	hoje := utils.InicioDoDia(time.Now())

	c := criarContrato(t, db, "500", hoje.AddDate(-1, 0, 0), hoje.AddDate(1, 0, 0), contrato.StatusAtivo)

	for _, valor := range []string{"10", "20", "30"} {
		if _, err := service.RegistrarPagamento(c.ID, decimal.RequireFromString(valor)); err != nil {
			t.Fatalf("pagamento de %s: %v", valor, err)
		}
	}

	lista, err := service.Pagamentos.ListarPorContrato(c.ID)
	if err != nil {
		t.Fatalf("ListarPorContrato: %v", err)
	}
	if len(lista) != 3 {
		t.Fatalf("len = %d, esperado 3", len(lista))
	}
	for i, esperado := range []string{"10", "20", "30"} {
		if !lista[i].Valor.Equal(decimal.RequireFromString(esperado)) {
			t.Fatalf("pagamento %d = %s, esperado %s", i, lista[i].Valor, esperado)
		}
	}
}
