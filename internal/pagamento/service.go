package pagamento

import (
	"errors"
	"sync"
	"time"

	"github.com/mateolorenzo8/RealEstate/internal/contrato"
	"github.com/mateolorenzo8/RealEstate/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service executa o fluxo de registro de pagamento e a derivação de status
// do contrato. A sequência carregar → gravar pagamento → somar → decidir →
// gravar status roda dentro de uma transação e sob uma tranca por contrato,
// para que dois pagamentos simultâneos no mesmo contrato nunca decidam o
// status a partir de uma soma desatualizada. Contratos diferentes não
// disputam tranca entre si.
type Service struct {
	DB         *gorm.DB
	Contratos  contrato.Repository
	Pagamentos *Repository

	mu      sync.Mutex
	trancas map[uint]*sync.Mutex
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:         db,
		Contratos:  contrato.NewRepository(),
		Pagamentos: NewRepository(db),
		trancas:    make(map[uint]*sync.Mutex),
	}
}

func (s *Service) trancaDoContrato(id uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trancas[id]
	if !ok {
		t = &sync.Mutex{}
		s.trancas[id] = t
	}
	return t
}

// RegistrarPagamento grava um pagamento datado de hoje e ajusta o status do
// contrato: quitado quando a soma paga alcança a obrigação total, atrasado
// quando a data de fim já passou, inalterado nos demais casos. Um contrato
// quitado não aceita novos pagamentos.
func (s *Service) RegistrarPagamento(contratoID uint, valor decimal.Decimal) (*Pagamento, error) {
	if valor.LessThanOrEqual(decimal.Zero) {
		return nil, ErrValorInvalido
	}

	tranca := s.trancaDoContrato(contratoID)
	tranca.Lock()
	defer tranca.Unlock()

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	c, err := s.Contratos.BuscarPorID(tx, contratoID)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContratoNaoEncontrado
		}
		return nil, err
	}
	if c.Status == contrato.StatusConcluido {
		_ = tx.Rollback()
		return nil, ErrContratoJaQuitado
	}

	hoje := utils.InicioDoDia(time.Now())
	p := &Pagamento{
		ContratoID:    c.ID,
		DataPagamento: hoje,
		Valor:         valor.Round(2),
	}
	if err := s.Pagamentos.CriarParaContrato(tx, c.ID, p); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	pago, err := s.Pagamentos.SomarPorContrato(tx, c.ID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	novo := proximoStatus(c.Status, pago, c.Total(), hoje, c.DataFim)
	if novo != c.Status {
		if err := s.Contratos.AtualizarStatus(tx, c.ID, novo); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	// regrava o pagamento depois da transição; não altera nada nos dados
	if err := s.Pagamentos.Atualizar(tx, p); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	return p, nil
}

// proximoStatus é função pura de (soma paga, total, hoje): rodar de novo com
// as mesmas entradas dá sempre o mesmo resultado, então o passo de decisão
// pode ser repetido com o pagamento já gravado. Um pagamento só tira o
// contrato de "Atrasado" quitando-o; nunca o devolve a "Ativo".
func proximoStatus(atual string, pago, total decimal.Decimal, hoje, fim time.Time) string {
	if pago.GreaterThanOrEqual(total) {
		return contrato.StatusConcluido
	}
	if hoje.After(fim) {
		return contrato.StatusAtrasado
	}
	return atual
}
