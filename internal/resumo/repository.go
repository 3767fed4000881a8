// internal/resumo/repository.go
package resumo

import (
	"time"

	"github.com/mateolorenzo8/RealEstate/internal/contrato"
	"github.com/mateolorenzo8/RealEstate/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository executa as duas agregações de relatório. São leituras puras:
// nenhum status é recalculado aqui.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ContratosFinalizados agrupa os contratos quitados com início dentro do
// intervalo (inclusivo) por tipo de imóvel, somando a obrigação total de
// cada um. Tipos sem contrato no intervalo ficam fora do resultado.
func (r *Repository) ContratosFinalizados(de, ate time.Time) ([]ResumoFinalizadoDTO, error) {
	if ate.Before(de) {
		return nil, utils.ErrPeriodoInvalido
	}

	var contratos []contrato.Contrato
	err := r.DB.
		Where("status = ? AND data_inicio BETWEEN ? AND ?", contrato.StatusConcluido, de, ate).
		Find(&contratos).Error
	if err != nil {
		return nil, err
	}

	porTipo := make(map[string]*ResumoFinalizadoDTO)
	for i := range contratos {
		c := &contratos[i]
		linha, ok := porTipo[c.TipoImovel]
		if !ok {
			linha = &ResumoFinalizadoDTO{TipoImovel: c.TipoImovel, Total: decimal.Zero}
			porTipo[c.TipoImovel] = linha
		}
		linha.Quantidade++
		linha.Total = linha.Total.Add(c.Total())
	}

	// ordem fixa de tipos para um resultado determinístico
	resultado := make([]ResumoFinalizadoDTO, 0, len(porTipo))
	for _, tipo := range contrato.Tipos {
		if linha, ok := porTipo[tipo]; ok {
			resultado = append(resultado, *linha)
		}
	}
	return resultado, nil
}

type linhaPendente struct {
	ContratoID  uint
	ValorMensal decimal.Decimal
	DataInicio  time.Time
	DataFim     time.Time
	TotalPago   decimal.Decimal
}

// ContratosPendentes lista os contratos não quitados com o esperado e o já
// pago, uma linha por contrato, em ordem de id. A consulta parte dos
// pagamentos (JOIN interno): um contrato pendente sem nenhum pagamento não
// aparece no relatório — comportamento documentado, não um descuido.
func (r *Repository) ContratosPendentes() ([]ResumoPendenteDTO, error) {
	var linhas []linhaPendente
	err := r.DB.
		Table("pagamentos").
		Select("pagamentos.contrato_id AS contrato_id, contratos.valor_mensal, contratos.data_inicio, contratos.data_fim, SUM(pagamentos.valor) AS total_pago").
		Joins("JOIN contratos ON contratos.id = pagamentos.contrato_id").
		Where("contratos.status <> ?", contrato.StatusConcluido).
		Group("pagamentos.contrato_id, contratos.valor_mensal, contratos.data_inicio, contratos.data_fim").
		Order("pagamentos.contrato_id ASC").
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}

	resultado := make([]ResumoPendenteDTO, 0, len(linhas))
	for _, l := range linhas {
		c := contrato.Contrato{
			ValorMensal: l.ValorMensal,
			DataInicio:  l.DataInicio,
			DataFim:     l.DataFim,
		}
		resultado = append(resultado, ResumoPendenteDTO{
			ContratoID: l.ContratoID,
			Esperado:   c.Total(),
			Pago:       l.TotalPago,
		})
	}
	return resultado, nil
}
