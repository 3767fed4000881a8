package contrato

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarContratoDTO é o payload de criação. Datas no formato YYYY-MM-DD.
type CriarContratoDTO struct {
	NomeInquilino string          `json:"nomeInquilino"`
	TipoImovel    string          `json:"tipoImovel"`
	ValorMensal   decimal.Decimal `json:"valorMensal"`
	DataInicio    string          `json:"dataInicio"`
	DataFim       string          `json:"dataFim"`
}

// FiltroDTO descreve a busca de contratos. Só o nome do inquilino é
// obrigatório (string vazia casa com todos); os demais campos, quando nil,
// não restringem nada. Um "até" sem o respectivo "de" é ignorado.
type FiltroDTO struct {
	NomeInquilino string           `json:"nomeInquilino"`
	TipoImovel    *string          `json:"tipoImovel,omitempty"`
	DataDe        *time.Time       `json:"dataDe,omitempty"`
	DataAte       *time.Time       `json:"dataAte,omitempty"`
	ValorDe       *decimal.Decimal `json:"valorDe,omitempty"`
	ValorAte      *decimal.Decimal `json:"valorAte,omitempty"`
}
