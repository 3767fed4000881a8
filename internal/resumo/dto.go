// internal/resumo/dto.go
package resumo

import "github.com/shopspring/decimal"

// ResumoFinalizadoDTO é uma linha do relatório de contratos quitados:
// quantidade e receita total por tipo de imóvel.
type ResumoFinalizadoDTO struct {
	TipoImovel string          `json:"tipoImovel"`
	Quantidade int64           `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

// ResumoPendenteDTO é uma linha do relatório de contratos não quitados:
// obrigação total esperada contra o que já foi pago.
type ResumoPendenteDTO struct {
	ContratoID uint            `json:"contratoId"`
	Esperado   decimal.Decimal `json:"esperado"`
	Pago       decimal.Decimal `json:"pago"`
}
