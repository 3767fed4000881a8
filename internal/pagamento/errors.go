package pagamento

import "errors"

// Erros de negócio do fluxo de pagamento. Falhas do banco são devolvidas
// como vêm do GORM, embrulhadas pelo chamador quando precisar de contexto.
var (
	ErrContratoNaoEncontrado = errors.New("contrato não encontrado")
	ErrContratoJaQuitado     = errors.New("contrato já quitado")
	ErrValorInvalido         = errors.New("o valor do pagamento deve ser positivo")
)
