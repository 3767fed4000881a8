package contrato

import (
	"time"

	"github.com/mateolorenzo8/RealEstate/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de imóvel aceitos.
const (
	TipoCasa        = "Casa"
	TipoApartamento = "Apartamento"
	TipoEscritorio  = "Escritório"
)

// Status possíveis de um contrato. A transição é sempre em direção a
// "Concluído": um contrato quitado nunca volta a ficar ativo ou atrasado.
const (
	StatusAtivo     = "Ativo"
	StatusAtrasado  = "Atrasado"
	StatusConcluido = "Concluído"
)

// Tipos lista os tipos de imóvel na ordem usada nos relatórios.
var Tipos = []string{TipoCasa, TipoApartamento, TipoEscritorio}

// Contrato representa um contrato de aluguel com valor mensal fixo.
// O status não é definido pelo cliente: é derivado dos pagamentos
// registrados e da data corrente (ver pagamento.Service).
type Contrato struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	NomeInquilino string          `gorm:"size:80;not null;index" json:"nomeInquilino"`
	TipoImovel    string          `gorm:"size:50;not null" json:"tipoImovel"`
	ValorMensal   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorMensal"`
	DataInicio    time.Time       `gorm:"not null;index" json:"dataInicio"`
	DataFim       time.Time       `gorm:"not null" json:"dataFim"`
	Status        string          `gorm:"size:50;not null;default:'Ativo';index" json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TableName fixa o nome da tabela (a pluralização automática não serve
// para substantivos em português).
func (Contrato) TableName() string { return "contratos" }

// TipoValido diz se a string é um tipo de imóvel conhecido.
func TipoValido(tipo string) bool {
	for _, t := range Tipos {
		if t == tipo {
			return true
		}
	}
	return false
}

// Total é a obrigação total do contrato: valor mensal multiplicado pelos
// meses completos entre início e fim, com escala de 2 casas. As datas são
// validadas na criação; um período inválido resulta em zero.
func (c *Contrato) Total() decimal.Decimal {
	meses, err := utils.MesesEntre(c.DataInicio, c.DataFim)
	if err != nil {
		return decimal.Zero
	}
	return c.ValorMensal.Mul(decimal.NewFromInt(meses)).Round(2)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
