// internal/pagamento/model.go
package pagamento

import (
	"time"

	"github.com/mateolorenzo8/RealEstate/internal/contrato"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pagamento é um repasse registrado contra um contrato. Depois de criado
// nunca muda: a data é a do registro e o vínculo com o contrato é imutável.
type Pagamento struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	ContratoID    uint               `gorm:"not null;index" json:"contratoId"`
	Contrato      *contrato.Contrato `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"-"`
	DataPagamento time.Time          `gorm:"not null" json:"dataPagamento"`
	Valor         decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"valor"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// TableName fixa o nome da tabela.
func (Pagamento) TableName() string { return "pagamentos" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pagamento{})
}
