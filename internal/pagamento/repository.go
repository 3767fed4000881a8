// internal/pagamento/repository.go
package pagamento

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de Pagamentos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarParaContrato cria um pagamento vinculado a um contrato específico.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) CriarParaContrato(db *gorm.DB, contratoID uint, p *Pagamento) error {
	if db == nil {
		db = r.DB
	}
	p.ContratoID = contratoID
	return db.Create(p).Error
}

// SomarPorContrato soma os valores pagos de um contrato.
// Se db == nil, usa o r.DB. Permite usar dentro de transação.
func (r *Repository) SomarPorContrato(db *gorm.DB, contratoID uint) (decimal.Decimal, error) {
	if db == nil {
		db = r.DB
	}
	var total decimal.Decimal
	err := db.Model(&Pagamento{}).
		Where("contrato_id = ?", contratoID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}

// ListarPorContrato busca todos os pagamentos de um contrato.
func (r *Repository) ListarPorContrato(contratoID uint) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("data_pagamento ASC, id ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

// Atualizar regrava um pagamento existente (Save exige PK). Os pagamentos
// nunca mudam; a regravação após a transição de status é inócua.
func (r *Repository) Atualizar(db *gorm.DB, p *Pagamento) error {
	if db == nil {
		db = r.DB
	}
	return db.Save(p).Error
}
