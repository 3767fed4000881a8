package contrato

import "gorm.io/gorm"

// Repository é a fronteira de persistência do agregado Contrato. Recebe o
// *gorm.DB em cada chamada para poder participar de transações.
type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	BuscarComFiltros(db *gorm.DB, filtro FiltroDTO) ([]Contrato, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var contrato Contrato
	if err := db.First(&contrato, id).Error; err != nil {
		return nil, err
	}
	return &contrato, nil
}

// AtualizarStatus troca apenas a coluna de status.
func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	res := db.Model(&Contrato{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BuscarComFiltros monta a consulta cláusula a cláusula, conforme os campos
// opcionais presentes no filtro. Resultado ordenado por data de início
// decrescente; empates resolvidos pelo id de inserção.
func (r *repositoryImpl) BuscarComFiltros(db *gorm.DB, filtro FiltroDTO) ([]Contrato, error) {
	q := db.Model(&Contrato{}).
		Where("nome_inquilino LIKE ?", "%"+filtro.NomeInquilino+"%")

	if filtro.TipoImovel != nil {
		q = q.Where("tipo_imovel = ?", *filtro.TipoImovel)
	}

	// "até" sem "de" desliga a faixa em vez de falhar
	if filtro.DataDe != nil {
		if filtro.DataAte != nil {
			q = q.Where("data_inicio BETWEEN ? AND ?", *filtro.DataDe, *filtro.DataAte)
		} else {
			q = q.Where("data_inicio >= ?", *filtro.DataDe)
		}
	}

	if filtro.ValorDe != nil {
		if filtro.ValorAte != nil {
			q = q.Where("valor_mensal BETWEEN ? AND ?", *filtro.ValorDe, *filtro.ValorAte)
		} else {
			q = q.Where("valor_mensal >= ?", *filtro.ValorDe)
		}
	}

	var contratos []Contrato
	err := q.Order("data_inicio DESC, id ASC").Find(&contratos).Error
	return contratos, err
}
