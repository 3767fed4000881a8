package contrato

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/mateolorenzo8/RealEstate/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const formatoData = "2006-01-02"

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /contratos
func (h *Handler) CriarContrato(w http.ResponseWriter, r *http.Request) {
	var in CriarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	inicio, err := time.Parse(formatoData, in.DataInicio)
	if err != nil {
		http.Error(w, "Data de início inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	fim, err := time.Parse(formatoData, in.DataFim)
	if err != nil {
		http.Error(w, "Data de fim inválida (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	if !fim.After(inicio) {
		http.Error(w, utils.ErrPeriodoInvalido.Error(), http.StatusBadRequest)
		return
	}
	if !TipoValido(in.TipoImovel) {
		http.Error(w, "Tipo de imóvel desconhecido", http.StatusBadRequest)
		return
	}
	if in.ValorMensal.IsNegative() {
		http.Error(w, "Valor mensal não pode ser negativo", http.StatusBadRequest)
		return
	}

	c := &Contrato{
		NomeInquilino: in.NomeInquilino,
		TipoImovel:    in.TipoImovel,
		ValorMensal:   in.ValorMensal.Round(2),
		DataInicio:    inicio,
		DataFim:       fim,
		Status:        StatusAtivo,
	}
	if err := h.Repository.Criar(h.DB, c); err != nil {
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos?nome=&tipo=&dataDe=&dataAte=&valorDe=&valorAte=
func (h *Handler) BuscarComFiltros(w http.ResponseWriter, r *http.Request) {
	filtro, err := filtroDaQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	contratos, err := h.Repository.BuscarComFiltros(h.DB, filtro)
	if err != nil {
		http.Error(w, "Erro ao buscar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contratos)
}

// filtroDaQuery traduz os query params nos campos opcionais do filtro.
func filtroDaQuery(r *http.Request) (FiltroDTO, error) {
	q := r.URL.Query()
	filtro := FiltroDTO{NomeInquilino: q.Get("nome")}

	if tipo := q.Get("tipo"); tipo != "" {
		filtro.TipoImovel = &tipo
	}
	if s := q.Get("dataDe"); s != "" {
		d, err := time.Parse(formatoData, s)
		if err != nil {
			return filtro, err
		}
		filtro.DataDe = &d
	}
	if s := q.Get("dataAte"); s != "" {
		d, err := time.Parse(formatoData, s)
		if err != nil {
			return filtro, err
		}
		filtro.DataAte = &d
	}
	if s := q.Get("valorDe"); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return filtro, err
		}
		filtro.ValorDe = &v
	}
	if s := q.Get("valorAte"); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return filtro, err
		}
		filtro.ValorAte = &v
	}
	return filtro, nil
}
