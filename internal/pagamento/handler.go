package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// RegistrarPagamentoDTO é o payload de registro de pagamento.
type RegistrarPagamentoDTO struct {
	Valor decimal.Decimal `json:"valor"`
}

// POST /contratos/{id}/pagamentos
func (h *Handler) RegistrarPagamento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}

	var in RegistrarPagamentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	p, err := h.Service.RegistrarPagamento(uint(id), in.Valor)
	switch {
	case errors.Is(err, ErrContratoNaoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ErrContratoJaQuitado):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, ErrValorInvalido):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /contratos/{id}/pagamentos
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do contrato inválido", http.StatusBadRequest)
		return
	}
	pagamentos, err := h.Service.Pagamentos.ListarPorContrato(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamentos)
}
