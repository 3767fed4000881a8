package resumo

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mateolorenzo8/RealEstate/internal/utils"
	"gorm.io/gorm"
)

const formatoData = "2006-01-02"

type Handler struct {
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

// GET /resumos/finalizados?de=YYYY-MM-DD&ate=YYYY-MM-DD
func (h *Handler) ContratosFinalizados(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	de, err := time.Parse(formatoData, q.Get("de"))
	if err != nil {
		http.Error(w, "Parâmetro 'de' inválido (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	ate, err := time.Parse(formatoData, q.Get("ate"))
	if err != nil {
		http.Error(w, "Parâmetro 'ate' inválido (use YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	resultado, err := h.Repository.ContratosFinalizados(de, ate)
	if errors.Is(err, utils.ErrPeriodoInvalido) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao gerar resumo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}

// GET /resumos/pendentes
func (h *Handler) ContratosPendentes(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Repository.ContratosPendentes()
	if err != nil {
		http.Error(w, "Erro ao gerar resumo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resultado)
}
