package utils

import (
	"errors"
	"time"
)

// ErrPeriodoInvalido indica um intervalo de datas mal formado.
var ErrPeriodoInvalido = errors.New("período inválido: a data final deve ser posterior à inicial")

// MesesEntre retorna a quantidade de meses de calendário completos entre duas
// datas. Um mês só conta quando o dia do mês também foi alcançado
// (2024-01-15 até 2024-03-14 são 1 mês; até 2024-03-15 são 2).
func MesesEntre(inicio, fim time.Time) (int64, error) {
	if !fim.After(inicio) {
		return 0, ErrPeriodoInvalido
	}
	meses := int64(fim.Year()-inicio.Year())*12 + int64(int(fim.Month())-int(inicio.Month()))
	if fim.Day() < inicio.Day() {
		meses--
	}
	return meses, nil
}

// InicioDoDia zera o horário de um time.Time, mantendo só a data.
func InicioDoDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
