// Package testdb abre um banco SQLite em memória para os testes de
// repositório e serviço.
package testdb

import (
	"testing"

	"github.com/mateolorenzo8/RealEstate/internal/contrato"
	"github.com/mateolorenzo8/RealEstate/internal/pagamento"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Abrir cria um banco novo, migrado e isolado por teste. A conexão é única
// porque cada conexão SQLite :memory: enxerga um banco próprio.
func Abrir(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		tb.Fatalf("abrir banco de teste: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("obter conexão: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := contrato.Migrate(db); err != nil {
		tb.Fatalf("migrar contratos: %v", err)
	}
	if err := pagamento.Migrate(db); err != nil {
		tb.Fatalf("migrar pagamentos: %v", err)
	}
	return db
}
