package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/mateolorenzo8/RealEstate/internal/auth"
	"github.com/mateolorenzo8/RealEstate/internal/contrato"
	"github.com/mateolorenzo8/RealEstate/internal/pagamento"
	"github.com/mateolorenzo8/RealEstate/internal/resumo"
	"github.com/mateolorenzo8/RealEstate/internal/utils/db"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&contrato.Contrato{},
		&pagamento.Pagamento{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	contratoHandler := contrato.NewHandler(database)
	pagamentoHandler := pagamento.NewHandler(database)
	resumoHandler := resumo.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", auth.LoginHandler()).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.CriarContrato).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.BuscarComFiltros).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")

	// Rotas de pagamentos
	api.HandleFunc("/contratos/{id}/pagamentos", pagamentoHandler.RegistrarPagamento).Methods("POST")
	api.HandleFunc("/contratos/{id}/pagamentos", pagamentoHandler.ListarPorContrato).Methods("GET")

	// Rotas de resumos
	api.HandleFunc("/resumos/finalizados", resumoHandler.ContratosFinalizados).Methods("GET")
	api.HandleFunc("/resumos/pendentes", resumoHandler.ContratosPendentes).Methods("GET")

	porta := os.Getenv("SERVER_PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, cors.AllowAll().Handler(r)))
}
