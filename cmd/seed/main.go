// seed puebla la base de datos con clientes y movimientos de demostración.
// Pasa cada movimiento por el caso de uso de alta para que los saldos queden
// consistentes con el log, igual que en producción.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que el servidor.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/fiado-api/internal/application/dto"
	appledger "github.com/jhoicas/fiado-api/internal/application/ledger"
	"github.com/jhoicas/fiado-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fiado-api/pkg/config"
	"github.com/shopspring/decimal"
)

type seedTx struct {
	txType      string
	amount      string
	description string
	paymentMode string
}

type seedCustomer struct {
	name    string
	phone   string
	address string
	txs     []seedTx
}

var demo = []seedCustomer{
	{
		name: "Juluri Rani", phone: "9876543210", address: "Main Bazaar Rd 12",
		txs: []seedTx{
			{txType: "sale", amount: "1000", description: "Silk saree"},
			{txType: "payment", amount: "400", paymentMode: "Cash"},
			{txType: "sale", amount: "250.50", description: "Blouse piece"},
		},
	},
	{
		name: "Kavita Sharma", phone: "9123456780", address: "Temple Street 4",
		txs: []seedTx{
			{txType: "sale", amount: "780", description: "Cotton saree"},
			{txType: "payment", amount: "780", paymentMode: "UPI"},
		},
	},
	{
		name: "Ramesh Gupta", phone: "9988776655",
		txs: []seedTx{
			{txType: "sale", amount: "1500", description: "Wedding saree set"},
			{txType: "return", amount: "500", description: "Damaged blouse"},
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	customerUC := appledger.NewCustomerUseCase(customerRepo)
	addTransactionUC := appledger.NewAddTransactionUseCase(postgres.NewTxRunner(pool))

	for _, sc := range demo {
		customer, err := customerUC.Create(dto.CreateCustomerRequest{
			Name:    sc.name,
			Phone:   sc.phone,
			Address: sc.address,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear cliente %s: %v\n", sc.name, err)
			os.Exit(1)
		}

		for _, st := range sc.txs {
			amount, err := decimal.NewFromString(st.amount)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Monto inválido %q: %v\n", st.amount, err)
				os.Exit(1)
			}
			req := dto.CreateTransactionRequest{
				CustomerID:  customer.ID,
				Type:        st.txType,
				Amount:      amount,
				Description: st.description,
				PaymentMode: st.paymentMode,
			}
			if _, err := addTransactionUC.Add(ctx, req); err != nil {
				fmt.Fprintf(os.Stderr, "Registrar movimiento de %s: %v\n", sc.name, err)
				os.Exit(1)
			}
		}
		fmt.Printf("Cliente %s listo (saldo final en el ledger)\n", sc.name)
	}
	fmt.Println("Datos de demostración cargados.")
}
