// seed importa clientes de um CSV legado (exportado em ISO-8859-1, separado
// por ponto e vírgula) e opcionalmente cria o usuário administrador do painel.
//
// Uso: go run ./cmd/seed [-csv clientes.csv] [-admin-user admin -admin-pass senha -admin-name "Administrador"]
// A conexão com o banco vem da mesma configuração da API (DATABASE_URL etc).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/seu-usuario/gestor-api/internal/application/usecase"
	"github.com/seu-usuario/gestor-api/internal/domain"
	"github.com/seu-usuario/gestor-api/internal/infrastructure/postgres"
	"github.com/seu-usuario/gestor-api/pkg/config"
)

func main() {
	csvPath := flag.String("csv", "", "CSV de clientes (ISO-8859-1, separado por ';')")
	adminUser := flag.String("admin-user", "", "username do administrador a criar")
	adminPass := flag.String("admin-pass", "", "senha do administrador")
	adminName := flag.String("admin-name", "Administrador", "nome completo do administrador")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexão com o PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *adminUser != "" {
		if *adminPass == "" {
			fmt.Fprintln(os.Stderr, "-admin-pass é obrigatório com -admin-user")
			os.Exit(1)
		}
		if err := createAdmin(ctx, pool, *adminUser, *adminPass, *adminName); err != nil {
			fmt.Fprintf(os.Stderr, "Criar administrador: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Usuário %q criado\n", *adminUser)
	}

	if *csvPath != "" {
		imported, skipped, err := importCustomers(pool, *csvPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Importar clientes: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Importados %d cliente(s), %d ignorado(s)\n", imported, skipped)
	}
}

// createAdmin insere o usuário do painel com a senha em hash bcrypt.
func createAdmin(ctx context.Context, q postgres.Querier, username, password, name string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = q.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, full_name = EXCLUDED.full_name, updated_at = EXCLUDED.updated_at`,
		uuid.New().String(), username, string(hash), name, now)
	return err
}

// Colunas esperadas no CSV legado, na ordem do header:
// nome;email;telefone;cpf;cep;endereco;nascimento;genero
func importCustomers(q postgres.Querier, path string) (imported, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	repo := postgres.NewCustomerRepository(q)
	seq := postgres.NewSequenceRepository(q)
	uc := usecase.NewCustomerUseCase(repo, seq)

	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, skipped, err
		}
		if header {
			header = false
			continue
		}
		if len(record) < 3 {
			skipped++
			continue
		}

		in := map[string]any{
			"name":  record[0],
			"email": field(record, 1),
			"phone": field(record, 2),
		}
		if v := field(record, 3); v != "" {
			in["cpf"] = v
		}
		if v := field(record, 4); v != "" {
			in["zipcode"] = v
		}
		if v := field(record, 5); v != "" {
			in["address"] = v
		}
		if v := field(record, 6); v != "" {
			in["birthdate"] = v // DD/MM/YYYY
		}
		if v := field(record, 7); v != "" {
			in["gender"] = v
		}

		if _, err := uc.Create(in); err != nil {
			// Linhas inválidas ou duplicadas não abortam a importação.
			var verr *domain.ValidationError
			var cerr *domain.ConflictError
			if errors.As(err, &verr) || errors.As(err, &cerr) {
				skipped++
				continue
			}
			return imported, skipped, err
		}
		imported++
	}
	return imported, skipped, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
