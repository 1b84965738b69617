package postgres

import (
	"context"
	"fmt"

	"github.com/seu-usuario/gestor-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo aloca IDs sequenciais por coleção na tabela counters.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository constrói o adaptador.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa e devolve o contador da coleção em uma única instrução
// atômica: o upsert cria o contador em 1 no primeiro uso e o incrementa nas
// chamadas seguintes. Não existe caminho de fallback — chamadores
// concorrentes recebem valores distintos e sem lacunas, garantido pelo
// próprio banco.
func (r *SequenceRepo) Next(collection string) (int64, error) {
	const query = `
		INSERT INTO counters (name, seq) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, collection).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", collection, err)
	}
	return seq, nil
}
