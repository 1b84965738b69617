package repository

// SequenceRepository aloca IDs inteiros sequenciais por coleção.
// Next deve ser uma única operação atômica de upsert-e-incremento: o primeiro
// uso de uma coleção devolve 1 e chamadores concorrentes recebem inteiros
// distintos sem lacunas. IDs nunca são reutilizados, nem após exclusão.
type SequenceRepository interface {
	Next(collection string) (int64, error)
}
