package domain

import "errors"

// Taxonomia de erros do núcleo analítico. Nenhum deles é fatal: os métodos
// de métricas degradam para resultados vazios/neutros e apenas registram
// o problema em log.
var (
	// ErrDataUnavailable indica fonte de dados obrigatória ausente ou vazia
	// após o corte de datas da carga.
	ErrDataUnavailable = errors.New("dados não disponíveis")

	// ErrInvalidRange indica um recorte de datas com início posterior ao fim.
	ErrInvalidRange = errors.New("intervalo de datas inválido")

	// ErrInsufficientHistory indica menos períodos do que o cálculo exige
	// (ex.: previsão com menos de 2 pontos).
	ErrInsufficientHistory = errors.New("histórico insuficiente")
)
