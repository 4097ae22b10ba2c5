package domain

import "errors"

var (
	// ErrNotFound signals a missing resource (e.g. an unknown resume identity).
	ErrNotFound = errors.New("not found")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrUnparseableResponse signals a generative response that could not be
	// decoded into the expected structure.
	ErrUnparseableResponse = errors.New("unparseable generative response")
	// ErrInvalidInput signals genuinely malformed or missing required input,
	// rejected before the pipeline runs.
	ErrInvalidInput = errors.New("invalid input")
)
