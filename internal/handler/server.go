// Package handler implements the HTTP handlers for the travelops backend.
// All handlers are methods on Server. Methods are split into feature files
// (convert.go, study.go, health.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// ConvertServicer defines the conversion operation the convert handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without a live facility resolver.
type ConvertServicer interface {
	// Convert returns either the full ordered row list, or a non-empty
	// error list and no rows. Never both.
	Convert(ctx context.Context, req domain.ConversionRequest) ([]domain.OutputRow, domain.ErrorList)
}

// StudyServicer defines the study operations the study handlers depend on.
type StudyServicer interface {
	Words(ctx context.Context) ([]domain.Word, error)
	CurrentWord(ctx context.Context) (domain.WordCard, error)
	Submit(ctx context.Context, sub domain.WordSubmission) error
	Progress(ctx context.Context) (int, error)
	SetProgress(ctx context.Context, index int) error
}

// Server holds the handler dependencies for all endpoints.
type Server struct {
	convert ConvertServicer
	study   StudyServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(convert ConvertServicer, study StudyServicer) *Server {
	return &Server{convert: convert, study: study}
}
