package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// WordFile reads the vocabulary list from a CSV file on disk.
// Each row is "num,en,jp"; rows with fewer than three fields are skipped.
type WordFile struct {
	path string
}

// NewWordFile constructs a WordFile for the given path. The file is re-read
// on every Load so the list can be swapped without restarting the server.
func NewWordFile(path string) *WordFile {
	return &WordFile{path: path}
}

// Load returns all words in file order. A missing file is not an error —
// it simply means an empty word list, matching how the study page behaves
// before a list has been uploaded.
func (w *WordFile) Load() ([]domain.Word, error) {
	f, err := os.Open(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("service.WordFile.Load: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Word rows occasionally carry extra annotation columns; accept any width
	// and validate per row instead of failing the whole file.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("service.WordFile.Load: %w", err)
	}

	var words []domain.Word
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		num, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		words = append(words, domain.Word{Num: num, En: rec[1], Jp: rec[2]})
	}
	return words, nil
}
