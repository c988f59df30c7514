package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is one entry of the vocabulary word list. Words are loaded from a
// CSV file on disk; Num is the first column, preserved as the stable id the
// front-end submits back.
type Word struct {
	Num int    `json:"num"`
	En  string `json:"en"`
	Jp  string `json:"jp"`
}

// WordCard is the study view of the current word: the word itself plus the
// learner's position in the list.
type WordCard struct {
	ID    int    `json:"id"`
	En    string `json:"en"`
	Jp    string `json:"jp"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

// WordSubmission is the learner's answer for one word: which word was shown,
// whether they knew it, and the index it was shown at. The service advances
// progress to CurrentIndex+1 and records the report.
type WordSubmission struct {
	WordID       int    `json:"word_id"`
	Status       string `json:"status"`
	CurrentIndex int    `json:"current_index"`
}

// WordReport is one persisted study answer. Reports are append-only; the
// history doubles as the "unknown words" review list.
type WordReport struct {
	ID        uuid.UUID `json:"id"`
	WordID    int       `json:"word_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
