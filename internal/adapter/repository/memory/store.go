// Package memory implements the process-local store the service runs on by
// default: patients and schemes live in insertion-ordered slices behind a
// single mutex, and the unit of work serializes every mutating flow.
package memory

import (
	"sync"

	"swasthya-backend/internal/domain/patient"
	"swasthya-backend/internal/domain/scheme"
)

type Store struct {
	mu sync.Mutex

	patients   []patient.Patient
	patientIdx map[string]int

	schemes   []scheme.Scheme
	schemeIdx map[string]int

	nextPatientPK uint64
	nextSchemePK  uint64
}

func NewStore() *Store {
	return &Store{
		patientIdx: make(map[string]int),
		schemeIdx:  make(map[string]int),
	}
}

func (s *Store) Patients() *PatientRepository { return &PatientRepository{store: s} }
func (s *Store) Schemes() *SchemeRepository   { return &SchemeRepository{store: s} }

// lockIfNeeded is a no-op for repositories already running inside the UoW's
// critical section.
func (s *Store) lockIfNeeded(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
