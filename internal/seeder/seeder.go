package seeder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"wcg/internal/registration/models"
	"wcg/pkg/citizen"
	dErrors "wcg/pkg/domain-errors"
)

// Registrar registers citizens through the same rules the HTTP endpoint applies.
type Registrar interface {
	Register(ctx context.Context, rec citizen.Record) (*models.Registration, error)
}

// File is the on-disk layout of a seed file:
//
//	citizens:
//	  - citizen_id: "1101101101102"
//	    name: Somchai
//	    ...
type File struct {
	Citizens []Entry `yaml:"citizens"`
}

type Entry struct {
	CitizenID  string `yaml:"citizen_id"`
	Name       string `yaml:"name"`
	Surname    string `yaml:"surname"`
	BirthDate  string `yaml:"birth_date"`
	Occupation string `yaml:"occupation"`
	Address    string `yaml:"address"`
}

func (e Entry) Record() citizen.Record {
	return citizen.New(e.CitizenID, e.Name, e.Surname, e.BirthDate, e.Occupation, e.Address)
}

// Seeder populates the mock registry with pre-registered citizens
type Seeder struct {
	registrar Registrar
	logger    *slog.Logger
}

func New(registrar Registrar, logger *slog.Logger) *Seeder {
	return &Seeder{
		registrar: registrar,
		logger:    logger,
	}
}

// SeedFile reads path and registers every citizen in it. An empty path is a no-op.
func (s *Seeder) SeedFile(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return s.Seed(ctx, f)
}

// Seed decodes a seed document from r and registers every entry. Entries that
// are already registered are skipped; any other rejection aborts seeding.
func (s *Seeder) Seed(ctx context.Context, r io.Reader) (int, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to decode seed file: %w", err)
	}

	seeded := 0
	for i, entry := range file.Citizens {
		_, err := s.registrar.Register(ctx, entry.Record())
		switch {
		case err == nil:
			seeded++
		case dErrors.HasCode(err, dErrors.CodeAlreadyRegistered):
			s.logger.WarnContext(ctx, "seed citizen already registered", "citizen_id", entry.CitizenID)
		default:
			return seeded, fmt.Errorf("failed to seed citizen %d (%s): %w", i, entry.CitizenID, err)
		}
	}

	s.logger.InfoContext(ctx, "seed data loaded", "citizens", seeded)
	return seeded, nil
}
