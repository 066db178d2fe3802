package service

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/mwhitley/capquiz/internal/models"
	"go.uber.org/zap"
)

type StateRI interface {
	StoreState(ctx context.Context, state models.State) (models.State, error)
	AllStates(ctx context.Context) ([]models.State, error)
}

type CatalogS struct {
	repo StateRI
	log  *zap.Logger
}

func NewCatalogService(repo StateRI, log *zap.Logger) *CatalogS {
	return &CatalogS{
		repo: repo,
		log:  log,
	}
}

// EnsureLoaded seeds the state catalog from the data file when the store is
// empty. A missing or unreadable file leaves the catalog empty: callers must
// tolerate that, a quiz just cannot start until enough states exist.
func (c *CatalogS) EnsureLoaded(ctx context.Context, path string) {
	states, err := c.repo.AllStates(ctx)
	if err != nil {
		c.log.Warn("failed to check state catalog", zap.Error(err))
		return
	}
	if len(states) > 0 {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		c.log.Warn("failed to open state data file", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	n := c.Seed(ctx, f)
	c.log.Info("seeded state catalog", zap.String("path", path), zap.Int("count", n))
}

// Seed reads state rows from CSV data and stores them, returning the number
// stored. The header row is skipped, rows with fewer than 4 fields are
// skipped, fields are trimmed. Malformed input stops the load but never
// fails the caller.
func (c *CatalogS) Seed(ctx context.Context, r io.Reader) int {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// header row
	if _, err := reader.Read(); err != nil {
		if err != io.EOF {
			c.log.Warn("failed to read state data header", zap.Error(err))
		}
		return 0
	}

	var stored int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.log.Warn("failed to read state data row", zap.Error(err))
			break
		}
		if len(record) < 4 {
			continue
		}

		state := models.State{
			Name:    strings.TrimSpace(record[0]),
			Capital: strings.TrimSpace(record[1]),
			City2:   strings.TrimSpace(record[2]),
			City3:   strings.TrimSpace(record[3]),
		}

		if _, err := c.repo.StoreState(ctx, state); err != nil {
			c.log.Warn("failed to store state", zap.String("name", state.Name), zap.Error(err))
			continue
		}
		stored++
	}

	return stored
}
