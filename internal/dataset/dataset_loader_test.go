package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-salarydash/internal/dataset"
	dataseterrors "go-salarydash/internal/dataset/errors"

	"github.com/stretchr/testify/assert"
)

const validCSV = `ano,senioridade,contrato,tamanho_empresa,cargo,remoto,residencia,usd
2020,junior,integral,media,Data Scientist,remoto,US,95000
2021,senior,integral,grande,Data Engineer,presencial,br,140000
2022,pleno,contrato,pequena,Data Analyst,hibrido,GB,60000.50
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "salaries.csv")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses all rows", func(t *testing.T) {
		records, err := dataset.Load(writeCSV(t, validCSV))

		assert.NoError(t, err)
		assert.Len(t, records, 3)

		assert.Equal(t, 2020, records[0].Year)
		assert.Equal(t, "junior", records[0].Seniority)
		assert.Equal(t, "integral", records[0].Contract)
		assert.Equal(t, "media", records[0].CompanySize)
		assert.Equal(t, "Data Scientist", records[0].JobTitle)
		assert.Equal(t, "remoto", records[0].RemoteStatus)
		assert.Equal(t, "US", records[0].Residence)
		assert.Equal(t, 95000.0, records[0].SalaryUSD)

		// residence codes are normalized to upper case on load
		assert.Equal(t, "BR", records[1].Residence)
		assert.Equal(t, 60000.50, records[2].SalaryUSD)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"))

		assert.ErrorIs(t, err, dataseterrors.ErrDatasetNotFound)
	})

	t.Run("missing required column", func(t *testing.T) {
		csv := "ano,senioridade,contrato\n2020,junior,integral\n"

		_, err := dataset.Load(writeCSV(t, csv))

		assert.ErrorIs(t, err, dataseterrors.ErrDatasetMalformed)
	})

	t.Run("non-numeric salary", func(t *testing.T) {
		csv := `ano,senioridade,contrato,tamanho_empresa,cargo,remoto,residencia,usd
2020,junior,integral,media,Data Scientist,remoto,US,lots
`

		_, err := dataset.Load(writeCSV(t, csv))

		assert.ErrorIs(t, err, dataseterrors.ErrDatasetMalformed)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := dataset.Load(writeCSV(t, ""))

		assert.ErrorIs(t, err, dataseterrors.ErrDatasetMalformed)
	})
}

func TestStore(t *testing.T) {
	t.Run("caches the first load", func(t *testing.T) {
		path := writeCSV(t, validCSV)
		store := dataset.NewStore(path)

		first, err := store.Records(context.Background())
		assert.NoError(t, err)
		assert.Len(t, first, 3)

		// Removing the file must not matter: the table is cached for the
		// process lifetime with no invalidation.
		assert.NoError(t, os.Remove(path))

		second, err := store.Records(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("load failure is cached too", func(t *testing.T) {
		store := dataset.NewStore(filepath.Join(t.TempDir(), "missing.csv"))

		_, err := store.Records(context.Background())
		assert.ErrorIs(t, err, dataseterrors.ErrDatasetNotFound)

		_, err = store.Facets(context.Background())
		assert.ErrorIs(t, err, dataseterrors.ErrDatasetNotFound)
	})

	t.Run("facets are sorted distinct values", func(t *testing.T) {
		store := dataset.NewStore(writeCSV(t, validCSV))

		facets, err := store.Facets(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []int{2020, 2021, 2022}, facets.Years)
		assert.Equal(t, []string{"junior", "pleno", "senior"}, facets.Seniorities)
		assert.Equal(t, []string{"contrato", "integral"}, facets.Contracts)
		assert.Equal(t, []string{"grande", "media", "pequena"}, facets.CompanySizes)
	})
}
