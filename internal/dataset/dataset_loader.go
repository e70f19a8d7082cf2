package dataset

import (
	"os"
	"sort"
	"strconv"
	"strings"

	dataseterrors "go-salarydash/internal/dataset/errors"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Load reads the salary CSV at path into memory. Any read or parse
// problem is fatal to the caller: the dataset either loads completely or
// not at all.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, dataseterrors.ErrDatasetNotFound
		}
		zap.L().Error("dataset open failed", zap.String("path", path), zap.Error(err))
		return nil, dataseterrors.ErrDatasetNotFound
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.HasHeader(true))
	if df.Err != nil {
		zap.L().Error("dataset parse failed", zap.String("path", path), zap.Error(df.Err))
		return nil, dataseterrors.ErrDatasetMalformed
	}

	rows := df.Records()
	if len(rows) == 0 {
		return nil, dataseterrors.ErrDatasetMalformed
	}

	idx, ok := columnIndex(rows[0])
	if !ok {
		zap.L().Error("dataset header missing required columns",
			zap.String("path", path),
			zap.Strings("header", rows[0]),
		)
		return nil, dataseterrors.ErrDatasetMalformed
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, idx)
		if err != nil {
			zap.L().Error("dataset row parse failed",
				zap.String("path", path),
				zap.Int("row", i+1),
				zap.Error(err),
			)
			return nil, dataseterrors.ErrDatasetMalformed
		}
		records = append(records, rec)
	}

	return records, nil
}

type columns struct {
	year, seniority, contract, companySize int
	jobTitle, remoteStatus, residence, usd int
}

func columnIndex(header []string) (columns, bool) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	required := []string{
		colYear, colSeniority, colContract, colCompanySize,
		colJobTitle, colRemoteStatus, colResidence, colSalaryUSD,
	}
	for _, name := range required {
		if _, ok := pos[name]; !ok {
			return columns{}, false
		}
	}

	return columns{
		year:         pos[colYear],
		seniority:    pos[colSeniority],
		contract:     pos[colContract],
		companySize:  pos[colCompanySize],
		jobTitle:     pos[colJobTitle],
		remoteStatus: pos[colRemoteStatus],
		residence:    pos[colResidence],
		usd:          pos[colSalaryUSD],
	}, true
}

func parseRow(row []string, idx columns) (Record, error) {
	year, err := strconv.Atoi(strings.TrimSpace(row[idx.year]))
	if err != nil {
		return Record{}, err
	}

	usd, err := strconv.ParseFloat(strings.TrimSpace(row[idx.usd]), 64)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Year:         year,
		Seniority:    strings.TrimSpace(row[idx.seniority]),
		Contract:     strings.TrimSpace(row[idx.contract]),
		CompanySize:  strings.TrimSpace(row[idx.companySize]),
		JobTitle:     strings.TrimSpace(row[idx.jobTitle]),
		RemoteStatus: strings.TrimSpace(row[idx.remoteStatus]),
		Residence:    strings.ToUpper(strings.TrimSpace(row[idx.residence])),
		SalaryUSD:    usd,
	}, nil
}

func buildFacets(records []Record) Facets {
	yearSet := map[int]struct{}{}
	senSet := map[string]struct{}{}
	conSet := map[string]struct{}{}
	sizeSet := map[string]struct{}{}

	for _, r := range records {
		yearSet[r.Year] = struct{}{}
		senSet[r.Seniority] = struct{}{}
		conSet[r.Contract] = struct{}{}
		sizeSet[r.CompanySize] = struct{}{}
	}

	facets := Facets{
		Years:        make([]int, 0, len(yearSet)),
		Seniorities:  sortedKeys(senSet),
		Contracts:    sortedKeys(conSet),
		CompanySizes: sortedKeys(sizeSet),
	}
	for y := range yearSet {
		facets.Years = append(facets.Years, y)
	}
	sort.Ints(facets.Years)

	return facets
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
