// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/models"
	"github.com/xuri/excelize/v2"
)

// XLSX bulk import for the lookup registries. Values are read from the first
// column of the first sheet, one value per row; empty cells are skipped.
// Already-known values are counted, not treated as failures, so re-uploading
// the same workbook is harmless.

// ImportBrands loads car brand names from an XLSX workbook.
// Duplicates are detected through the table's unique constraint.
func (l *lookupService) ImportBrands(ctx context.Context, file io.Reader) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	values, err := readFirstColumn(file)
	if err != nil {
		log.Err(err).Msg("brand import file parsing failed")
		return models.ImportReport{}, err
	}

	var report models.ImportReport
	for _, value := range values {
		_, err := l.brandRepository.CreateBrand(ctx, value)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, store.ErrNameAlreadyExists):
			report.Existing++
		default:
			log.Err(err).Str("name", value).Msg("brand import row failed")
			return models.ImportReport{}, fmt.Errorf("brand import row failed: %w", err)
		}
	}

	return report, nil
}

// ImportEngineVolumes loads engine displacement values from an XLSX workbook.
// Cells must parse as positive numbers.
func (l *lookupService) ImportEngineVolumes(ctx context.Context, file io.Reader) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	values, err := readFirstColumn(file)
	if err != nil {
		log.Err(err).Msg("engine volume import file parsing failed")
		return models.ImportReport{}, err
	}

	var report models.ImportReport
	for _, value := range values {
		volume, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
		if err != nil || volume <= 0 {
			log.Error().Str("cell", value).Msg("engine volume cell is not a positive number")
			return models.ImportReport{}, fmt.Errorf("%w: %q", ErrUnsupportedImportCell, value)
		}

		_, err = l.engineRepository.CreateEngineVolume(ctx, volume)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, store.ErrNameAlreadyExists):
			report.Existing++
		default:
			log.Err(err).Float64("name", volume).Msg("engine volume import row failed")
			return models.ImportReport{}, fmt.Errorf("engine volume import row failed: %w", err)
		}
	}

	return report, nil
}

// ImportTransmissionTypes loads transmission names from an XLSX workbook.
// The table carries no unique constraint, so each value is checked against
// FindByName before insertion.
func (l *lookupService) ImportTransmissionTypes(ctx context.Context, file io.Reader) (models.ImportReport, error) {
	log := logger.FromContext(ctx)

	values, err := readFirstColumn(file)
	if err != nil {
		log.Err(err).Msg("transmission type import file parsing failed")
		return models.ImportReport{}, err
	}

	var report models.ImportReport
	for _, value := range values {
		_, err := l.transmissionRepository.FindByName(ctx, value)
		if err == nil {
			report.Existing++
			continue
		}
		if !errors.Is(err, store.ErrLookupValueNotFound) {
			log.Err(err).Str("name", value).Msg("transmission type import lookup failed")
			return models.ImportReport{}, fmt.Errorf("transmission type import lookup failed: %w", err)
		}

		if _, err := l.transmissionRepository.CreateTransmissionType(ctx, value); err != nil {
			log.Err(err).Str("name", value).Msg("transmission type import row failed")
			return models.ImportReport{}, fmt.Errorf("transmission type import row failed: %w", err)
		}
		report.Added++
	}

	return report, nil
}

// readFirstColumn extracts the trimmed first-column values of the first sheet.
// Rows whose first cell is empty are skipped; a workbook with no usable rows
// yields ErrEmptyImportFile.
func readFirstColumn(file io.Reader) ([]string, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX workbook failed: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImportFile
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading XLSX rows failed: %w", err)
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		value := strings.TrimSpace(row[0])
		if value == "" {
			continue
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return nil, ErrEmptyImportFile
	}

	return values, nil
}
