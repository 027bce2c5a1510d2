package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Dosada05/tournament-brackets/brackets"
	"github.com/Dosada05/tournament-brackets/storage"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	standingsSheet = "Standings"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ExportService interface {
	ExportStandings(ctx context.Context, stageID int) (*ExportResult, error)
}

type exportService struct {
	standings StandingsService
	uploader  storage.FileUploader
}

// NewExportService accepts a nil uploader; exports then fail with ErrStorageDisabled.
func NewExportService(standings StandingsService, uploader storage.FileUploader) ExportService {
	return &exportService{standings: standings, uploader: uploader}
}

func (s *exportService) ExportStandings(ctx context.Context, stageID int) (*ExportResult, error) {
	if s.uploader == nil {
		return nil, ErrStorageDisabled
	}

	st, err := s.standings.GetStandings(ctx, stageID)
	if err != nil {
		return nil, err
	}

	body, err := RenderStandingsWorkbook(st)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("standings/%d/%s.xlsx", stageID, uuid.NewString())
	res, err := s.uploader.Upload(ctx, key, xlsxMIME, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to upload standings export: %w", err)
	}
	return &ExportResult{Key: res.Key, URL: res.Location}, nil
}

// RenderStandingsWorkbook writes the standings to a single-sheet xlsx document.
func RenderStandingsWorkbook(st *StageStandings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Placement", "Participant", "Wins", "Losses", "Points"}
	if err := f.SetSheetRow(standingsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range st.Placements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{p.Placement, p.ParticipantName, p.Wins, p.Losses, brackets.PointsForPlacement(p.Placement)}
		if err := f.SetSheetRow(standingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
