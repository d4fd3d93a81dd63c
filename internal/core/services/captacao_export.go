package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/guibecker772/advisor-control/internal/apperrors"
	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/guibecker772/advisor-control/internal/utils/ledger"
	"github.com/xuri/excelize/v2"
)

const (
	exportEntriesSheet = "Lancamentos"
	exportSummarySheet = "Resumo"
)

var exportEntriesHeader = []any{
	"Data", "Mês", "Ano", "Cliente", "Direção", "Tipo", "Valor", "Valor assinado", "Origem", "Descrição", "Referência",
}

var exportSummaryHeader = []any{"Competência", "Entradas", "Saídas", "Líquido", "Lançamentos"}

// ExportXLSX renders the entries of ownerID dated from the first day of
// fromMonth up to the last day of toMonth, plus one summary row per month.
func (s *captacaoService) ExportXLSX(ctx context.Context, callerID, ownerID, fromMonth, toMonth string) ([]byte, error) {
	if ownerID == "" {
		ownerID = callerID
	}
	if ownerID != callerID {
		return nil, apperrors.WithMessage(apperrors.ErrExportForbidden, "you can only export your own ledger")
	}

	from, err := time.Parse(dates.MonthLayout, dates.NormalizeMonth(fromMonth))
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "from must be a YYYY-MM month", apperrors.ErrValidation)
	}
	to, err := time.Parse(dates.MonthLayout, dates.NormalizeMonth(toMonth))
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "to must be a YYYY-MM month", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "from must not be after to", apperrors.ErrValidation)
	}
	end := to.AddDate(0, 1, 0)

	entries, err := s.captacaoRepo.ListLancamentosBetween(ctx, ownerID, from.Format(dates.DateLayout), end.Format(dates.DateLayout))
	if err != nil {
		s.LogError(ctx, err, "Failed to load captacao lancamentos for export",
			slog.String("from", fromMonth), slog.String("to", toMonth))
		return nil, err
	}

	data, err := renderCaptacaoWorkbook(entries, from, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to render captacao export")
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to render export", err)
	}

	s.LogInfo(ctx, "Captacao export rendered",
		slog.String("owner_id", ownerID),
		slog.Int("entries", len(entries)))
	return data, nil
}

func renderCaptacaoWorkbook(entries []domain.CaptacaoLancamento, from, end time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportEntriesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(exportSummarySheet); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, exportEntriesSheet, 1, exportEntriesHeader); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := []any{
			e.Date, e.Month, e.Year, e.ClientName, string(e.Direction), e.Type,
			e.Value.InexactFloat64(), e.SignedValue().InexactFloat64(),
			e.Origin, e.Description, e.SourceRef,
		}
		if err := writeRow(f, exportEntriesSheet, i+2, row); err != nil {
			return nil, err
		}
	}
	if err := styleSheet(f, exportEntriesSheet, len(exportEntriesHeader), len(entries)+1, headerStyle, moneyStyle, "G", "H"); err != nil {
		return nil, err
	}

	if err := writeRow(f, exportSummarySheet, 1, exportSummaryHeader); err != nil {
		return nil, err
	}
	rowIdx := 2
	for month := from; month.Before(end); month = month.AddDate(0, 1, 0) {
		summary := ledger.Summarize(entries, month.Year(), int(month.Month()))
		row := []any{
			month.Format(dates.MonthLayout),
			summary.Entradas.InexactFloat64(),
			summary.Saidas.InexactFloat64(),
			summary.Liquido.InexactFloat64(),
			summary.Count,
		}
		if err := writeRow(f, exportSummarySheet, rowIdx, row); err != nil {
			return nil, err
		}
		rowIdx++
	}
	if err := styleSheet(f, exportSummarySheet, len(exportSummaryHeader), rowIdx-1, headerStyle, moneyStyle, "B", "D"); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// styleSheet bolds the header row and formats the money columns firstMoney..lastMoney.
func styleSheet(f *excelize.File, sheet string, columns, lastRow, headerStyle, moneyStyle int, firstMoney, lastMoney string) error {
	lastHeader, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}
	if lastRow < 2 {
		return nil
	}
	return f.SetCellStyle(sheet, fmt.Sprintf("%s2", firstMoney), fmt.Sprintf("%s%d", lastMoney, lastRow), moneyStyle)
}
