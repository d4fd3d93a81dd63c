package mapping

import (
	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/models"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
)

// ToModelLancamento converts a domain ledger entry to its model
func ToModelLancamento(d domain.CaptacaoLancamento) models.CaptacaoLancamento {
	entryDate, _ := dates.Parse(d.Date)
	return models.CaptacaoLancamento{
		LancamentoID: d.LancamentoID,
		OwnerID:      d.OwnerID,
		ClientID:     nullableString(d.ClientID),
		ClientName:   d.ClientName,
		EntryDate:    entryDate,
		Month:        int32(d.Month),
		Year:         int32(d.Year),
		Direction:    string(d.Direction),
		EntryType:    d.Type,
		Value:        d.Value,
		Origin:       d.Origin,
		Description:  d.Description,
		SourceRef:    nullableString(d.SourceRef),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLancamento converts a model ledger entry to its domain form
func ToDomainLancamento(m models.CaptacaoLancamento) domain.CaptacaoLancamento {
	return domain.CaptacaoLancamento{
		LancamentoID: m.LancamentoID,
		OwnerID:      m.OwnerID,
		ClientID:     derefString(m.ClientID),
		ClientName:   m.ClientName,
		Date:         formatDate(&m.EntryDate),
		Month:        int(m.Month),
		Year:         int(m.Year),
		Direction:    domain.Direction(m.Direction),
		Type:         m.EntryType,
		Value:        m.Value,
		Origin:       m.Origin,
		Description:  m.Description,
		SourceRef:    derefString(m.SourceRef),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLancamentoSlice converts model ledger entries to domain entries
func ToDomainLancamentoSlice(ms []models.CaptacaoLancamento) []domain.CaptacaoLancamento {
	ds := make([]domain.CaptacaoLancamento, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLancamento(m)
	}
	return ds
}
