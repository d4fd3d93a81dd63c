package mapping

import (
	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/models"
)

// ToModelProspect converts a domain Prospect to a model Prospect
func ToModelProspect(d domain.Prospect) models.Prospect {
	return models.Prospect{
		ProspectID:        d.ProspectID,
		OwnerID:           d.OwnerID,
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		Origin:            d.Origin,
		Status:            d.Status,
		PotentialValue:    d.PotentialValue,
		PotentialType:     d.PotentialType,
		Probability:       int32(d.Probability),
		NextContactDate:   nullableDate(d.NextContactDate),
		RealizedValue:     d.RealizedValue,
		RealizedType:      d.RealizedType,
		RealizedDate:      nullableDate(d.RealizedDate),
		Converted:         d.Converted,
		ConvertedClientID: nullableString(d.ConvertedClientID),
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProspect converts a model Prospect to a domain Prospect
func ToDomainProspect(m models.Prospect) domain.Prospect {
	return domain.Prospect{
		ProspectID:        m.ProspectID,
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		Origin:            m.Origin,
		Status:            m.Status,
		PotentialValue:    m.PotentialValue,
		PotentialType:     m.PotentialType,
		Probability:       int(m.Probability),
		NextContactDate:   formatDate(m.NextContactDate),
		RealizedValue:     m.RealizedValue,
		RealizedType:      m.RealizedType,
		RealizedDate:      formatDate(m.RealizedDate),
		Converted:         m.Converted,
		ConvertedClientID: derefString(m.ConvertedClientID),
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProspectSlice converts model Prospects to domain Prospects
func ToDomainProspectSlice(ms []models.Prospect) []domain.Prospect {
	ds := make([]domain.Prospect, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProspect(m)
	}
	return ds
}
