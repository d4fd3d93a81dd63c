package mapping

import (
	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:         d.ClientID,
		OwnerID:          d.OwnerID,
		Name:             d.Name,
		Email:            d.Email,
		Phone:            d.Phone,
		Origin:           d.Origin,
		Status:           string(d.Status),
		Custody:          d.Custody,
		Notes:            d.Notes,
		SourceProspectID: nullableString(d.SourceProspectID),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:         m.ClientID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		Origin:           m.Origin,
		Status:           domain.ClientStatus(m.Status),
		Custody:          m.Custody,
		Notes:            m.Notes,
		SourceProspectID: derefString(m.SourceProspectID),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
