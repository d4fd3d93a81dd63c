package services

import (
	"github.com/guibecker772/advisor-control/internal/core/domain"
)

// offerIndex is the lookup index of one owner's offers.
type offerIndex struct {
	all                []domain.Offer
	byCompetence       map[string][]int
	byCompetenceStatus map[string][]int
}

func competenceStatusKey(month string, status domain.OfferStatus) string {
	return month + "|" + string(status)
}

func buildOfferIndex(offers []domain.Offer) *offerIndex {
	idx := &offerIndex{
		all:                offers,
		byCompetence:       make(map[string][]int),
		byCompetenceStatus: make(map[string][]int),
	}
	for i, o := range offers {
		idx.byCompetence[o.CompetenceMonth] = append(idx.byCompetence[o.CompetenceMonth], i)
		key := competenceStatusKey(o.CompetenceMonth, o.Status)
		idx.byCompetenceStatus[key] = append(idx.byCompetenceStatus[key], i)
	}
	return idx
}

// lookup returns copies of the offers matching filter; filter fields are normalized.
func (idx *offerIndex) lookup(filter domain.OfferFilter) []domain.Offer {
	var positions []int
	switch {
	case filter.CompetenceMonth != "" && filter.Status != "":
		positions = idx.byCompetenceStatus[competenceStatusKey(filter.CompetenceMonth, filter.Status)]
	case filter.CompetenceMonth != "":
		positions = idx.byCompetence[filter.CompetenceMonth]
	default:
		for i, o := range idx.all {
			if filter.Status == "" || o.Status == filter.Status {
				positions = append(positions, i)
			}
		}
	}

	out := make([]domain.Offer, 0, len(positions))
	for _, p := range positions {
		out = append(out, idx.all[p])
	}
	return out
}
