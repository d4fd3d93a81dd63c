package offers

import (
	"strings"
	"time"

	"github.com/guibecker772/advisor-control/internal/core/domain"
	"github.com/guibecker772/advisor-control/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// ReservationFailure names why a reservation was refused.
type ReservationFailure string

const (
	ReasonOfferNotFound   ReservationFailure = "OFFER_NOT_FOUND"
	ReasonOfferLocked     ReservationFailure = "OFFER_LOCKED"
	ReasonInvalidInput    ReservationFailure = "INVALID_INPUT"
	ReasonDuplicateClient ReservationFailure = "DUPLICATE_CLIENT"
)

// ReservationInput is a single new client allocation.
type ReservationInput struct {
	ClientID       string
	ReservedAmount decimal.Decimal
	ReservedAt     string
	Notes          string
}

// ReservationResult is returned instead of an error so callers can react to
// each refusal (e.g. highlight the duplicate row).
type ReservationResult struct {
	OK                bool
	Offer             *domain.Offer
	Reason            ReservationFailure
	DuplicateClientID string
}

// IsLocked reports whether the offer no longer accepts allocations on now's day.
func IsLocked(offer domain.Offer, now time.Time) bool {
	status, _ := ParseOfferStatus(string(offer.Status))
	if status == domain.OfferCancelled {
		return true
	}
	// YYYY-MM-DD strings order the same as the dates they hold
	today := dates.Today(now)
	liquidation := dates.Normalize(offer.LiquidationDate)
	if liquidation == "" {
		liquidation = dates.Normalize(offer.LegacyLiquidationDate)
	}
	if liquidation != "" && today >= liquidation {
		return true
	}
	if end := dates.Normalize(offer.ReservationEndDate); end != "" && today > end {
		return true
	}
	return false
}

// ApplyReservationToOfferSnapshot appends input as a new allocation of offer.
// offer is never modified; the returned snapshot is normalized.
func ApplyReservationToOfferSnapshot(offer *domain.Offer, input ReservationInput, now time.Time) ReservationResult {
	if offer == nil {
		return ReservationResult{Reason: ReasonOfferNotFound}
	}
	if IsLocked(*offer, now) {
		return ReservationResult{Reason: ReasonOfferLocked}
	}

	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" || !input.ReservedAmount.IsPositive() {
		return ReservationResult{Reason: ReasonInvalidInput}
	}

	current := NormalizeOfferForPersistence(*offer)
	if current.HasAllocationFor(clientID) {
		return ReservationResult{Reason: ReasonDuplicateClient, DuplicateClientID: clientID}
	}

	wasEmptyPending := len(current.Allocations) == 0 && current.Status == domain.OfferPending

	next := current
	next.Allocations = make([]domain.Allocation, len(current.Allocations), len(current.Allocations)+1)
	copy(next.Allocations, current.Allocations)
	next.Allocations = append(next.Allocations, domain.Allocation{
		ClientID:       clientID,
		AllocatedValue: input.ReservedAmount,
		BalanceOK:      false,
		ReservedAt:     input.ReservedAt,
		Notes:          input.Notes,
		Status:         domain.AllocationReserved,
	})
	if wasEmptyPending {
		next.Status = domain.OfferReserved
	}

	normalized := NormalizeOfferForPersistence(next)
	return ReservationResult{OK: true, Offer: &normalized}
}
