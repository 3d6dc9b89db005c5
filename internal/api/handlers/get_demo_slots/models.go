package get_demo_slots

import (
	"time"

	"github.com/eduschools/EduSchools-BookingService/internal/domain"
	getDemoSlots "github.com/eduschools/EduSchools-BookingService/internal/usecase/get_demo_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date     string         `json:"date"`
	Stale    bool           `json:"stale"`
	LoadedAt *time.Time     `json:"loadedAt,omitempty"`
	Slots    []SlotResponse `json:"slots"`
}

// SlotResponse часовой слот
type SlotResponse struct {
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Booked          bool   `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDemoSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:            s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Booked:          s.Booked,
		})
	}

	out := &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Stale: resp.Stale,
		Slots: slots,
	}
	if !resp.LoadedAt.IsZero() {
		loadedAt := resp.LoadedAt.UTC()
		out.LoadedAt = &loadedAt
	}
	return out
}
