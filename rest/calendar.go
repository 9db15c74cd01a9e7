package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ngoclaithe/camerental/domain/schedule"
)

type CalendarService struct {
	client *Client
}

// Availability fetches one EquipmentAvailability row per equipment item for
// the given window. Both the day view, the month chart and the wizard's
// conflict checker feed off this call.
func (s *CalendarService) Availability(ctx context.Context, from, to time.Time) ([]schedule.EquipmentAvailability, error) {
	path := fmt.Sprintf("/calendar?from=%s&to=%s",
		url.QueryEscape(from.Format(time.RFC3339)),
		url.QueryEscape(to.Format(time.RFC3339)),
	)

	var dtos []availabilityDTO
	if err := s.client.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	availabilities := make([]schedule.EquipmentAvailability, 0, len(dtos))
	for _, dto := range dtos {
		avail, err := toAvailability(dto)
		if err != nil {
			return nil, err
		}
		availabilities = append(availabilities, avail)
	}
	return availabilities, nil
}
