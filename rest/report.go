package rest

import (
	"context"
	"net/http"

	"github.com/ngoclaithe/camerental/domain/report"
)

type ReportService struct {
	client *Client
}

func (s *ReportService) Summary(ctx context.Context) (*report.Summary, error) {
	var dto summaryDTO
	if err := s.client.do(ctx, http.MethodGet, "/reports/summary", nil, &dto); err != nil {
		return nil, err
	}
	return toSummary(dto), nil
}
