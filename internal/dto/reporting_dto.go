package dto

import (
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
)

// ReportQuery is the window of a report or listing request. Both bounds are calendar dates; To is exclusive.
type ReportQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// Window converts the query into a domain.ReportWindow starting at midnight in loc.
func (q ReportQuery) Window(loc *time.Location) (domain.ReportWindow, error) {
	if loc == nil {
		loc = time.UTC
	}
	from, err := time.ParseInLocation(domain.ReportDateLayout, q.From, loc)
	if err != nil {
		return domain.ReportWindow{}, apperrors.NewValidationFailedError("invalid 'from' date")
	}
	to, err := time.ParseInLocation(domain.ReportDateLayout, q.To, loc)
	if err != nil {
		return domain.ReportWindow{}, apperrors.NewValidationFailedError("invalid 'to' date")
	}
	return domain.ReportWindow{From: from, To: to}, nil
}
