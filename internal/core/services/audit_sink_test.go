package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Shunea/be-easyreserv-sub002/internal/core/domain"
	"github.com/Shunea/be-easyreserv-sub002/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMultiAuditSink_FansOutAndSwallowsFailures(t *testing.T) {
	history := new(MockHistoryRepository)
	broken := &recordingSink{err: errors.New("socket closed")}
	tail := &recordingSink{}

	record := domain.ReservationHistoryRecord{RecordID: "h1", ReservationID: "res-1", ToStatus: domain.StatusConfirmed}
	history.On("Append", mock.Anything, record).Return(nil).Once()

	sink := services.NewMultiAuditSink(
		services.NamedSink{Name: "history", Sink: history},
		services.NamedSink{Name: "broken", Sink: broken},
		services.NamedSink{Name: "nil", Sink: nil},
		services.NamedSink{Name: "tail", Sink: tail},
	)

	err := sink.Append(context.Background(), record)

	assert.NoError(t, err)
	history.AssertExpectations(t)
	assert.Equal(t, []domain.ReservationHistoryRecord{record}, tail.records)
}

func TestMultiAuditSink_Empty(t *testing.T) {
	assert.NoError(t, services.NewMultiAuditSink().Append(context.Background(), domain.ReservationHistoryRecord{}))
}
