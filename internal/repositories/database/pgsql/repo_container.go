package pgsql

import (
	portsrepo "github.com/Shunea/be-easyreserv-sub002/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories. Reports read from replica when it is not nil.
func NewRepositoryProvider(dbPool *pgxpool.Pool, replica *pgxpool.Pool) portsrepo.RepositoryProvider {
	if replica == nil {
		replica = dbPool
	}
	return portsrepo.RepositoryProvider{
		Tx:              newTransactionManager(dbPool),
		StaffRepo:       newPgxStaffRepository(dbPool),
		ScheduleRepo:    newPgxScheduleRepository(dbPool),
		ReservationRepo: newPgxReservationRepository(dbPool),
		HistoryRepo:     newPgxHistoryRepository(dbPool),
		ReportingRepo:   newReportingRepository(replica),
	}
}
