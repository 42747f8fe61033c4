package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Tx              TransactionManager
	StaffRepo       StaffRepositoryFacade
	ScheduleRepo    ScheduleRepositoryFacade
	ReservationRepo ReservationRepositoryFacade
	HistoryRepo     ReservationHistoryRepositoryFacade
	ReportingRepo   ReportingReader
}
