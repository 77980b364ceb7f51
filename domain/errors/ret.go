package errors

// The Application return code errors
const (
	RetParseError               = 2
	RetQuotaExceeded            = 3
	RetWalkError                = 4
	RetLoadConfigError          = 10
	RetCreateDatabaseError      = 11
	RetMigrateDatabaseError     = 12
	RetCreateRootRepository     = 13
	RetCreateSnapshotRepository = 14
	RetCreateWatcherError       = 17
	RetCreateRootRecordError    = 20
	RetCreateWebServerError     = 40
)
