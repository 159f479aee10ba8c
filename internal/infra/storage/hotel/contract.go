package hotel

import "github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

type rowScanner interface {
	Scan(dest ...interface{}) error
}
