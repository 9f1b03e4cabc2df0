package domain

import "math"

// Business limits
const (
	MaxHeadCount         = 7  // потолок участников на одну бронь
	MaxNameLength        = 7  // имя клиента и название банка, символов
	MaxPhoneLength       = 15 // телефон, цифр
	MaxAccountLength     = 20 // номер счета для возврата, цифр
	MaxReservationIDLen  = 10 // номер брони при поиске, цифр
	MinDifficulty        = 1
	MaxDifficulty        = 5
	DefaultAdminPageSize = 10
	MaxAdminPageSize     = 100
	MaxAdminPage         = math.MaxInt32 / MaxAdminPageSize // номер страницы у бэкенда int32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
