package entity

// UCSBDate is a named date within an academic quarter.
// QuarterYYYYQ is the year followed by the quarter digit, 1 (winter) to 4 (fall).
type UCSBDate struct {
	ID            int64         `json:"id" query:"id"`
	QuarterYYYYQ  string        `json:"quarterYYYYQ" query:"quarterYYYYQ" validate:"required,len=5,numeric,quarter"`
	Name          string        `json:"name" query:"name" validate:"required"`
	LocalDateTime LocalDateTime `json:"localDateTime" query:"localDateTime" validate:"required"`
}
