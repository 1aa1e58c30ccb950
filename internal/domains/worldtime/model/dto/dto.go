package dto

// CurrentTimeRequest carries the parameters of the get_current_time
// operation. Timezone is optional; empty means UTC.
type CurrentTimeRequest struct {
	Timezone string `json:"timezone"`
}

// ConvertTimeRequest carries the parameters of the convert_time operation.
type ConvertTimeRequest struct {
	SourceTimezone string `json:"source_timezone" validate:"required"`
	Time           string `json:"time" validate:"required"`
	TargetTimezone string `json:"target_timezone" validate:"required"`
}

type CurrentTimeResponse struct {
	Timezone  string `json:"timezone"`
	Datetime  string `json:"datetime"`
	UTCOffset string `json:"utc_offset"`
	IsDST     bool   `json:"is_dst"`
}

// ZoneTimeEntry is the source or target half of a conversion result.
type ZoneTimeEntry struct {
	Timezone  string `json:"timezone"`
	Datetime  string `json:"datetime"`
	UTCOffset string `json:"utc_offset"`
}

type ConvertTimeResponse struct {
	Source         ZoneTimeEntry `json:"source"`
	Target         ZoneTimeEntry `json:"target"`
	TimeDifference string        `json:"time_difference"`
}
