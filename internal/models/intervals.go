package models

// IntervalStats reports the minimum and maximum headway seen in each hour
// of the day. The three slices are parallel and always 24 entries long;
// hours without a valid headway report 0/0 rather than being omitted.
type IntervalStats struct {
	Hours        []int `json:"hours"`
	MinIntervals []int `json:"min_intervals"`
	MaxIntervals []int `json:"max_intervals"`
}
