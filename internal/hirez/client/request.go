package client

import "fmt"

// MatchIDsByQueueRequest is one query to match_ids_by_queue: all matches
// for queueID on date (YYYYMMDD), narrowed to a single hour/10-minute
// window or the whole day.
type MatchIDsByQueueRequest struct {
	QueueID int
	Date    string
	Hour    string
	Minute  string
}

var allowedHours = map[string]bool{
	"-1": true,
	"0": true, "1": true, "2": true, "3": true, "4": true, "5": true,
	"6": true, "7": true, "8": true, "9": true, "10": true, "11": true,
	"12": true, "13": true, "14": true, "15": true, "16": true, "17": true,
	"18": true, "19": true, "20": true, "21": true, "22": true, "23": true,
}

var allowedMinutes = map[string]bool{
	"": true, "00": true, "10": true, "20": true, "30": true, "40": true, "50": true,
}

// ErrInvalidTimeWindow indicates an hour/minute pair outside the
// provider's allow-list, or an hour=-1/minute mismatch. Validation
// happens entirely client-side, before any network activity.
type ErrInvalidTimeWindow struct {
	Hour, Minute string
}

func (e ErrInvalidTimeWindow) Error() string {
	return fmt.Sprintf("invalid time window: hour=%q minute=%q", e.Hour, e.Minute)
}

// timeWindow renders the request's hour/minute pair to the URL segment
// the provider expects, validating the allow-list and the "-1" sentinel
// cross-field constraint along the way.
func (r MatchIDsByQueueRequest) timeWindow() (string, error) {
	if !allowedHours[r.Hour] || !allowedMinutes[r.Minute] {
		return "", ErrInvalidTimeWindow{Hour: r.Hour, Minute: r.Minute}
	}
	if (r.Hour == "-1") != (r.Minute == "") {
		return "", ErrInvalidTimeWindow{Hour: r.Hour, Minute: r.Minute}
	}

	if r.Hour == "-1" {
		return "-1", nil
	}
	return r.Hour + "," + r.Minute, nil
}

func (r MatchIDsByQueueRequest) suffix() (string, error) {
	window, err := r.timeWindow()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/%d/%s/%s", r.QueueID, r.Date, window), nil
}
