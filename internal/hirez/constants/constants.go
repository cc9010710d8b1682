// Package constants holds the provider-defined endpoint names, queue ids,
// and quota limits for the Smite/HiRez stats API.
package constants

import "time"

// Endpoint method names, as they appear in the URL path segment.
const (
	MethodCreateSession       = "createsession"
	MethodPing                = "ping"
	MethodGetDataUsed         = "getdataused"
	MethodGetMatchDetails     = "getmatchdetails"
	MethodGetMatchDetailsBulk = "getmatchdetailsbatch"
	MethodGetMatchIdsByQueue  = "getmatchidsbyqueue"
	MethodGetGods             = "getgods"
	MethodGetItems            = "getitems"
)

// DefaultBaseURL is the production Smite stats API base.
const DefaultBaseURL = "https://api.smitegame.com/smiteapi.svc"

// FormatJSON is the response-format URL segment. JSON is the only format
// this client defines and decodes.
const FormatJSON = "json"

// Ranked queue ids (a convenience subset of the provider's many queue ids).
const (
	QueueRankedConquest = 451
	QueueRankedJoust     = 450
	QueueRankedDuel      = 440
)

// Quota constants, as enforced by the provider (see spec §6).
const (
	ConcurrentSessions = 45
	SessionsPerDay     = 500
	RequestsPerDay     = 7500
	MatchDetailsBatch  = 10
)

// SessionTimeLimit is the per-session time-to-live.
const SessionTimeLimit = 900 * time.Second

// InvalidSessionSentinel is the literal substring the provider embeds in a
// response body when the supplied session key has been rejected.
const InvalidSessionSentinel = "Invalid session id"

// ApprovedRetMsg is the only ret_msg value that indicates a successful
// createsession call.
const ApprovedRetMsg = "Approved"
