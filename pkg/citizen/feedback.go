package citizen

// Feedback strings returned by the registration service under the "feedback" key.
// The spelling of FeedbackBelowMinimumAge matches the live service.
const (
	FeedbackSuccess           = "registration success!"
	FeedbackMissingAttribute  = "registration failed: missing some attribute"
	FeedbackInvalidCitizenID  = "registration failed: invalid citizen ID"
	FeedbackAlreadyRegistered = "registration failed: this person already registered"
	FeedbackInvalidBirthDate  = "registration failed: invalid birth date format"
	FeedbackBelowMinimumAge   = "registration failed: not archived minimum age"
)

// Feedback strings for the citizen cleanup endpoint.
const (
	FeedbackRemoved  = "citizen removed"
	FeedbackNotFound = "citizen not found"
)
