package constants

// NSQ topics
const (
	TopicOTPNotifications = "otp_notifications"
	TopicLeadEvents       = "lead_events"
)
