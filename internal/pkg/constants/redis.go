package constants

// Redis key patterns for OTP challenges, keyed by normalized phone number.
// Both keys share the challenge TTL so attempts never outlive the code.
const (
	KeyAuthOTP         = "auth:otp:%s"
	KeyAuthOTPAttempts = "auth:otp:attempts:%s"
)
