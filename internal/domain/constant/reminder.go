package constant

// Reminder type tags. Other values are allowed and pass through unchanged.
const (
	TypeMaintenance        = "maintenance"
	TypeLicenseExpiry      = "license_expiry"
	TypeInsuranceExpiry    = "insurance_expiry"
	TypeRegistrationExpiry = "registration_expiry"
)

// Priority tags recognised for localization.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// WindowKind identifies which notification window a reminder was selected for.
type WindowKind string

const (
	// WindowTomorrow holds reminders due exactly one day after today.
	WindowTomorrow WindowKind = "tomorrow"
	// WindowWeek holds unsent reminders due two to seven days after today.
	WindowWeek WindowKind = "week"
)

func (k WindowKind) String() string {
	return string(k)
}

// Channel names, used in logs and metrics.
const (
	ChannelMessaging = "messaging"
	ChannelEmail     = "email"
)

// SweepKind identifies a periodic sweep.
type SweepKind string

const (
	SweepDue     SweepKind = "due"
	SweepMileage SweepKind = "mileage"
)
