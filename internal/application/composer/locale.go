package composer

import "strings"

// Labels in the notification language. Unknown keys pass through unchanged.
var typeLabels = map[string]string{
	"maintenance":         "صيانة",
	"license_expiry":      "انتهاء الرخصة",
	"insurance_expiry":    "انتهاء التأمين",
	"registration_expiry": "انتهاء التسجيل",
}

var priorityLabels = map[string]string{
	"high":   "عالي",
	"medium": "متوسط",
	"low":    "منخفض",
}

const unknownLabel = "غير معروف"

// TypeLabel localizes a reminder type.
func TypeLabel(t string) string {
	if t == "" {
		return unknownLabel
	}
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return t
}

// PriorityLabel localizes a priority. Matching is case-insensitive.
func PriorityLabel(p string) string {
	if p == "" {
		return unknownLabel
	}
	if label, ok := priorityLabels[strings.ToLower(p)]; ok {
		return label
	}
	return p
}
