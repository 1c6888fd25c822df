package household

import (
	"fmt"
	"time"

	"github.com/homeledger/backend/internal/domain/valueobject"
)

// RegistrationWindowDays is how far ahead an expiring registration gets a label.
const RegistrationWindowDays = 30

// RegistrationLabel describes a registration expiring within the window or already expired.
func RegistrationLabel(expiry *time.Time, now time.Time) *string {
	if expiry == nil || expiry.IsZero() {
		return nil
	}
	days := valueobject.DaysBetween(now, *expiry)
	switch {
	case days < 0:
		return stringPtr("Registration expired")
	case days == 0:
		return stringPtr("Registration expires today")
	case days == 1:
		return stringPtr("Registration expires tomorrow")
	case days <= RegistrationWindowDays:
		return stringPtr(fmt.Sprintf("Registration expires in %d days", days))
	default:
		return nil
	}
}
