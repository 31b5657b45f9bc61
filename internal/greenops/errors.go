package greenops

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors. Aggregation never returns them; they are reported through
// Diagnostic so callers can surface input that was silently counted as zero.
var (
	// ErrUnknownCategory indicates an activity category outside transport, diet and energy.
	ErrUnknownCategory = constError("unknown activity category")

	// ErrUnknownActivityType indicates a type with no emission factor in its category.
	ErrUnknownActivityType = constError("unknown activity type")

	// ErrInvalidValue indicates a quantity that could not be read as a finite number.
	ErrInvalidValue = constError("invalid activity value")

	// ErrNegativeValue indicates a negative carbon value.
	// Carbon emissions cannot be negative.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a value too large to calculate safely.
	ErrCalculationOverflow = constError("calculation overflow")
)
