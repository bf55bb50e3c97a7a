package utils

// BMI computes body mass index from the profile height (cm) and the latest
// recorded weight (kg). ok is false when either value is missing or outside
// a plausible range, in which case the admin view just omits the figure.
func BMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, false
	}
	h := heightCm / 100.0
	return weightKg / (h * h), true
}
