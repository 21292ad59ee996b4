package recommend

import "time"

// ---- context helpers ----

// buildBaseContext builds the standard context stored with every
// interaction event.
func buildBaseContext(now time.Time, city, mealTime string) map[string]any {
	return map[string]any{
		"time_bucket": computeTimeBucket(now),
		"dow":         int(now.Weekday()), // 0=Sunday
		"city":        city,
		"meal_time":   mealTime,
		"event_time":  now.Format(time.RFC3339),
	}
}

// mergeContext merges multiple maps into a new one.
func mergeContext(maps ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func computeTimeBucket(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 6:
		return "night"
	case h < 12:
		return "morning"
	case h < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// CurrentMealTime maps the clock to the meal slot used for candidate
// filtering when the caller does not state one.
func CurrentMealTime(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 11:
		return "breakfast"
	case h < 15:
		return "lunch"
	case h < 18:
		return "snack"
	default:
		return "dinner"
	}
}
