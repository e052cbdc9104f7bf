package app

// MaxListLimit bounds how many rows a single list call may request.
const MaxListLimit = 500

func capLimit(limit int) int {
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
