package progression

import "math"

// XPForLevel returns the minimum cumulative XP required to hold level. The
// curve is floor(50 * level^1.5), gentle enough that reaching level 10 in a
// single stat takes on the order of eighty activities.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Floor(50 * math.Pow(float64(level), 1.5)))
}

// LevelFromXP returns the largest level whose threshold is covered by xp.
// The curve has no closed-form inverse worth the trouble; the scan is a
// handful of iterations for any realistic XP total.
func LevelFromXP(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// LevelProgress returns the floored percentage of progress from the current
// level threshold toward the next one.
func LevelProgress(xp int) int {
	level := LevelFromXP(xp)
	current := XPForLevel(level)
	next := XPForLevel(level + 1)
	return (xp - current) * 100 / (next - current)
}

// OverallLevel is the floored mean of the given per-stat levels.
func OverallLevel(levels []int) int {
	if len(levels) == 0 {
		return 1
	}

	sum := 0
	for _, l := range levels {
		sum += l
	}
	return sum / len(levels)
}
