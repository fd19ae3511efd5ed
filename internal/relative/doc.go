// Package relative evaluates relative date expressions such as "today",
// "16:00", "+3 hours", "2 weeks ago" or "next monday" against a base time.
//
// Expressions are tokenized with [parsly] and applied left to right, so
// "tomorrow noon" is midday of the next day and "today +1 day 16:00" is
// 16:00 tomorrow.
package relative
