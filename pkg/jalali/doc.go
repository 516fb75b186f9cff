// Package jalali converts between the Gregorian and Solar Hijri (Jalali)
// calendars and renders timestamps with a single-character pattern language.
//
// Conversion is closed-form integer arithmetic. Leap years follow the 33-year
// cycle rule ((year+12) mod 33) mod 4 == 1, which is an approximation of the
// astronomical calendar and is kept as is for compatibility with existing
// Jalali tooling.
//
// Every function is pure and safe for concurrent use.
package jalali
