// Package domain contains the core business entities, value objects, and
// domain logic of the application: practice problems, the calendar-day Date
// type used for review scheduling, and the validation rules that guard them.
// It is independent of any storage engine or delivery mechanism.
package domain
