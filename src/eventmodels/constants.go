package eventmodels

// DaysPerYear converts a calendar-day expiry input into the year fraction the
// pricing formulas expect.
const DaysPerYear = 365.0
