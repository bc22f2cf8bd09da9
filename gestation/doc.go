// Package gestation computes estimated due dates and pregnancy
// progress. All functions are pure date arithmetic.
package gestation
